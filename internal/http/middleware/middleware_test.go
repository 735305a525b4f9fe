package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogger-platform/internal/models"
	"blogger-platform/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// capHandler — тестовый slog.Handler, который:
//   - аккумулирует базовые attrs, приходящие через Logger.With(...);
//   - собирает attrs из каждой записи в map[string]any;
//   - не создаёт реальных I/O, чтобы не паниковать в тестах.
type capHandler struct {
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)

	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	h.count++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out

	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) > 0 {
		h.base = append(h.base, attrs...)
	}

	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func makeReq(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = (&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345}).String()
	return req
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type errEnvelope struct {
	Error apiError `json:"error"`
}

func TestChain_Order(t *testing.T) {
	order := []string{}

	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m1-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m1-end")
		})
	}

	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m2-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m2-end")
		})
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	h := Chain(final, m1, m2)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}), RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.Len(t, seen, 32)
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RequestID())

	req := makeReq("/x")
	req.Header.Set("X-Request-Id", "incoming-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "incoming-id", rec.Header().Get("X-Request-Id"))
}

func TestLogging_WritesAccessRecord(t *testing.T) {
	cap := &capHandler{}
	logger := slog.New(cap)

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	}), RequestID(), Logging(logger))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/auth/login"))

	require.Equal(t, 1, cap.count)
	require.Equal(t, "http", cap.lastMsg)
	require.Equal(t, "/auth/login", cap.attrs["path"])
	require.EqualValues(t, http.StatusCreated, cap.attrs["status"])
	require.NotEmpty(t, cap.attrs["request_id"])
}

func TestRecover_PanicBecomes500(t *testing.T) {
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Recover())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "internal", env.Error.Code)
	// Детали паники не утекают в ответ.
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	var hadDeadline bool

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	}), Timeout(50*time.Millisecond))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.True(t, hadDeadline)
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	var hadDeadline bool

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	}), Timeout(0))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.False(t, hadDeadline)
}

// stubAuth — заглушка Authenticator для тестов guard-ов;
// фиксирует переданный refresh-токен.
type stubAuth struct {
	accessAuth  *models.AuthContext
	accessErr   error
	refreshAuth *models.AuthContext
	refreshErr  error
	gotRefresh  string
}

func (s *stubAuth) ValidateAccessToken(string) (*models.AuthContext, error) {
	return s.accessAuth, s.accessErr
}

func (s *stubAuth) Authenticate(_ context.Context, raw string) (*models.AuthContext, error) {
	s.gotRefresh = raw
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return s.refreshAuth, nil
}

func TestAccessGuard_OK(t *testing.T) {
	want := &models.AuthContext{UserID: uuid.New(), LoginOrEmail: "u@e.co"}

	var got *models.AuthContext
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = AuthFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}), AccessGuard(&stubAuth{accessAuth: want}))

	req := makeReq("/auth/me")
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, want, got)
}

func TestAccessGuard_MissingHeader(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}), AccessGuard(&stubAuth{accessAuth: &models.AuthContext{}}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/auth/me"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "invalid_token", env.Error.Code)
}

func TestAccessGuard_ExpiredToken(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}), AccessGuard(&stubAuth{accessErr: service.ErrTokenExpired}))

	req := makeReq("/auth/me")
	req.Header.Set("Authorization", "Bearer expired.jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "token_expired", env.Error.Code)
}

func TestRefreshGuard_OK(t *testing.T) {
	want := &models.AuthContext{UserID: uuid.New(), DeviceID: "dev-1"}
	stub := &stubAuth{refreshAuth: want}

	var got *models.AuthContext
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = AuthFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}), RefreshGuard(stub))

	req := makeReq("/auth/refresh-token")
	req.AddCookie(&http.Cookie{Name: RefreshCookie, Value: "refresh.jwt"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, want, got)
	require.Equal(t, "refresh.jwt", stub.gotRefresh)
}

func TestRefreshGuard_MissingCookie(t *testing.T) {
	stub := &stubAuth{refreshErr: service.ErrNoRefreshToken}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}), RefreshGuard(stub))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/auth/refresh-token"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, stub.gotRefresh)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "no_refresh_token", env.Error.Code)
}

func TestRefreshGuard_SupersededToken(t *testing.T) {
	stub := &stubAuth{refreshErr: service.ErrSessionIatMismatch}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}), RefreshGuard(stub))

	req := makeReq("/auth/refresh-token")
	req.AddCookie(&http.Cookie{Name: RefreshCookie, Value: "stale.jwt"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "session_iat_mismatch", env.Error.Code)
}

func TestGuard_OptionalLetsAnonymousThrough(t *testing.T) {
	var got *models.AuthContext
	reached := false

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		got = AuthFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}), Guard(&stubAuth{accessErr: service.ErrInvalidToken}, Strategy{Kind: KindAccess, Optional: true}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)
	require.Nil(t, got)
}

func TestClientIP(t *testing.T) {
	req := makeReq("/x")
	require.Equal(t, "127.0.0.1", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	require.Equal(t, "10.0.0.1", ClientIP(req))
}
