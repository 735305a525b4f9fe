package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blogger-platform/internal/config"
	"blogger-platform/internal/models"
	"blogger-platform/internal/service"
	"blogger-platform/internal/storage"
	"blogger-platform/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:    "router-access-secret",
		RefreshSecret:   "router-refresh-secret",
		AccessTokenTTL:  10 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
		ConfirmationTTL: 24 * time.Hour,
		CookieSecure:    false,
	}
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := service.New(st, testAuthCfg())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(svc, nil, testAuthCfg(), Options{Logger: logger, Timeout: 5 * time.Second})
	return router, st, ctrl
}

func mustBcrypt(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// signRefresh выпускает refresh-токен с теми же claims, что выдаёт сервис.
func signRefresh(t *testing.T, uid uuid.UUID, deviceID string, iat, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId":    uid.String(),
		"deviceId":  deviceID,
		"userIP":    "1.2.3.4",
		"userAgent": "test-ua",
		"sub":       uid.String(),
		"iat":       iat.Unix(),
		"exp":       exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAuthCfg().RefreshSecret))
	require.NoError(t, err)
	return signed
}

// signAccess выпускает access-токен с claims access-guard-а.
func signAccess(t *testing.T, uid uuid.UUID, deviceID string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"loginOrEmail": "user@example.com",
		"userId":       uid.String(),
		"deviceId":     deviceID,
		"sub":          uid.String(),
		"iat":          now.Unix(),
		"exp":          now.Add(10 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAuthCfg().AccessSecret))
	require.NoError(t, err)
	return signed
}

func refreshCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refreshToken" {
			return c
		}
	}
	return nil
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Code
}

func TestLogin_SetsRefreshCookie(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Login:        "user1",
		Email:        "user@example.com",
		PasswordHash: mustBcrypt(t, "secret-pw"),
	}

	st.EXPECT().UserByLoginOrEmail(gomock.Any(), "user1").Return(user, nil)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"loginOrEmail":"user1","password":"secret-pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("User-Agent", "test-ua")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	cookie := refreshCookieFrom(t, rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Equal(t, int(testAuthCfg().RefreshTokenTTL.Seconds()), cookie.MaxAge)

	// Refresh-токен не попадает в тело ответа.
	require.NotContains(t, rec.Body.String(), cookie.Value)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Login:        "user1",
		PasswordHash: mustBcrypt(t, "secret-pw"),
	}
	st.EXPECT().UserByLoginOrEmail(gomock.Any(), "user1").Return(user, nil)

	body := `{"loginOrEmail":"user1","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid_credentials", decodeErr(t, rec))
	require.Nil(t, refreshCookieFrom(t, rec))
}

func TestLogin_BadJSON(t *testing.T) {
	t.Parallel()

	router, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"unknownField":1}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rec))
}

func TestRefreshToken_RotatesPair(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	user := &models.User{ID: uid, Login: "user1", Email: "user@example.com"}

	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat, ExpiresAt: exp}, nil)
	st.EXPECT().UserByID(gomock.Any(), uid).Return(user, nil)
	st.EXPECT().RotateSession(gomock.Any(), uid, deviceID, iat, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := refreshCookieFrom(t, rec)
	require.NotNil(t, cookie)
	require.NotEqual(t, raw, cookie.Value)
}

func TestRefreshToken_NoCookie(t *testing.T) {
	t.Parallel()

	router, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "no_refresh_token", decodeErr(t, rec))
}

func TestRefreshToken_SupersededIat(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	// Сессия уже ротирована: iat в хранилище свежее, чем в токене.
	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat.Add(30 * time.Second), ExpiresAt: exp}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "session_iat_mismatch", decodeErr(t, rec))
}

func TestRefreshToken_ConcurrentRotation(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat, ExpiresAt: exp}, nil)
	st.EXPECT().UserByID(gomock.Any(), uid).Return(&models.User{ID: uid, Email: "u@e.co"}, nil)
	st.EXPECT().RotateSession(gomock.Any(), uid, deviceID, iat, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storage.ErrConflict)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "session_conflict", decodeErr(t, rec))
	require.Nil(t, refreshCookieFrom(t, rec))
}

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat, ExpiresAt: exp}, nil)
	st.EXPECT().DeleteSession(gomock.Any(), uid, deviceID).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	cookie := refreshCookieFrom(t, rec)
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.Less(t, cookie.MaxAge, 0)
}

func TestMe_OK(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Login: "user1", Email: "user@example.com"}
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signAccess(t, user.ID, uuid.NewString()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Email  string `json:"email"`
		Login  string `json:"login"`
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, user.Email, resp.Email)
	require.Equal(t, user.Login, resp.Login)
	require.Equal(t, user.ID.String(), resp.UserID)
}

func TestMe_NoToken(t *testing.T) {
	t.Parallel()

	router, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid_token", decodeErr(t, rec))
}

func TestDevices_List(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat, ExpiresAt: exp}, nil)
	st.EXPECT().SessionsByUser(gomock.Any(), uid).
		Return([]models.Session{
			{UserID: uid, DeviceID: deviceID, IP: "1.2.3.4", Title: "test-ua", IssuedAt: iat},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/security/devices", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var views []struct {
		IP             string `json:"ip"`
		Title          string `json:"title"`
		LastActiveDate string `json:"lastActiveDate"`
		DeviceID       string `json:"deviceId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	require.Equal(t, deviceID, views[0].DeviceID)
	require.Equal(t, "1.2.3.4", views[0].IP)
}

func TestTerminateDevice_Foreign(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	victimDevice := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat, ExpiresAt: exp}, nil)
	st.EXPECT().SessionByDeviceID(gomock.Any(), victimDevice).
		Return(&models.Session{UserID: uuid.New(), DeviceID: victimDevice}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/security/devices/"+victimDevice, nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "forbidden", decodeErr(t, rec))
}

func TestTerminateOtherDevices_NoContent(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	deviceID := uuid.NewString()
	iat := time.Now().UTC().Truncate(time.Second).Add(-time.Minute)
	exp := iat.Add(testAuthCfg().RefreshTokenTTL)
	raw := signRefresh(t, uid, deviceID, iat, exp)

	st.EXPECT().SessionByUserAndDevice(gomock.Any(), uid, deviceID).
		Return(&models.Session{UserID: uid, DeviceID: deviceID, IssuedAt: iat, ExpiresAt: exp}, nil)
	st.EXPECT().DeleteOtherSessions(gomock.Any(), uid, deviceID).Return(int64(2), nil)

	req := httptest.NewRequest(http.MethodDelete, "/security/devices", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: raw})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRegistration_NoContent(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLoginOrEmail(gomock.Any(), "newuser").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByLoginOrEmail(gomock.Any(), "new@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"login":"newuser","email":"new@example.com","password":"secret-pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/registration", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRegistration_LoginTaken(t *testing.T) {
	t.Parallel()

	router, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLoginOrEmail(gomock.Any(), "user1").
		Return(&models.User{ID: uuid.New()}, nil)

	body := `{"login":"user1","email":"new@example.com","password":"secret-pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/registration", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "login_taken", decodeErr(t, rec))
}
