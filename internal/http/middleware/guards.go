package middleware

import (
	"context"
	"net/http"
	"strings"

	apierrors "blogger-platform/internal/errors"
	"blogger-platform/internal/models"
	"blogger-platform/internal/service"
)

// RefreshCookie — имя cookie, в котором клиент хранит refresh-токен.
const RefreshCookie = "refreshToken"

// Authenticator объединяет обе проверки токенов; реализуется service.Service.
type Authenticator interface {
	// ValidateAccessToken проверяет access-токен (подпись/срок).
	ValidateAccessToken(raw string) (*models.AuthContext, error)
	// Authenticate проверяет refresh-токен против хранилища сессий.
	Authenticate(ctx context.Context, rawRefreshToken string) (*models.AuthContext, error)
}

// TokenKind задаёт источник и способ проверки токена.
type TokenKind int

const (
	// KindAccess — Bearer-токен из Authorization, проверка подписи/срока.
	KindAccess TokenKind = iota
	// KindRefresh — токен из cookie, полная проверка против сессии
	// (подпись, срок, существование сессии, точное совпадение iat).
	KindRefresh
)

// Strategy параметризует guard: вид токена и обязательность.
// Один guard с параметрами вместо семейства почти одинаковых мидлваров —
// так access/refresh/optional-варианты не расходятся в поведении.
type Strategy struct {
	Kind TokenKind
	// Optional: запрос без валидного токена проходит дальше анонимно
	// (AuthFrom вернёт nil) вместо 401.
	Optional bool
}

// Guard извлекает токен согласно стратегии, проверяет его и кладёт
// аутентифицированную личность в контекст запроса.
func Guard(a Authenticator, s Strategy) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, err := authenticate(a, s.Kind, r)
			if err != nil {
				if s.Optional {
					next.ServeHTTP(w, r)
					return
				}

				apierrors.WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(AuthInto(r.Context(), auth)))
		})
	}
}

// AccessGuard — обязательный Bearer access-токен.
func AccessGuard(a Authenticator) Middleware {
	return Guard(a, Strategy{Kind: KindAccess})
}

// RefreshGuard — обязательный refresh-токен в cookie и живая сессия.
// Guard — чистая проверка без мутаций; ротацию выполняет use case после него.
func RefreshGuard(a Authenticator) Middleware {
	return Guard(a, Strategy{Kind: KindRefresh})
}

func authenticate(a Authenticator, kind TokenKind, r *http.Request) (*models.AuthContext, error) {
	switch kind {
	case KindRefresh:
		// Пустой токен отдаём сервису: он различит ErrNoRefreshToken.
		return a.Authenticate(r.Context(), refreshToken(r))
	default:
		raw := bearerToken(r)
		if raw == "" {
			return nil, service.ErrInvalidToken
		}

		return a.ValidateAccessToken(raw)
	}
}

// bearerToken извлекает токен из "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}

// refreshToken извлекает refresh-токен из cookie; пустая строка, если cookie нет.
func refreshToken(r *http.Request) string {
	c, err := r.Cookie(RefreshCookie)
	if err != nil {
		return ""
	}

	return c.Value
}
