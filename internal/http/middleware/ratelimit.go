package middleware

import (
	"net"
	"net/http"

	apierrors "blogger-platform/internal/errors"
	"blogger-platform/internal/ratelimit"
)

// RateLimit ограничивает частоту запросов к credential-эндпоинтам по IP.
// nil-лимитер делает мидлвар no-op (Redis не сконфигурирован).
func RateLimit(l *ratelimit.Limiter, scope string) Middleware {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(r.Context(), scope, ClientIP(r)) {
				apierrors.WriteTooManyRequests(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP возвращает IP клиента: X-Forwarded-For (первый адрес) за
// доверенным прокси, иначе RemoteAddr без порта.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
