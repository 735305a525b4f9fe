package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"blogger-platform/internal/config"
	"blogger-platform/internal/http/handlers"
	"blogger-platform/internal/http/middleware"
	"blogger-platform/internal/ratelimit"
	"blogger-platform/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, limiter *ratelimit.Limiter, cfg config.AuthConfig, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // per-route метрики Prometheus
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, cfg)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc, limiter)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc, limiter)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service, limiter *ratelimit.Limiter) {
	accessGuard := middleware.AccessGuard(svc)
	refreshGuard := middleware.RefreshGuard(svc)

	// auth: credential-эндпоинты дополнительно закрыты рейт-лимитом по IP.
	r.With(middleware.RateLimit(limiter, "login")).
		Post("/auth/login", h.Login)
	r.With(middleware.RateLimit(limiter, "registration")).
		Post("/auth/registration", h.Registration)
	r.With(middleware.RateLimit(limiter, "registration")).
		Post("/auth/registration-confirmation", h.RegistrationConfirmation)
	r.With(middleware.RateLimit(limiter, "registration")).
		Post("/auth/registration-email-resending", h.RegistrationEmailResending)
	r.With(middleware.RateLimit(limiter, "recovery")).
		Post("/auth/password-recovery", h.PasswordRecovery)
	r.With(middleware.RateLimit(limiter, "recovery")).
		Post("/auth/new-password", h.NewPassword)

	r.With(refreshGuard).Post("/auth/refresh-token", h.Refresh)
	r.With(refreshGuard).Post("/auth/logout", h.Logout)
	r.With(accessGuard).Get("/auth/me", h.Me)

	// security: управление девайс-сессиями авторизуется refresh-токеном.
	r.With(refreshGuard).Get("/security/devices", h.Devices)
	r.With(refreshGuard).Delete("/security/devices", h.TerminateOtherDevices)
	r.With(refreshGuard).Delete("/security/devices/{deviceId}", h.TerminateDevice)
}
