// handlers содержит HTTP-хендлеры auth/session-подсистемы.
// Хендлеры остаются тонкими: декодирование запроса, вызов бизнес-логики,
// маппинг доменной ошибки в унифицированный ответ (internal/errors),
// работа с refresh-cookie.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"blogger-platform/internal/config"
	"blogger-platform/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc *service.Service

	// cookieSecure и refreshTTL задают атрибуты refresh-cookie.
	cookieSecure bool
	refreshTTL   time.Duration
}

func New(svc *service.Service, cfg config.AuthConfig) *Handlers {
	return &Handlers{
		svc:          svc,
		cookieSecure: cfg.CookieSecure,
		refreshTTL:   cfg.RefreshTokenTTL,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
