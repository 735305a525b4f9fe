package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthContext — неизменяемая аутентифицированная личность запроса.
// Формируется guard-ами и передаётся хендлерам явно через контекст запроса —
// вместо «размазывания» отдельных полей по запросу.
type AuthContext struct {
	UserID   uuid.UUID
	DeviceID string
	// LoginOrEmail заполняется access-guard-ом (claim access-токена).
	LoginOrEmail string
	// IP и UserAgent заполняются refresh-guard-ом (claims refresh-токена).
	IP        string
	UserAgent string
	// IssuedAt — iat принятого refresh-токена; служит ожидаемым значением
	// для CAS-ротации сессии. Заполняется только refresh-guard-ом.
	IssuedAt time.Time
}
