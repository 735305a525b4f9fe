package models

import (
	"time"

	"github.com/google/uuid"
)

// Session — одна аутентифицированная «девайс-сессия» пользователя.
//
// Инварианты:
//   - не более одной сессии на пару (UserID, DeviceID);
//   - IssuedAt в точности равен claim `iat` актуального refresh-токена
//     этой сессии (секундная точность) — это и есть анти-replay проверка:
//     ротация делает предыдущий токен неприемлемым, хотя его подпись
//     остаётся валидной до истечения срока.
type Session struct {
	UserID   uuid.UUID
	DeviceID string
	// IP и Title (user-agent) — информационные метаданные устройства;
	// в проверку валидности refresh-токена они не входят.
	IP        string
	Title     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// DeviceView — публичное представление сессии для списка устройств.
// Никогда не содержит токенов или внутренних идентификаторов сессии.
type DeviceView struct {
	IP             string    `json:"ip"`
	Title          string    `json:"title"`
	LastActiveDate time.Time `json:"lastActiveDate"`
	DeviceID       string    `json:"deviceId"`
}

// DeviceViewFromSession конвертирует сессию в публичное представление.
func DeviceViewFromSession(s Session) DeviceView {
	return DeviceView{
		IP:             s.IP,
		Title:          s.Title,
		LastActiveDate: s.IssuedAt,
		DeviceID:       s.DeviceID,
	}
}
