package models

import (
	"time"

	"github.com/google/uuid"
)

// User — модель пользователя платформы.
//
// Ядро аутентификации читает только ID, Login, Email и PasswordHash;
// остальные поля обслуживают регистрацию и восстановление пароля.
type User struct {
	ID           uuid.UUID
	Login        string
	Email        string
	PasswordHash string
	CreatedAt    time.Time

	// Confirmation — состояние подтверждения e-mail.
	Confirmation EmailConfirmation
	// Recovery — активный код восстановления пароля (если есть).
	Recovery PasswordRecovery
}

// EmailConfirmation — код подтверждения регистрации и его срок действия.
type EmailConfirmation struct {
	Code      string
	ExpiresAt time.Time
	Confirmed bool
}

// PasswordRecovery — код восстановления пароля и его срок действия.
type PasswordRecovery struct {
	Code      string
	ExpiresAt time.Time
}
