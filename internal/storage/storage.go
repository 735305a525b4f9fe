package storage

import (
	"context"
	"errors"
	"time"

	"blogger-platform/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (пользователь/сессия).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (login/email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — условное обновление не совпало (конкурентная ротация:
	// iat сессии изменился между чтением и записью либо сессия удалена).
	ErrConflict = errors.New("conflict")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByLoginOrEmail находит пользователя по login ИЛИ email (точное совпадение).
	UserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByConfirmationCode находит пользователя по коду подтверждения e-mail.
	UserByConfirmationCode(ctx context.Context, code string) (*models.User, error)
	// UserByRecoveryCode находит пользователя по коду восстановления пароля.
	UserByRecoveryCode(ctx context.Context, code string) (*models.User, error)
	// UpdateConfirmation заменяет состояние подтверждения e-mail пользователя.
	UpdateConfirmation(ctx context.Context, userID uuid.UUID, c models.EmailConfirmation) error
	// UpdateRecovery заменяет код восстановления пароля пользователя.
	UpdateRecovery(ctx context.Context, userID uuid.UUID, r models.PasswordRecovery) error
	// UpdatePasswordHash заменяет хэш пароля и сбрасывает код восстановления.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
}

// SessionStorage выполняет операции над девайс-сессиями.
type SessionStorage interface {
	// SaveSession создает сессию; повторный вход с тем же deviceId
	// замещает существующую запись (upsert), не дублирует.
	SaveSession(ctx context.Context, session *models.Session) error
	// RotateSession атомарно заменяет iat/exp сессии при условии, что текущий
	// iat равен oldIssuedAt (compare-and-swap). Ноль совпавших строк — ErrConflict.
	RotateSession(ctx context.Context, userID uuid.UUID, deviceID string, oldIssuedAt, newIssuedAt, newExpiresAt time.Time, ip, title string) error
	// SessionByUserAndDevice возвращает сессию пары (userID, deviceID).
	SessionByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*models.Session, error)
	// SessionByDeviceID возвращает сессию по deviceID независимо от владельца.
	SessionByDeviceID(ctx context.Context, deviceID string) (*models.Session, error)
	// SessionsByUser возвращает все активные сессии пользователя.
	SessionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Session, error)
	// DeleteSession удаляет сессию; true — если запись была удалена.
	DeleteSession(ctx context.Context, userID uuid.UUID, deviceID string) (bool, error)
	// DeleteOtherSessions удаляет все сессии пользователя, кроме keepDeviceID.
	// Возвращает число удалённых записей.
	DeleteOtherSessions(ctx context.Context, userID uuid.UUID, keepDeviceID string) (int64, error)
	// DeleteExpiredSessions удаляет просроченные сессии (подстраховка TTL-индекса).
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	SessionStorage
	Close(ctx context.Context) error
}
