// service содержит бизнес-логику платформы в части аутентификации и
// девайс-сессий: проверку учётных данных, выпуск/проверку пары токенов,
// ротацию refresh-токенов, управление сессиями устройств и регистрацию.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Вся правда о сессиях живёт в хранилище документов; промежуточных
//     кэшей сессий нет, гонка конкурентной ротации решается CAS-обновлением.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"time"

	"blogger-platform/internal/config"
	"blogger-platform/internal/notify"
	"blogger-platform/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Никогда не раскрывает, что именно не совпало. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoRefreshToken — cookie refreshToken отсутствует. HTTP 401.
	ErrNoRefreshToken = errors.New("no refresh token")

	// ErrInvalidRefreshToken — refresh-токен не прошёл проверку подписи/формата. HTTP 401.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrRefreshTokenExpired — срок действия refresh-токена истёк. HTTP 401.
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// ErrSessionNotFound — подпись валидна, но сессии (userId, deviceId) нет
	// в хранилище (logout/ревокация). HTTP 401.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionIatMismatch — iat токена не равен iat сессии: предъявлен
	// токен, вытесненный более поздней ротацией. HTTP 401.
	ErrSessionIatMismatch = errors.New("invalid session iat")

	// ErrSessionConflict — конкурентная ротация на одном устройстве:
	// CAS-обновление сессии не совпало. HTTP 409.
	ErrSessionConflict = errors.New("session rotation conflict")

	// ErrInvalidToken — access-токен некорректен по формату/подписи. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия access-токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden — попытка удалить сессию чужого пользователя. HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrDeviceNotFound — сессии с таким deviceId не существует. HTTP 404.
	ErrDeviceNotFound = errors.New("device session not found")

	// ErrTokenIssuance — внутренняя ошибка выпуска: подпись/декодирование
	// свежевыпущенного токена не дало числовых iat/exp. HTTP 500.
	ErrTokenIssuance = errors.New("token issuance failed")

	// ErrEmailTaken — e-mail уже занят другим пользователем. HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrLoginTaken — login уже занят другим пользователем. HTTP 409.
	ErrLoginTaken = errors.New("login already taken")

	// ErrInvalidEmail — e-mail некорректен или не зарегистрирован (resend). HTTP 400.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidLogin — login не проходит политику валидации. HTTP 400.
	ErrInvalidLogin = errors.New("invalid login")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности. HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidCode — код подтверждения/восстановления не найден. HTTP 400.
	ErrInvalidCode = errors.New("invalid code")

	// ErrCodeExpired — код подтверждения/восстановления просрочен. HTTP 400.
	ErrCodeExpired = errors.New("code expired")

	// ErrEmailConfirmed — e-mail уже подтверждён. HTTP 400.
	ErrEmailConfirmed = errors.New("email already confirmed")
)

// Service описывает бизнес-логику auth/session-подсистемы.
type Service struct {
	storage  storage.Storage
	cfg      config.AuthConfig
	notifier notify.Notifier // может быть nil, если уведомления не сконфигурированы

	// now — источник времени; подменяется в тестах для детерминизма.
	now func() time.Time
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}

// SetNotifier устанавливает канал доставки кодов подтверждения (опционально).
func (s *Service) SetNotifier(n notify.Notifier) {
	s.notifier = n
}
