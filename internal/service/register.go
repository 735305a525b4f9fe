package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"blogger-platform/internal/models"
	"blogger-platform/internal/pkg/log"
	"blogger-platform/internal/pkg/redact"
	"blogger-platform/internal/storage"

	"github.com/google/uuid"
)

// Политики валидации регистрационных полей.
const (
	minLoginLen    = 3
	maxLoginLen    = 10
	minPasswordLen = 6
	maxPasswordLen = 20
)

var (
	loginRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRe = regexp.MustCompile(`^[\w.+-]+@([\w-]+\.)+[\w-]{2,}$`)
)

// validateLogin проверяет login по политике: длина и допустимый алфавит.
func validateLogin(login string) error {
	if len(login) < minLoginLen || len(login) > maxLoginLen || !loginRe.MatchString(login) {
		return ErrInvalidLogin
	}

	return nil
}

// validateEmail проверяет синтаксис e-mail.
func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// validatePassword проверяет пароль по политике длины.
func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return ErrWeakPassword
	}

	return nil
}

// RegisterUser регистрирует нового пользователя и отправляет код
// подтверждения e-mail.
//
// Уникальность login/email проверяется предварительными выборками (для
// точного сообщения об ошибке), а уникальные индексы хранилища закрывают
// гонку конкурентной регистрации. Ошибка доставки кода не фатальна:
// пользователь уже создан, код можно запросить повторно.
func (s *Service) RegisterUser(ctx context.Context, login, email, password string) (*models.User, error) {
	const op = "service.register.RegisterUser"

	lg := log.From(ctx)

	if err := validateLogin(login); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validateEmail(email); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.UserByLoginOrEmail(ctx, login); err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrLoginTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.UserByLoginOrEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()

	user := &models.User{
		ID:           uuid.New(),
		Login:        login,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		Confirmation: models.EmailConfirmation{
			Code:      uuid.NewString(),
			ExpiresAt: now.Add(s.cfg.ConfirmationTTL),
			Confirmed: false,
		},
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// гонка конкурентной регистрации: уникальный индекс сработал
			// после наших предварительных выборок.
			return nil, fmt.Errorf("%s: %w", op, ErrLoginTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.sendConfirmation(ctx, op, user.Email, user.Confirmation.Code)

	lg.Info("user_registered",
		slog.String("op", op),
		slog.String("user_id", user.ID.String()),
		slog.String("email", redact.Email(user.Email)),
	)

	return user, nil
}

// ConfirmEmail подтверждает e-mail по одноразовому коду.
func (s *Service) ConfirmEmail(ctx context.Context, code string) error {
	const op = "service.register.ConfirmEmail"

	if code == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	user, err := s.storage.UserByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidCode)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.Confirmation.Confirmed {
		return fmt.Errorf("%s: %w", op, ErrEmailConfirmed)
	}

	if s.now().UTC().After(user.Confirmation.ExpiresAt) {
		return fmt.Errorf("%s: %w", op, ErrCodeExpired)
	}

	if err := s.storage.UpdateConfirmation(ctx, user.ID, models.EmailConfirmation{Confirmed: true}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResendConfirmation перевыпускает код подтверждения и отправляет его заново.
// Прежний код после перевыпуска недействителен.
func (s *Service) ResendConfirmation(ctx context.Context, email string) error {
	const op = "service.register.ResendConfirmation"

	if err := validateEmail(email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByLoginOrEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidEmail)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.Confirmation.Confirmed {
		return fmt.Errorf("%s: %w", op, ErrEmailConfirmed)
	}

	confirmation := models.EmailConfirmation{
		Code:      uuid.NewString(),
		ExpiresAt: s.now().UTC().Add(s.cfg.ConfirmationTTL),
	}

	if err := s.storage.UpdateConfirmation(ctx, user.ID, confirmation); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.sendConfirmation(ctx, op, user.Email, confirmation.Code)

	return nil
}

// RecoverPassword выпускает код восстановления пароля и отправляет его на
// e-mail. Незарегистрированный e-mail НЕ является ошибкой: ответ одинаков в
// обоих случаях, чтобы не раскрывать наличие аккаунта.
func (s *Service) RecoverPassword(ctx context.Context, email string) error {
	const op = "service.register.RecoverPassword"

	lg := log.From(ctx)

	if err := validateEmail(email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByLoginOrEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("recovery_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(email)),
			)
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	recovery := models.PasswordRecovery{
		Code:      uuid.NewString(),
		ExpiresAt: s.now().UTC().Add(s.cfg.ConfirmationTTL),
	}

	if err := s.storage.UpdateRecovery(ctx, user.ID, recovery); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendRecoveryCode(ctx, user.Email, recovery.Code); err != nil {
			lg.Error("recovery_code_send_failed",
				slog.String("op", op),
				slog.String("email", redact.Email(user.Email)),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

// NewPassword устанавливает новый пароль по коду восстановления.
// Код одноразовый: успешная смена пароля сбрасывает его.
func (s *Service) NewPassword(ctx context.Context, code, newPassword string) error {
	const op = "service.register.NewPassword"

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if code == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	user, err := s.storage.UserByRecoveryCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidCode)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if s.now().UTC().After(user.Recovery.ExpiresAt) {
		return fmt.Errorf("%s: %w", op, ErrCodeExpired)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Me возвращает профиль текущего пользователя.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "service.register.Me"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// sendConfirmation отправляет код подтверждения; ошибка доставки логируется
// и не прерывает основную операцию.
func (s *Service) sendConfirmation(ctx context.Context, op, email, code string) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendConfirmationCode(ctx, email, code); err != nil {
		log.From(ctx).Error("confirmation_code_send_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
	}
}
