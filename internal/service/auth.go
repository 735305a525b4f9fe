package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blogger-platform/internal/models"
	"blogger-platform/internal/pkg/log"
	"blogger-platform/internal/pkg/redact"
	"blogger-platform/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login выполняет вход по login/email + пароль и создаёт новую девайс-сессию.
//
// deviceId генерируется заново при каждом входе — поэтому инвариант «одна
// сессия на (userId, deviceId)» выполняется по построению, а upsert в
// SaveSession страхует от повторного входа с уже известным deviceId.
// В access-токен кладётся loginOrEmail ровно в том виде, в котором его ввёл
// пользователь.
func (s *Service) Login(ctx context.Context, loginOrEmail, password, ip, userAgent string) (*models.TokenPair, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	if loginOrEmail == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByLoginOrEmail(ctx, loginOrEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("login", redact.Email(user.Email)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	deviceID := uuid.NewString()
	now := s.now().UTC()

	accessToken, err := s.generateAccessToken(ctx, loginOrEmail, user.ID, deviceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, iat, exp, err := s.generateRefreshToken(ctx, user.ID, deviceID, ip, userAgent, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session := &models.Session{
		UserID:    user.ID,
		DeviceID:  deviceID,
		IP:        ip,
		Title:     userAgent,
		IssuedAt:  iat,
		ExpiresAt: exp,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok",
		slog.String("op", op),
		slog.String("user_id", user.ID.String()),
		slog.String("device_id", deviceID),
	)

	return &models.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshIssuedAt:  iat,
		RefreshExpiresAt: exp,
	}, nil
}

// Authenticate — машина состояний refresh-guard-а. Чистая проверка без
// мутаций; ротацию выполняет Refresh после успешного прохождения guard-а.
//
// Порядок проверок фиксирован:
//  1. токен присутствует;
//  2. подпись и срок действия валидны (refresh-секрет);
//  3. сессия (userId, deviceId) существует;
//  4. iat токена в точности равен iat сессии — предъявление токена,
//     вытесненного более поздней ротацией, отклоняется, хотя его подпись
//     всё ещё криптографически валидна.
func (s *Service) Authenticate(ctx context.Context, rawRefreshToken string) (*models.AuthContext, error) {
	const op = "service.auth.Authenticate"

	lg := log.From(ctx)

	if rawRefreshToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoRefreshToken)
	}

	claims, iat, err := s.parseRefreshToken(rawRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	session, err := s.storage.SessionByUserAndDevice(ctx, uid, claims.DeviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_session_not_found",
				slog.String("op", op),
				slog.String("user_id", uid.String()),
				slog.String("device_id", claims.DeviceID),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !session.IssuedAt.Equal(iat) {
		lg.Warn("refresh_iat_mismatch",
			slog.String("op", op),
			slog.String("user_id", uid.String()),
			slog.String("device_id", claims.DeviceID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrSessionIatMismatch)
	}

	return &models.AuthContext{
		UserID:    uid,
		DeviceID:  claims.DeviceID,
		IP:        claims.UserIP,
		UserAgent: claims.UserAgent,
		IssuedAt:  iat,
	}, nil
}

// Refresh выпускает новую пару токенов для уже аутентифицированной
// (guard-ом) сессии и атомарно ротирует её iat/exp.
//
// deviceId переиспользуется; ip/userAgent берутся из текущего запроса и
// обновляются в сессии как метаданные. CAS-обновление, не совпавшее по
// старому iat, означает конкурентную ротацию — ErrSessionConflict, пара
// не выдаётся.
func (s *Service) Refresh(ctx context.Context, auth *models.AuthContext, ip, userAgent string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	lg := log.From(ctx)

	user, err := s.storage.UserByID(ctx, auth.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()

	accessToken, err := s.generateAccessToken(ctx, user.Email, user.ID, auth.DeviceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, iat, exp, err := s.generateRefreshToken(ctx, user.ID, auth.DeviceID, ip, userAgent, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.RotateSession(ctx, user.ID, auth.DeviceID, auth.IssuedAt, iat, exp, ip, userAgent); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			lg.Warn("refresh_rotation_conflict",
				slog.String("op", op),
				slog.String("user_id", user.ID.String()),
				slog.String("device_id", auth.DeviceID),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrSessionConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshIssuedAt:  iat,
		RefreshExpiresAt: exp,
	}, nil
}

// Logout удаляет сессию текущего устройства.
//
// Уже отсутствующая сессия считается успехом: конечное состояние
// («сессии нет») идентично, а клиент в любом случае получает очистку cookie.
func (s *Service) Logout(ctx context.Context, auth *models.AuthContext) error {
	const op = "service.auth.Logout"

	lg := log.From(ctx)

	deleted, err := s.storage.DeleteSession(ctx, auth.UserID, auth.DeviceID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !deleted {
		lg.Warn("logout_session_already_gone",
			slog.String("op", op),
			slog.String("user_id", auth.UserID.String()),
			slog.String("device_id", auth.DeviceID),
		)
	}

	return nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем (bcrypt сам по себе устойчив
// к timing-атакам на сравнение).
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
