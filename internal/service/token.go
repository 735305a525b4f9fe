package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blogger-platform/internal/models"
	"blogger-platform/internal/pkg/log"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims — полезная нагрузка access-токена.
// Подписывается access-секретом; компрометация access-секрета не позволяет
// выпускать refresh-токены (независимые секреты и TTL).
type accessClaims struct {
	LoginOrEmail string `json:"loginOrEmail"`
	UserID       string `json:"userId"`
	DeviceID     string `json:"deviceId"`
	jwt.RegisteredClaims
}

// refreshClaims — полезная нагрузка refresh-токена.
// IP/UserAgent — информационные метаданные, в проверку валидности не входят.
type refreshClaims struct {
	UserID    string `json:"userId"`
	DeviceID  string `json:"deviceId"`
	UserIP    string `json:"userIP"`
	UserAgent string `json:"userAgent"`
	jwt.RegisteredClaims
}

// generateAccessToken генерирует access-токен.
func (s *Service) generateAccessToken(ctx context.Context, loginOrEmail string, userID uuid.UUID, deviceID string, now time.Time) (string, error) {
	const op = "service.token.generateAccessToken"

	lg := log.From(ctx)

	claims := accessClaims{
		LoginOrEmail: loginOrEmail,
		UserID:       userID.String(),
		DeviceID:     deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.AccessSecret))
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, ErrTokenIssuance)
	}

	return signed, nil
}

// generateRefreshToken генерирует refresh-токен и возвращает его iat/exp.
//
// iat/exp извлекаются декодированием свежеподписанного токена, а не берутся
// из локальных переменных: ровно это значение iat будет персистировано в
// сессию, и ровно его предъявит клиент при следующей ротации. Если декод
// не даёт числовых iat/exp — ErrTokenIssuance.
func (s *Service) generateRefreshToken(ctx context.Context, userID uuid.UUID, deviceID, ip, userAgent string, now time.Time) (string, time.Time, time.Time, error) {
	const op = "service.token.generateRefreshToken"

	lg := log.From(ctx)

	claims := refreshClaims{
		UserID:    userID.String(),
		DeviceID:  deviceID,
		UserIP:    ip,
		UserAgent: userAgent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.RefreshTokenTTL)),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.RefreshSecret))
	if err != nil {
		lg.Error("refresh_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, time.Time{}, fmt.Errorf("%s: %w", op, ErrTokenIssuance)
	}

	decoded, _, err := s.parseRefreshToken(signed)
	if err != nil {
		lg.Error("refresh_token_decode_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, time.Time{}, fmt.Errorf("%s: %w", op, ErrTokenIssuance)
	}

	if decoded.IssuedAt == nil || decoded.ExpiresAt == nil {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%s: %w", op, ErrTokenIssuance)
	}

	return signed, decoded.IssuedAt.Time.UTC(), decoded.ExpiresAt.Time.UTC(), nil
}

// parseRefreshToken проверяет подпись/срок refresh-токена и возвращает claims
// вместе с iat (секундная точность).
func (s *Service) parseRefreshToken(raw string) (*refreshClaims, time.Time, error) {
	const op = "service.token.parseRefreshToken"

	token, err := jwt.ParseWithClaims(raw, &refreshClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: unexpected method", op)
			}

			return []byte(s.cfg.RefreshSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, time.Time{}, fmt.Errorf("%s: %w", op, ErrRefreshTokenExpired)
		}

		return nil, time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	claims, ok := token.Claims.(*refreshClaims)
	if !ok || !token.Valid || claims.IssuedAt == nil {
		return nil, time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	return claims, claims.IssuedAt.Time.UTC(), nil
}

// ValidateAccessToken проверяет access-токен и возвращает личность запроса.
// Истёкший срок и невалидная подпись различаются для клиентских сообщений,
// но оба маппятся на HTTP 401.
func (s *Service) ValidateAccessToken(raw string) (*models.AuthContext, error) {
	const op = "service.token.ValidateAccessToken"

	token, err := jwt.ParseWithClaims(raw, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: unexpected method", op)
			}

			return []byte(s.cfg.AccessSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &models.AuthContext{
		UserID:       uid,
		DeviceID:     claims.DeviceID,
		LoginOrEmail: claims.LoginOrEmail,
	}, nil
}
