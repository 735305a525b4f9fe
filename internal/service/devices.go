package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blogger-platform/internal/models"
	"blogger-platform/internal/pkg/log"
	"blogger-platform/internal/storage"

	"github.com/google/uuid"
)

// ActiveDevices возвращает активные девайс-сессии пользователя,
// отсортированные по времени последней активности (новые первыми).
func (s *Service) ActiveDevices(ctx context.Context, userID uuid.UUID) ([]models.DeviceView, error) {
	const op = "service.devices.ActiveDevices"

	sessions, err := s.storage.SessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]models.DeviceView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, models.DeviceViewFromSession(sess))
	}

	return views, nil
}

// TerminateDevice завершает сессию конкретного устройства.
//
// Поиск идёт по deviceId без фильтра по владельцу — только так можно
// различить «сессии нет вовсе» (ErrDeviceNotFound) и «сессия есть, но чужая»
// (ErrForbidden). Порядок проверок фиксирован: сначала существование,
// затем владение.
func (s *Service) TerminateDevice(ctx context.Context, auth *models.AuthContext, deviceID string) error {
	const op = "service.devices.TerminateDevice"

	lg := log.From(ctx)

	session, err := s.storage.SessionByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrDeviceNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if session.UserID != auth.UserID {
		lg.Warn("terminate_foreign_device",
			slog.String("op", op),
			slog.String("user_id", auth.UserID.String()),
			slog.String("device_id", deviceID),
		)
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if _, err := s.storage.DeleteSession(ctx, session.UserID, session.DeviceID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// TerminateOtherDevices завершает все сессии пользователя, кроме текущей.
// Возвращает число завершённых сессий.
func (s *Service) TerminateOtherDevices(ctx context.Context, auth *models.AuthContext) (int64, error) {
	const op = "service.devices.TerminateOtherDevices"

	lg := log.From(ctx)

	deleted, err := s.storage.DeleteOtherSessions(ctx, auth.UserID, auth.DeviceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("other_devices_terminated",
		slog.String("op", op),
		slog.String("user_id", auth.UserID.String()),
		slog.Int64("count", deleted),
	)

	return deleted, nil
}
