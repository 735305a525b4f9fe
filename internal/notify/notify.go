// notify отвечает за доставку кодов подтверждения e-mail и восстановления
// пароля. Боевая реализация подключает внешний почтовый шлюз; для локальной
// разработки и тестов используется LogNotifier, который пишет события в лог.
package notify

import (
	"context"
	"log/slog"

	"blogger-platform/internal/pkg/log"
	"blogger-platform/internal/pkg/redact"
)

// Notifier — канал доставки одноразовых кодов пользователю.
type Notifier interface {
	// SendConfirmationCode отправляет код подтверждения e-mail.
	SendConfirmationCode(ctx context.Context, email, code string) error
	// SendRecoveryCode отправляет код восстановления пароля.
	SendRecoveryCode(ctx context.Context, email, code string) error
}

// LogNotifier пишет уведомления в лог вместо реальной отправки.
// Сам код в лог не попадает.
type LogNotifier struct{}

// NewLogNotifier создаёт LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendConfirmationCode(ctx context.Context, email, code string) error {
	log.From(ctx).Info("send_confirmation_code",
		slog.String("email", redact.Email(email)),
		slog.String("code", redact.Token()),
	)

	return nil
}

func (n *LogNotifier) SendRecoveryCode(ctx context.Context, email, code string) error {
	log.From(ctx).Info("send_recovery_code",
		slog.String("email", redact.Email(email)),
		slog.String("code", redact.Token()),
	)

	return nil
}
