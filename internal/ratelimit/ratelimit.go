// ratelimit реализует ограничение частоты запросов к credential-эндпоинтам
// (login, registration, password-recovery) поверх Redis.
//
// Алгоритм — фиксированное окно: INCR по ключу "rl:<scope>:<ip>" и EXPIRE
// при первом инкременте. Ограничитель намеренно fail-open: недоступность
// Redis не должна блокировать аутентификацию.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogger-platform/internal/pkg/log"

	"github.com/redis/go-redis/v9"
)

// Limiter ограничивает число запросов с одного IP в пределах окна.
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// New создаёт Limiter поверх существующего клиента Redis.
func New(client *redis.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow возвращает true, если запрос из scope с данного IP укладывается в лимит.
// При ошибке Redis запрос пропускается.
func (l *Limiter) Allow(ctx context.Context, scope, ip string) bool {
	const op = "ratelimit.Allow"

	if l == nil || l.client == nil {
		return true
	}

	key := fmt.Sprintf("rl:%s:%s", scope, ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		log.From(ctx).Warn("rate_limit_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return true
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			log.From(ctx).Warn("rate_limit_expire_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return count <= l.limit
}
