package middleware

import (
	"context"

	"blogger-platform/internal/models"
)

type authCtxKey struct{}

// AuthInto кладёт аутентифицированную личность запроса в контекст.
// Используется guard-ами; хендлеры достают её через AuthFrom.
func AuthInto(ctx context.Context, auth *models.AuthContext) context.Context {
	return context.WithValue(ctx, authCtxKey{}, auth)
}

// AuthFrom возвращает личность запроса из контекста или nil,
// если запрос не проходил через guard.
func AuthFrom(ctx context.Context) *models.AuthContext {
	auth, _ := ctx.Value(authCtxKey{}).(*models.AuthContext)
	return auth
}
