package auth

import (
	"context"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
)

type contextKey string

const userKey = contextKey("user")

func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}
