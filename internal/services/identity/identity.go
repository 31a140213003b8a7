package identity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pixhub/internal/lib/logger/sl"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type UserChecker interface {
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Gateway проверяет существование пользователя и кеширует
// положительные ответы. Отрицательные не кешируются: пользователь
// мог быть создан сразу после промаха.
type Gateway struct {
	log   *slog.Logger
	users UserChecker
	cache *cache.Cache
}

func NewGateway(log *slog.Logger, users UserChecker, ttl time.Duration) *Gateway {
	return &Gateway{
		log:   log,
		users: users,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Exists сообщает, есть ли пользователь с таким id
func (g *Gateway) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "services.identity.Gateway.Exists"

	key := userID.String()
	if _, found := g.cache.Get(key); found {
		return true, nil
	}

	exists, err := g.users.UserExists(ctx, userID)
	if err != nil {
		g.log.Error("failed to check user existence",
			slog.String("op", op),
			slog.String("user_id", key),
			sl.Err(err),
		)
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if exists {
		g.cache.SetDefault(key, struct{}{})
	}

	return exists, nil
}
