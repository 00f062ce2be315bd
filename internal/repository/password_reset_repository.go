package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrResetTokenNotFound is returned for unknown, expired or already
// consumed reset tokens.
var ErrResetTokenNotFound = errors.New("reset token not found")

// PasswordResetRepository stores one-shot password reset tokens.
type PasswordResetRepository interface {
	Create(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the user id for the token and invalidates it.
	Consume(ctx context.Context, token string) (string, error)
}

const resetKeyPrefix = "pwreset:"

type passwordResetRepository struct {
	client *redis.Client
}

// NewPasswordResetRepository returns a Redis-backed implementation.
// Redis TTLs give expiry for free and GETDEL makes consumption one-shot.
func NewPasswordResetRepository(client *redis.Client) PasswordResetRepository {
	return &passwordResetRepository{client: client}
}

func (r *passwordResetRepository) Create(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, resetKeyPrefix+token, userID, ttl).Err()
}

func (r *passwordResetRepository) Consume(ctx context.Context, token string) (string, error) {
	userID, err := r.client.GetDel(ctx, resetKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrResetTokenNotFound
		}
		return "", err
	}
	return userID, nil
}
