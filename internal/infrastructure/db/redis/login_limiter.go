package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

const (
	maxFailedAttempts = 5
	attemptWindow     = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per email, backed by Redis.
// Key format: login_fail:<email>; the counter expires after attemptWindow,
// so a block clears itself without any cleanup job.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow returns domain.ErrTooManyAttempts when key has accumulated
// maxFailedAttempts failures within the window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) error {
	n, err := l.client.Get(ctx, l.key(key)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("limiter check: %w", err)
	}
	if n >= maxFailedAttempts {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// Fail records one failed attempt, starting the expiry window on the first.
func (l *LoginLimiter) Fail(ctx context.Context, key string) error {
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, l.key(key))
	pipe.Expire(ctx, l.key(key), attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter fail: %w", err)
	}
	return nil
}

// Reset clears the failure count after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("limiter reset: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(email string) string {
	return "login_fail:" + email
}
