package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxFailures   = 5
	failureWindow = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per account in Redis.
// Key format: login_failures:<email>, expiring after failureWindow.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// Blocked reports whether the account has exceeded the failure budget inside
// the current window.
func (t *LoginThrottle) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter; the first failure opens the
// window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, failureWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email string) string {
	return "login_failures:" + email
}
