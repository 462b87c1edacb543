package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config captures the connection settings for the Redis instance backing the
// login throttle.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PingTimeout bounds the connectivity check; defaultPingTimeout when zero.
	PingTimeout time.Duration
}

// Connect opens a client against cfg and verifies the instance is reachable
// before handing it out, so a misconfigured address fails at startup rather
// than on the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
