package testkit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisInstance is a Redis test instance, either a started container or an
// external instance supplied through the options.
type RedisInstance struct {
	container testcontainers.Container
	addr      string
}

// Addr returns the host:port of the test instance.
func (r *RedisInstance) Addr() string { return r.addr }

// Close terminates the container if one was started.
func (r *RedisInstance) Close(ctx context.Context) error {
	if r.container == nil {
		return nil
	}
	return r.container.Terminate(ctx)
}

func startRedis(ctx context.Context, opts Options) (*RedisInstance, error) {
	if opts.ExternalRedisAddr != "" {
		return &RedisInstance{addr: opts.ExternalRedisAddr}, nil
	}

	ctr, err := tcredis.Run(ctx, opts.RedisImage)
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("redis connection string: %w", err)
	}

	// Clients take a host:port addr, not a redis:// URL.
	u, err := url.Parse(connStr)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("parse redis connection string %q: %w", connStr, err)
	}

	return &RedisInstance{container: ctr, addr: u.Host}, nil
}
