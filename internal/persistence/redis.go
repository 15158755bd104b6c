package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/deskmetrics/helpdesk-reports/internal/config"
)

// Redis holds the client behind the login throttle. Client is nil when Redis
// is disabled; the throttle is then off and readiness does not probe it.
type Redis struct {
	Client *redis.Client
	addr   string
}

// NewRedis connects to Redis. An unreachable server is logged, not fatal:
// the throttle fails open until Redis comes back.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if !cfg.Enabled {
		logger.Info("redis disabled, login throttle off")
		return &Redis{addr: cfg.Addr}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	r := &Redis{Client: client, addr: cfg.Addr}

	if err := r.Ping(ctx); err != nil {
		logger.Warn("login throttle running open", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}
	return r
}

// Enabled reports whether a client was configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping checks the throttle's backing store. Errors name the address so the
// readiness body points at the failing instance.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", r.addr, err)
	}
	return nil
}
