package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const failedLoginKeyPrefix = "helpdesk:login_failures:"

// LoginLimiter counts consecutive failed logins in Redis. Redis outages fail
// open: the limiter then never locks anyone out. A nil limiter is disabled.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int
	lockout     time.Duration
	logger      *zap.Logger
}

// NewLoginLimiter returns nil when the client is missing or either limit is not
// positive.
func NewLoginLimiter(client *redis.Client, maxFailures int, lockout time.Duration, logger *zap.Logger) *LoginLimiter {
	if client == nil || maxFailures <= 0 || lockout <= 0 {
		return nil
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, lockout: lockout, logger: logger}
}

// Locked reports whether login has reached the failure threshold.
func (l *LoginLimiter) Locked(ctx context.Context, login string) bool {
	if l == nil {
		return false
	}
	n, err := l.client.Get(ctx, failedLoginKeyPrefix+login).Int()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.logger.Warn("login throttle unavailable", zap.Error(err))
		}
		return false
	}
	return n >= l.maxFailures
}

// RecordFailure increments the counter and restarts the lockout window in the
// same MULTI/EXEC, so a counter never outlives its expiry. Failures are not
// recorded while locked, so a lockout lasts exactly one window from the
// failure that reached the threshold.
func (l *LoginLimiter) RecordFailure(ctx context.Context, login string) {
	if l == nil {
		return
	}
	key := failedLoginKeyPrefix + login
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.lockout)
		return nil
	})
	if err != nil {
		l.logger.Warn("login throttle unavailable", zap.Error(err))
		return
	}
	if incr.Val() == int64(l.maxFailures) {
		l.logger.Warn("login locked", zap.String("login", login), zap.Duration("lockout", l.lockout))
	}
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, login string) {
	if l == nil {
		return
	}
	if err := l.client.Del(ctx, failedLoginKeyPrefix+login).Err(); err != nil {
		l.logger.Warn("login throttle reset failed", zap.Error(err))
	}
}
