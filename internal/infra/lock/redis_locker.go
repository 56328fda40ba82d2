package lock

import (
	"context"
	"log/slog"
	"time"

	"floorplan-service/internal/infra"
	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "floorplan:lock:"
	retryInterval = 25 * time.Millisecond
)

// Deletes the key only while it still carries our token, so an expired lock
// taken over by another writer is left alone.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisLocker serializes writers of a plan across service instances.
type RedisLocker struct {
	client  redis.Cmdable
	ttl     time.Duration
	wait    time.Duration
	slogger *slog.Logger
}

func NewRedisLocker(client redis.Cmdable, ttl, wait time.Duration, slogger *slog.Logger) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, wait: wait, slogger: slogger}
}

var _ shared.PlanLocker = (*RedisLocker)(nil)

func (l *RedisLocker) Lock(ctx context.Context, planID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + planID.String()
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	for {
		ok, err := l.client.SetNX(waitCtx, key, token, l.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, infra.WrapRepoErr(l.slogger, infra.KindDBFailure, "failed to acquire plan lock", err)
		}
		if ok {
			return l.unlockFunc(key, token), nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, infra.WrapRepoErr(l.slogger, infra.KindLockTimeout, "timed out waiting for plan lock", nil)
		case <-time.After(retryInterval):
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) func() {
	return func() {
		// The request context may already be cancelled; release regardless.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.slogger.Warn("failed to release plan lock", "key", key, "error", err.Error())
		}
	}
}
