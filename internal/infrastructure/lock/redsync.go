package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const drainLockName = "portal:email-drain"

// RedsyncDrainLocker keeps one email drain cycle running across all portal instances.
type RedsyncDrainLocker struct {
	rs  *redsync.Redsync
	ttl time.Duration
}

func NewRedsyncDrainLocker(client *redis.Client, ttl time.Duration) *RedsyncDrainLocker {
	return &RedsyncDrainLocker{
		rs:  redsync.New(goredis.NewPool(client)),
		ttl: ttl,
	}
}

func (l *RedsyncDrainLocker) Acquire(ctx context.Context) (func(), error) {
	mutex := l.rs.NewMutex(drainLockName,
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// С одной попыткой любая ошибка означает, что проход уже идет или Redis недоступен
		return nil, fmt.Errorf("%w: %v", domain.ErrDrainInProgress, err)
	}

	return func() {
		if _, err := mutex.Unlock(); err != nil {
			slog.Warn("failed to release drain lock", "error", err)
		}
	}, nil
}
