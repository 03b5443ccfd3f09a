package counter

import (
	"context"

	"go.uber.org/zap"

	"github.com/mikey/clearbox/internal/core"
)

// Failover wraps a remote CounterStore and degrades its failures to a local
// in-memory store instead of propagating them. Allowance decisions stay
// available during a store outage at the cost of temporarily local (and
// potentially stale) counts; the trade is availability over strict
// cross-instance consistency.
type Failover struct {
	primary  core.CounterStore
	fallback *MemoryStore
	logger   *zap.Logger
}

// NewFailover wraps primary with a fresh local fallback
func NewFailover(primary core.CounterStore, logger *zap.Logger) *Failover {
	return &Failover{
		primary:  primary,
		fallback: NewMemoryStore(),
		logger:   logger,
	}
}

// Get reads from the primary store, falling back locally on error
func (f *Failover) Get(ctx context.Context, key string) (int64, error) {
	value, err := f.primary.Get(ctx, key)
	if err != nil {
		f.logger.Warn("Counter store get failed, using local fallback",
			zap.String("key", key),
			zap.Error(err))
		return f.fallback.Get(ctx, key)
	}
	return value, nil
}

// IncrementBy increments in the primary store, falling back locally on error
func (f *Failover) IncrementBy(ctx context.Context, key string, n int64) (int64, error) {
	value, err := f.primary.IncrementBy(ctx, key, n)
	if err != nil {
		f.logger.Warn("Counter store increment failed, using local fallback",
			zap.String("key", key),
			zap.Error(err))
		return f.fallback.IncrementBy(ctx, key, n)
	}
	return value, nil
}

// Stop stops the primary store if it holds resources
func (f *Failover) Stop() {
	if stopper, ok := f.primary.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}
