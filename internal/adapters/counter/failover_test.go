package counter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("store down")

type brokenStore struct {
	stopped bool
}

func (b *brokenStore) Get(context.Context, string) (int64, error) {
	return 0, errStoreDown
}

func (b *brokenStore) IncrementBy(context.Context, string, int64) (int64, error) {
	return 0, errStoreDown
}

func (b *brokenStore) Stop() {
	b.stopped = true
}

func TestFailoverUsesPrimaryWhenHealthy(t *testing.T) {
	primary := NewMemoryStore()
	failover := NewFailover(primary, zap.NewNop())
	ctx := context.Background()

	value, err := failover.IncrementBy(ctx, "counter", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), value)

	// The value lives in the primary, not the fallback
	primaryValue, err := primary.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(7), primaryValue)
}

func TestFailoverDegradesToLocal(t *testing.T) {
	failover := NewFailover(&brokenStore{}, zap.NewNop())
	ctx := context.Background()

	value, err := failover.IncrementBy(ctx, "counter", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), value)

	// Local counts accumulate across the outage
	value, err = failover.IncrementBy(ctx, "counter", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)

	value, err = failover.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)
}

func TestFailoverStopForwardsToPrimary(t *testing.T) {
	primary := &brokenStore{}
	failover := NewFailover(primary, zap.NewNop())
	failover.Stop()
	assert.True(t, primary.stopped)
}
