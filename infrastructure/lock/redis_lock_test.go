package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedisLock_AcquireIsExclusive(t *testing.T) {
	_, client := setupRedis(t)
	ctx := context.Background()

	first := NewRedisLock(client, "snapshot-prune", time.Minute)
	second := NewRedisLock(client, "snapshot-prune", time.Minute)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Release(ctx))

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_ReleaseOnlyByOwner(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	owner := NewRedisLock(client, "snapshot-prune", time.Minute)
	other := NewRedisLock(client, "snapshot-prune", time.Minute)

	ok, err := owner.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, other.Release(ctx))
	assert.True(t, mr.Exists("lock:snapshot-prune"))

	require.NoError(t, owner.Release(ctx))
	assert.False(t, mr.Exists("lock:snapshot-prune"))
}

func TestRedisLock_ExpiresAfterTTL(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	first := NewRedisLock(client, "snapshot-prune", 10*time.Second)
	second := NewRedisLock(client, "snapshot-prune", 10*time.Second)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(11 * time.Second)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_Extend(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	owner := NewRedisLock(client, "snapshot-prune", 10*time.Second)
	other := NewRedisLock(client, "snapshot-prune", 10*time.Second)

	ok, err := owner.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	extended, err := other.Extend(ctx, time.Minute)
	require.NoError(t, err)
	assert.False(t, extended)

	extended, err = owner.Extend(ctx, time.Minute)
	require.NoError(t, err)
	assert.True(t, extended)

	mr.FastForward(30 * time.Second)
	assert.True(t, mr.Exists("lock:snapshot-prune"))
}
