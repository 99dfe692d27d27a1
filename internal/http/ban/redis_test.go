//go:build integration

package ban

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedisStore(t *testing.T, maxFailures int) (*RedisStore, *redis.Client) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(context.Background()).Err())
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, maxFailures, time.Minute, zap.NewNop()), rdb
}

func TestRedisStore_BansAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	s, rdb := newRedisStore(t, 3)
	target := "test-" + uuid.NewString()
	t.Cleanup(func() { rdb.Del(context.Background(), failKey(target), banKey(target)) })

	for i := 1; i < 3; i++ {
		strikes, banned, err := s.RecordFailure(ctx, target, "/login")
		require.NoError(t, err)
		assert.Equal(t, i, strikes)
		assert.False(t, banned)
	}

	ttl, err := rdb.TTL(ctx, failKey(target)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0), "failure window must expire")

	strikes, banned, err := s.RecordFailure(ctx, target, "/login")
	require.NoError(t, err)
	assert.Equal(t, 3, strikes)
	assert.True(t, banned)

	isBanned, err := s.Banned(ctx, target)
	require.NoError(t, err)
	assert.True(t, isBanned)

	entries, err := s.BanLog(ctx)
	require.NoError(t, err)
	found := false
	for _, e := range entries {
		if e.Target == target {
			found = true
			assert.Equal(t, "/login", e.Route)
		}
	}
	assert.True(t, found, "ban must be logged")
}

func TestRedisStore_Reset(t *testing.T) {
	ctx := context.Background()
	s, rdb := newRedisStore(t, 3)
	target := "test-" + uuid.NewString()
	t.Cleanup(func() { rdb.Del(context.Background(), failKey(target), banKey(target)) })

	_, _, err := s.RecordFailure(ctx, target, "/login")
	require.NoError(t, err)
	require.NoError(t, s.Reset(ctx, target))

	strikes, banned, err := s.RecordFailure(ctx, target, "/login")
	require.NoError(t, err)
	assert.Equal(t, 1, strikes)
	assert.False(t, banned)
}
