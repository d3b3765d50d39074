package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisCache connects to CALCDESK_TEST_REDIS_ADDR (default
// localhost:6379, db 15) and skips the test when nothing answers.
func newTestRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("CALCDESK_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	cache := NewRedisCache(addr, "", 15)
	t.Cleanup(func() { _ = cache.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	return cache
}

func TestRedisCache_SetGet(t *testing.T) {
	cache := newTestRedisCache(t)
	ctx := context.Background()
	key := "calcdesk:test:" + uuid.NewString()
	t.Cleanup(func() { cache.client.Del(context.Background(), key) })

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok, "expected miss for unknown key")

	require.NoError(t, cache.Set(ctx, key, `{"monthly_payment":1896.2}`, time.Minute))

	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, `{"monthly_payment":1896.2}`, got)

	ttl, err := cache.client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCache_Expiry(t *testing.T) {
	cache := newTestRedisCache(t)
	ctx := context.Background()
	key := "calcdesk:test:" + uuid.NewString()

	require.NoError(t, cache.Set(ctx, key, "v", 100*time.Millisecond))
	_, ok := cache.Get(ctx, key)
	require.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, key)
		return !ok
	}, 2*time.Second, 50*time.Millisecond)
}

func TestRedisCache_UnreachableServerIsAMiss(t *testing.T) {
	cache := NewRedisCache("127.0.0.1:1", "", 0)
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, cache.Ping(ctx))
	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Error(t, cache.Set(ctx, "k", "v", time.Minute))
}
