package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph/pkg/adapters/redis"
	"github.com/aretw0/camelgraph/pkg/ports"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := setup(t)
	ports.RunResultCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v")))
	assert.Equal(t, time.Second, mr.TTL(redis.DefaultPrefix+"k"))

	mr.FastForward(2 * time.Second)

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client, redis.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists("test:k"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"k"))

	require.NoError(t, cache.Ping(ctx))
}

func TestRedisCache_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	cache := redis.New(mr.Addr(), "", 0)
	defer cache.Close()
	mr.Close()

	_, err = cache.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrCacheMiss)
}
