package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/pkg/db/redis"
)

func newTestConfig(t *testing.T) (*miniredis.Miniredis, *redis.Config) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := redis.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return s, cfg
}

func TestClient_Operations(t *testing.T) {
	s, cfg := newTestConfig(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))

	value, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	s.FastForward(2 * time.Minute)

	_, err = client.Get(ctx, "k")
	require.ErrorIs(t, err, redis.ErrKeyNotFound)

	require.NoError(t, client.Set(ctx, "other", "1", 0))
	require.NoError(t, client.Delete(ctx, "other"))
	exists, err = client.Exists(ctx, "other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewClient_ConnectionFailure(t *testing.T) {
	cfg := redis.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.ConnectTimeout = 100 * time.Millisecond
	cfg.Timeout = 100 * time.Millisecond

	client, err := redis.NewClient(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), redis.ErrConnect)
}
