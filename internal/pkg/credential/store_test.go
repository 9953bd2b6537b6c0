package credential

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "s1", "token-1", time.Hour))
	require.NoError(t, store.Set(ctx, "s2", "token-2", 0))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)

	require.NoError(t, store.Set(ctx, "s1", "token-1b", time.Hour))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "token-1b", got)

	got, err = store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "token-2", got)

	require.NoError(t, store.Remove(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	// removing twice is not an error
	assert.NoError(t, store.Remove(ctx, "s1"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "s", "token", time.Minute))
	now = now.Add(2 * time.Minute)

	_, err := store.Get(ctx, "s")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, store.entries, "s")
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, NewRedisStore(client, "portal:credential:"))
}

func TestRedisStore_PingFailsWhenDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "p:")
	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestRedisStore_TTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "p:")
	require.NoError(t, store.Set(ctx, "s", "token", time.Minute))
	assert.True(t, mr.Exists("p:s"))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "s")
	assert.ErrorIs(t, err, ErrNotFound)
}
