package redisnotice

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/anthanhphan/go-file-board/pkg/resilience"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, "test:notice"), mr
}

func TestStore_LoadMissingKeyIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	content, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestStore_SaveThenLoad(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "maintenance at 22:00"))

	got, err := mr.Get("test:notice")
	require.NoError(t, err)
	assert.Equal(t, "maintenance at 22:00", got)

	content, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "maintenance at 22:00", content)
}

func TestStore_SaveEmptyOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "something"))
	require.NoError(t, store.Save(ctx, ""))

	content, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestStore_OpensCircuitWhenRedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	mr.Close()

	for i := 0; i < 3; i++ {
		err := store.Save(ctx, "x")
		require.Error(t, err)
	}

	err := store.Save(ctx, "x")
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
}
