package tokenstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/config"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStore(config.RedisConfig{Addr: mr.Addr()}, "toursandtravels:token", zap.NewNop())
	t.Cleanup(store.Close)
	return store
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	require.NoError(t, store.Save(ctx, "Bearer abc"))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store := newTestRedisStore(t)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	require.NoError(t, store.Save(ctx, "Bearer abc"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Clear(ctx))
}

func TestRedisStore_Ping(t *testing.T) {
	store := newTestRedisStore(t)
	require.NoError(t, store.Ping(context.Background()))
}
