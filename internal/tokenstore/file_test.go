package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "auth", "token")
	store := NewFileStore(path)

	require.NoError(t, store.Save(ctx, "Bearer abc"))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Save(ctx, "Bearer first"))
	require.NoError(t, store.Save(ctx, "Bearer second"))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", got)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoToken)
}

func TestFileStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Save(ctx, "Bearer abc"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	// Clearing an already empty store is not an error.
	require.NoError(t, store.Clear(ctx))
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	require.NoError(t, NewFileStore(path).Save(ctx, "Bearer abc"))

	got, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got)
}
