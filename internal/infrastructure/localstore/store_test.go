package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/cart"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.json")
	return NewStore(path, zap.NewNop())
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	assert.Nil(t, store.Load())
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	entries := []cart.Entry{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}
	require.NoError(t, store.Save(entries))

	loaded := store.Load()
	assert.Equal(t, entries, loaded)
}

func TestStore_SaveEmpty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save([]cart.Entry{{ProductID: "p1", Quantity: 1}}))
	require.NoError(t, store.Save(nil))

	loaded := store.Load()
	assert.Empty(t, loaded)
}

func TestStore_LoadCorruptFilePurges(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	assert.Nil(t, store.Load())

	// The corrupt snapshot is gone so later loads start clean.
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveCreatesStateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "cart.json")
	store := NewStore(path, zap.NewNop())

	require.NoError(t, store.Save([]cart.Entry{{ProductID: "p1", Quantity: 3}}))

	loaded := store.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, "p1", loaded[0].ProductID)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]cart.Entry{{ProductID: "p1", Quantity: 1}}))

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Load())

	// Clearing an already-missing snapshot is a no-op.
	require.NoError(t, store.Clear())
}
