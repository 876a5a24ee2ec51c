package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"warung/internal/storage"
)

func TestGORMStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	assert.NoError(t, err)

	_, ok, err := store.Get(ctx, storage.KeyUsers)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, storage.KeyUsers, `[{"username":"an"}]`))
	assert.NoError(t, store.Set(ctx, storage.KeyUsers, `[]`))
	v, ok, err := store.Get(ctx, storage.KeyUsers)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	// Keys are plain strings with no length cap.
	long := strings.Repeat("k", 200)
	assert.NoError(t, store.Set(ctx, long, "v"))
	v, ok, _ = store.Get(ctx, long)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	assert.NoError(t, store.Delete(ctx, storage.KeyUsers))
	_, ok, _ = store.Get(ctx, storage.KeyUsers)
	assert.False(t, ok)
	assert.NoError(t, store.Delete(ctx, storage.KeyUsers))
}

func TestGORMStore_SetMulti(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	assert.NoError(t, err)

	err = store.SetMulti(ctx, map[string]string{
		storage.KeyOrders: `[{"id":"o1"}]`,
		storage.KeyCart:   `[]`,
	})
	assert.NoError(t, err)

	orders, ok, _ := store.Get(ctx, storage.KeyOrders)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"o1"}]`, orders)
	cart, ok, _ := store.Get(ctx, storage.KeyCart)
	assert.True(t, ok)
	assert.Equal(t, `[]`, cart)

	assert.NoError(t, store.Clear(ctx))
	_, ok, _ = store.Get(ctx, storage.KeyOrders)
	assert.False(t, ok)
}
