package repositories

import (
	"context"

	"warung/internal/models"
	"warung/internal/storage"
)

// CartRepository owns the `cart` key: one ordered list with whole-list
// replace semantics. The cart is device-scoped, not keyed by user — whoever
// is logged in shares it (single-active-user assumption, kept deliberately).
type CartRepository interface {
	Items(ctx context.Context) ([]models.CartItem, error)
	Replace(ctx context.Context, items []models.CartItem) error
	Clear(ctx context.Context) error
}

// KVCartRepository is a Store-backed implementation of CartRepository.
type KVCartRepository struct {
	store storage.Store
}

// NewKVCartRepository creates a new instance of KVCartRepository.
func NewKVCartRepository(store storage.Store) *KVCartRepository {
	return &KVCartRepository{store: store}
}

// Items returns the current cart contents.
func (r *KVCartRepository) Items(ctx context.Context) ([]models.CartItem, error) {
	return readList[models.CartItem](ctx, r.store, storage.KeyCart)
}

// Replace overwrites the whole cart.
func (r *KVCartRepository) Replace(ctx context.Context, items []models.CartItem) error {
	return writeList(ctx, r.store, storage.KeyCart, items)
}

// Clear empties the cart.
func (r *KVCartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyCart)
}
