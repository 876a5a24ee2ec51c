package repositories

import (
	"context"

	"warung/internal/models"
	"warung/internal/storage"
)

// AdminProductRepository owns the `admin_products` key: the admin console's
// fully persisted catalog, independent of the seed catalog.
type AdminProductRepository interface {
	List(ctx context.Context) ([]models.AdminProduct, error)
	Upsert(ctx context.Context, p models.AdminProduct) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

// KVAdminProductRepository is a Store-backed implementation of
// AdminProductRepository.
type KVAdminProductRepository struct {
	store storage.Store
}

// NewKVAdminProductRepository creates a new instance of
// KVAdminProductRepository.
func NewKVAdminProductRepository(store storage.Store) *KVAdminProductRepository {
	return &KVAdminProductRepository{store: store}
}

// List returns every stored admin product.
func (r *KVAdminProductRepository) List(ctx context.Context) ([]models.AdminProduct, error) {
	return readList[models.AdminProduct](ctx, r.store, storage.KeyAdminProducts)
}

// Upsert replaces the product with a matching id, or appends a new one.
func (r *KVAdminProductRepository) Upsert(ctx context.Context, p models.AdminProduct) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			return writeList(ctx, r.store, storage.KeyAdminProducts, list)
		}
	}
	list = append(list, p)
	return writeList(ctx, r.store, storage.KeyAdminProducts, list)
}

// Delete removes the product with the given id. Unknown ids are a no-op.
func (r *KVAdminProductRepository) Delete(ctx context.Context, id string) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	next := list[:0]
	for _, p := range list {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return writeList(ctx, r.store, storage.KeyAdminProducts, next)
}

// Reset drops the stored admin catalog entirely.
func (r *KVAdminProductRepository) Reset(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyAdminProducts)
}
