package repositories

import (
	"context"
	"time"

	"warung/internal/models"
	"warung/internal/storage"
)

// CategoryRepository owns the `admin_categories` key. Categories are seeded
// once when the key is absent or empty; after that the persisted list is
// authoritative.
type CategoryRepository interface {
	EnsureSeed(ctx context.Context) ([]models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Upsert(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

// KVCategoryRepository is a Store-backed implementation of CategoryRepository.
type KVCategoryRepository struct {
	store storage.Store
}

// NewKVCategoryRepository creates a new instance of KVCategoryRepository.
func NewKVCategoryRepository(store storage.Store) *KVCategoryRepository {
	return &KVCategoryRepository{store: store}
}

// EnsureSeed writes the default categories if none are stored and returns
// the resulting list.
func (r *KVCategoryRepository) EnsureSeed(ctx context.Context) ([]models.Category, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}
	seeds := DefaultCategories(time.Now())
	if err := writeList(ctx, r.store, storage.KeyAdminCategories, seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// List returns every stored category.
func (r *KVCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return readList[models.Category](ctx, r.store, storage.KeyAdminCategories)
}

// Upsert replaces the category with a matching id, or appends a new one.
func (r *KVCategoryRepository) Upsert(ctx context.Context, c models.Category) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
			return writeList(ctx, r.store, storage.KeyAdminCategories, list)
		}
	}
	list = append(list, c)
	return writeList(ctx, r.store, storage.KeyAdminCategories, list)
}

// Delete removes the category with the given id. Unknown ids are a no-op.
func (r *KVCategoryRepository) Delete(ctx context.Context, id string) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	next := list[:0]
	for _, c := range list {
		if c.ID != id {
			next = append(next, c)
		}
	}
	return writeList(ctx, r.store, storage.KeyAdminCategories, next)
}

// Reset drops the stored list so the next EnsureSeed reseeds the defaults.
func (r *KVCategoryRepository) Reset(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyAdminCategories)
}
