package repositories

import (
	"context"
	"fmt"
	"sync"

	"warung/internal/models"
	"warung/internal/storage"
	"warung/pkg/normalize"
)

// KVCatalogRepository holds the seed catalog in memory for the process
// lifetime and persists only the id→reviews overlay under `product_reviews`.
type KVCatalogRepository struct {
	store    storage.Store
	products []models.Product
	mu       sync.RWMutex
}

// NewKVCatalogRepository creates a catalog over the given seed products.
// Reviews carried on the seeds are discarded; the persisted overlay is the
// source of truth for reviews.
func NewKVCatalogRepository(store storage.Store, seeds []models.Product) *KVCatalogRepository {
	products := make([]models.Product, len(seeds))
	copy(products, seeds)
	for i := range products {
		products[i].Reviews = []models.Review{}
	}
	return &KVCatalogRepository{store: store, products: products}
}

// Initialize loads the persisted review map and merges it onto the seeds by
// normalized product id. Entries for unknown products are ignored.
func (r *KVCatalogRepository) Initialize(ctx context.Context) error {
	overlay, err := readList[models.ProductReviews](ctx, r.store, storage.KeyProductReviews)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range overlay {
		for i := range r.products {
			if normalize.Equal(r.products[i].ID, entry.ID) {
				r.products[i].Reviews = append([]models.Review{}, entry.Reviews...)
				break
			}
		}
	}
	return nil
}

// List returns a copy of the catalog with each product's current reviews.
func (r *KVCatalogRepository) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p
		out[i].Reviews = append([]models.Review{}, p.Reviews...)
	}
	return out
}

// Get returns the product whose id matches after normalization.
func (r *KVCatalogRepository) Get(id string) (models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if normalize.Equal(p.ID, id) {
			p.Reviews = append([]models.Review{}, p.Reviews...)
			return p, true
		}
	}
	return models.Product{}, false
}

// AddReview appends the review in memory and persists the entire review map.
func (r *KVCatalogRepository) AddReview(ctx context.Context, review models.Review) (bool, error) {
	payload, ok, err := r.StageReview(review)
	if err != nil || !ok {
		return ok, err
	}
	if err := r.store.Set(ctx, storage.KeyProductReviews, payload); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", storage.KeyProductReviews, err)
	}
	r.ApplyReview(review)
	return true, nil
}

// StageReview builds the persisted review-map payload with the review
// appended, leaving the in-memory catalog untouched.
func (r *KVCatalogRepository) StageReview(review models.Review) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := false
	overlay := make([]models.ProductReviews, len(r.products))
	for i, p := range r.products {
		reviews := append([]models.Review{}, p.Reviews...)
		if !matched && normalize.Equal(p.ID, review.ProductID) {
			reviews = append(reviews, review)
			matched = true
		}
		overlay[i] = models.ProductReviews{ID: p.ID, Reviews: reviews}
	}
	if !matched {
		return "", false, nil
	}
	payload, err := encodeList(overlay)
	if err != nil {
		return "", false, fmt.Errorf("failed to encode %s: %w", storage.KeyProductReviews, err)
	}
	return payload, true, nil
}

// ApplyReview appends the review to the in-memory catalog. Call only after
// the matching staged payload has been committed.
func (r *KVCatalogRepository) ApplyReview(review models.Review) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if normalize.Equal(r.products[i].ID, review.ProductID) {
			r.products[i].Reviews = append(r.products[i].Reviews, review)
			return true
		}
	}
	return false
}

// AverageRating returns the arithmetic mean of a product's review ratings,
// and exactly 0 when the product is unknown or has no reviews.
func (r *KVCatalogRepository) AverageRating(id string) float64 {
	p, ok := r.Get(id)
	if !ok || len(p.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, rv := range p.Reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}
