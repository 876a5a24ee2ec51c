package repositories

import (
	"context"

	"warung/internal/models"
)

// CatalogRepository serves the code-defined seed catalog with its persisted
// review overlay. Initialize must be called once before any other method; it
// replaces the original's unawaited module-load side effect with an explicit
// completion signal.
type CatalogRepository interface {
	Initialize(ctx context.Context) error
	List() []models.Product
	Get(id string) (models.Product, bool)
	// AddReview appends the review to its product and persists the whole
	// review map. It reports false, without persisting, when no product
	// matches the review's product id.
	AddReview(ctx context.Context, review models.Review) (bool, error)
	// StageReview returns the review-map payload as it would be persisted
	// with the review appended, without mutating the catalog. ApplyReview
	// mutates the in-memory catalog after the staged payload has been
	// committed. The pair lets a coordinator fold the product-side write
	// into an atomic multi-key commit.
	StageReview(review models.Review) (string, bool, error)
	ApplyReview(review models.Review) bool
	AverageRating(id string) float64
}
