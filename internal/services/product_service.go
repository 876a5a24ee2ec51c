package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"warung/internal/models"
	"warung/internal/repositories"
)

var (
	reCommentAllowed = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	reWhitespaceRun  = regexp.MustCompile(`\s{2,}`)
)

// maxCommentLen mirrors the review form's input cap.
const maxCommentLen = 100

// ProductService handles the seed catalog and its review overlay.
type ProductService struct {
	catalog repositories.CatalogRepository
}

// NewProductService creates a new ProductService.
func NewProductService(catalog repositories.CatalogRepository) *ProductService {
	return &ProductService{catalog: catalog}
}

// Initialize loads the persisted reviews onto the seed catalog.
func (s *ProductService) Initialize(ctx context.Context) error {
	return s.catalog.Initialize(ctx)
}

// List returns the catalog with current reviews.
func (s *ProductService) List() []models.Product {
	return s.catalog.List()
}

// Get returns the product with the given id, matched after normalization.
func (s *ProductService) Get(id string) (models.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// NewReview validates and builds a review without persisting it. The comment
// is sanitized the way the review form did: capped at 100 characters,
// restricted to letters/digits/whitespace, runs of whitespace collapsed, and
// required to be non-empty afterwards.
func (s *ProductService) NewReview(productID, userID string, rating int, comment string) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, &ValidationError{Field: "Rating", Message: validationMessages["Review.Rating"]}
	}
	cleaned := SanitizeComment(comment)
	if cleaned == "" {
		return models.Review{}, &ValidationError{Field: "Comment", Message: "comment must not be empty"}
	}
	return models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   cleaned,
		CreatedAt: time.Now(),
	}, nil
}

// AddReview appends a validated review to its product and persists the
// review map. Returns ErrNotFound when no product matches.
func (s *ProductService) AddReview(ctx context.Context, review models.Review) error {
	ok, err := s.catalog.AddReview(ctx, review)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// AverageRating returns the mean rating of a product's reviews, and exactly
// 0 when it has none.
func (s *ProductService) AverageRating(productID string) float64 {
	return s.catalog.AverageRating(productID)
}

// SanitizeComment applies the review form's comment rules. The length cap
// counts characters, not bytes, so diacritic-heavy comments are not cut short.
func SanitizeComment(comment string) string {
	if r := []rune(comment); len(r) > maxCommentLen {
		comment = string(r[:maxCommentLen])
	}
	cleaned := reCommentAllowed.ReplaceAllString(comment, "")
	cleaned = reWhitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
