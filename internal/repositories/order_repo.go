package repositories

import (
	"context"

	"warung/internal/models"
)

// OrderRepository defines the interface for order data access. ByID returns
// (nil, nil) when no order matches.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	ByID(ctx context.Context, id string) (*models.Order, error)
	ForUser(ctx context.Context, userID string) ([]models.Order, error)
	Append(ctx context.Context, order models.Order) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (bool, error)
	// Stage encodes an orders list to its persisted form without writing it,
	// for use in atomic multi-key commits.
	Stage(orders []models.Order) (string, error)
}
