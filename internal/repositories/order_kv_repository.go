package repositories

import (
	"context"
	"fmt"

	"warung/internal/models"
	"warung/internal/storage"
)

// KVOrderRepository is a Store-backed implementation of OrderRepository
// owning the `orders` key.
type KVOrderRepository struct {
	store storage.Store
}

// NewKVOrderRepository creates a new instance of KVOrderRepository.
func NewKVOrderRepository(store storage.Store) *KVOrderRepository {
	return &KVOrderRepository{store: store}
}

// List returns every persisted order.
func (r *KVOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	return readList[models.Order](ctx, r.store, storage.KeyOrders)
}

// ByID returns the order with the given id, or nil if there is none.
func (r *KVOrderRepository) ByID(ctx context.Context, id string) (*models.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// ForUser returns the orders belonging to userID, preserving stored order.
func (r *KVOrderRepository) ForUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Append adds a new order to the list.
func (r *KVOrderRepository) Append(ctx context.Context, order models.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return writeList(ctx, r.store, storage.KeyOrders, orders)
}

// UpdateStatus sets the status of the order with the given id. It reports
// false when no order matches, leaving storage untouched.
func (r *KVOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (bool, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := writeList(ctx, r.store, storage.KeyOrders, orders); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Stage encodes the orders list to its persisted form without writing it.
func (r *KVOrderRepository) Stage(orders []models.Order) (string, error) {
	payload, err := encodeList(orders)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", storage.KeyOrders, err)
	}
	return payload, nil
}
