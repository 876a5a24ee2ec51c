package services

import (
	"context"

	"warung/internal/models"
	"warung/internal/repositories"
)

// CartService implements the cart's read-modify-write operations. Every
// mutation rewrites the whole list; there is no per-item locking.
type CartService struct {
	cart repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cart repositories.CartRepository) *CartService {
	return &CartService{cart: cart}
}

// Items returns the current cart contents.
func (s *CartService) Items(ctx context.Context) ([]models.CartItem, error) {
	return s.cart.Items(ctx)
}

// AddOrIncrement increments the quantity of the line matching the item's id,
// or appends the item with quantity 1. Items without an id always append.
func (s *CartService) AddOrIncrement(ctx context.Context, item models.CartItem) error {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return err
	}
	if item.ID != "" {
		for i := range items {
			if items[i].ID == item.ID {
				items[i].Quantity++
				return s.cart.Replace(ctx, items)
			}
		}
	}
	item.Quantity = 1
	items = append(items, item)
	return s.cart.Replace(ctx, items)
}

// UpdateQuantity adjusts the line at index by delta, clamping the result to
// a minimum of 1. Decrementing never removes a line; Remove is the explicit
// removal path.
func (s *CartService) UpdateQuantity(ctx context.Context, index, delta int) error {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return ErrNotFound
	}
	q := items[index].Quantity + delta
	if q < 1 {
		q = 1
	}
	items[index].Quantity = q
	return s.cart.Replace(ctx, items)
}

// Remove deletes the line at index.
func (s *CartService) Remove(ctx context.Context, index int) error {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return ErrNotFound
	}
	items = append(items[:index], items[index+1:]...)
	return s.cart.Replace(ctx, items)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	return s.cart.Clear(ctx)
}
