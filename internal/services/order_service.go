package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/storage"
	"warung/pkg/normalize"
)

// DefaultPaymentMethod is used when checkout does not specify one.
const DefaultPaymentMethod = "COD"

// OrderService handles checkout and the order/review coordination. It is the
// only component that writes more than one storage key per operation, so it
// holds the Store directly for atomic multi-key commits.
type OrderService struct {
	orders   repositories.OrderRepository
	cart     repositories.CartRepository
	catalog  repositories.CatalogRepository
	store    storage.Store
	validate *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repositories.OrderRepository, cart repositories.CartRepository, catalog repositories.CatalogRepository, store storage.Store) *OrderService {
	return &OrderService{
		orders:   orders,
		cart:     cart,
		catalog:  catalog,
		store:    store,
		validate: newValidator(),
	}
}

// PlaceOrder builds an order from the current cart snapshot and commits the
// appended orders list together with the emptied cart in a single atomic
// write. Each cart line is resolved to a canonical product id: explicit id
// first, then diacritic-insensitive name match, then the raw name.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, addr models.Address, paymentMethod string) (models.Order, error) {
	if err := s.validate.Struct(addr); err != nil {
		return models.Order{}, firstValidationError(err)
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	lines, err := s.cart.Items(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	catalog := s.catalog.List()
	candidates := make([]normalize.Candidate, len(catalog))
	for i, p := range catalog {
		candidates[i] = normalize.Candidate{ID: p.ID, Name: p.Name}
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		res := normalize.Resolve(candidates, line.ID, line.Name)
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: res.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  qty,
			Image:     line.Image,
		})
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(qty))))
	}

	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		CreatedAt:     time.Now(),
		Items:         items,
		Total:         total.InexactFloat64(),
		Status:        models.OrderStatusPending,
		Address:       &addr,
		PaymentMethod: paymentMethod,
	}

	existing, err := s.orders.List(ctx)
	if err != nil {
		return models.Order{}, err
	}
	staged, err := s.orders.Stage(append(existing, order))
	if err != nil {
		return models.Order{}, err
	}

	err = s.store.SetMulti(ctx, map[string]string{
		storage.KeyOrders: staged,
		storage.KeyCart:   "[]",
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// MarkItemReviewed locates the order item by normalized product id, marks it
// reviewed with the review attached, and commits the orders list together
// with the product review map in one atomic write. Returns false, with no
// state change, when the order or item is not found. An item whose product
// no longer matches the catalog still gets its order-side write; the review
// then has no aggregate rating impact.
func (s *OrderService) MarkItemReviewed(ctx context.Context, orderID, productID string, review models.Review) (bool, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return false, err
	}

	found := false
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		for j := range orders[i].Items {
			if normalize.Equal(orders[i].Items[j].ProductID, productID) {
				r := review
				orders[i].Items[j].Reviewed = true
				orders[i].Items[j].Review = &r
				found = true
				break
			}
		}
		break
	}
	if !found {
		return false, nil
	}

	stagedOrders, err := s.orders.Stage(orders)
	if err != nil {
		return false, err
	}
	writes := map[string]string{storage.KeyOrders: stagedOrders}

	stagedReviews, matched, err := s.catalog.StageReview(review)
	if err != nil {
		return false, err
	}
	if matched {
		writes[storage.KeyProductReviews] = stagedReviews
	}

	if err := s.store.SetMulti(ctx, writes); err != nil {
		return false, err
	}
	if matched {
		s.catalog.ApplyReview(review)
	}
	return true, nil
}

// OrdersForUser returns the given user's orders.
func (s *OrderService) OrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ForUser(ctx, userID)
}

// OrderByID returns the order with the given id.
func (s *OrderService) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	o, err := s.orders.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// UpdateStatus sets an order's status. Status is the only mutable order
// field after creation.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return &ValidationError{Field: "Status", Message: "unknown order status"}
	}
	ok, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
