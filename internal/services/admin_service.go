package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"warung/internal/models"
	"warung/internal/repositories"
)

// AdminService backs the admin console: product and category management,
// order status changes, and user administration. It is thin composition over
// the repositories; the admin catalog is independent of the seed catalog and
// nothing cross-checks the two.
type AdminService struct {
	products   repositories.AdminProductRepository
	categories repositories.CategoryRepository
	orders     repositories.OrderRepository
	users      repositories.UserRepository
	validate   *validator.Validate
}

// NewAdminService creates a new AdminService.
func NewAdminService(products repositories.AdminProductRepository, categories repositories.CategoryRepository, orders repositories.OrderRepository, users repositories.UserRepository) *AdminService {
	return &AdminService{
		products:   products,
		categories: categories,
		orders:     orders,
		users:      users,
		validate:   newValidator(),
	}
}

// ListProducts returns the admin catalog.
func (s *AdminService) ListProducts(ctx context.Context) ([]models.AdminProduct, error) {
	return s.products.List(ctx)
}

// UpsertProduct validates and saves an admin product, assigning an id to new
// entries.
func (s *AdminService) UpsertProduct(ctx context.Context, p models.AdminProduct) (models.AdminProduct, error) {
	if err := s.validate.StructPartial(p.Product, "Name", "Price"); err != nil {
		return models.AdminProduct{}, firstValidationError(err)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.products.Upsert(ctx, p); err != nil {
		return models.AdminProduct{}, err
	}
	return p, nil
}

// DeleteProduct removes an admin product by id.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// ResetProducts drops the whole admin catalog.
func (s *AdminService) ResetProducts(ctx context.Context) error {
	return s.products.Reset(ctx)
}

// EnsureCategories seeds the default categories when none exist and returns
// the current list.
func (s *AdminService) EnsureCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.EnsureSeed(ctx)
}

// ListCategories returns the stored categories.
func (s *AdminService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// UpsertCategory validates and saves a category, assigning id and creation
// time to new entries.
func (s *AdminService) UpsertCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if err := s.validate.StructPartial(c, "Name"); err != nil {
		return models.Category{}, firstValidationError(err)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if err := s.categories.Upsert(ctx, c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

// DeleteCategory removes a category by id. Products referencing it keep
// their dangling categoryId; no referential integrity is enforced.
func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// ResetCategories drops the stored list so the defaults reseed on the next
// EnsureCategories.
func (s *AdminService) ResetCategories(ctx context.Context) error {
	return s.categories.Reset(ctx)
}

// ListOrders returns every order in the system.
func (s *AdminService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

// UpdateOrderStatus sets an order's status from the admin console.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
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

// ListUsers returns every registered user.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// RemoveUser deletes a user record. The session snapshot is not touched, so
// a removed user who is still logged in keeps a stale session until logout.
func (s *AdminService) RemoveUser(ctx context.Context, username string) error {
	return s.users.Delete(ctx, username)
}
