package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/services"
	"warung/internal/storage"
)

func newAdminService() *services.AdminService {
	store := storage.NewMemoryStore()
	return services.NewAdminService(
		repositories.NewKVAdminProductRepository(store),
		repositories.NewKVCategoryRepository(store),
		repositories.NewKVOrderRepository(store),
		repositories.NewKVUserRepository(store),
	)
}

func TestAdminService_UpsertProduct(t *testing.T) {
	ctx := context.Background()
	svc := newAdminService()

	created, err := svc.UpsertProduct(ctx, models.AdminProduct{
		Product:    models.Product{Name: "Muối ớt", Price: 15000},
		CategoryID: "cat_muoi",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.Price = 12000
	updated, err := svc.UpsertProduct(ctx, created)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	list, err := svc.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 12000.0, list[0].Price)
}

func TestAdminService_UpsertProduct_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newAdminService()

	_, err := svc.UpsertProduct(ctx, models.AdminProduct{Product: models.Product{Price: 15000}})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name", verr.Field)
	assert.Equal(t, "name is required", verr.Message)

	_, err = svc.UpsertProduct(ctx, models.AdminProduct{Product: models.Product{Name: "Muối ớt"}})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "Price", verr.Field)
	assert.Equal(t, "price must be greater than zero", verr.Message)
}

func TestAdminService_Categories(t *testing.T) {
	ctx := context.Background()
	svc := newAdminService()

	seeded, err := svc.EnsureCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, seeded, 3)

	created, err := svc.UpsertCategory(ctx, models.Category{Name: "Đồ khô"})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = svc.UpsertCategory(ctx, models.Category{})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name", verr.Field)
	assert.Equal(t, "name is required", verr.Message)

	assert.NoError(t, svc.DeleteCategory(ctx, created.ID))
	list, err := svc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 3)

	// Reset drops everything; the next EnsureCategories reseeds.
	assert.NoError(t, svc.ResetCategories(ctx))
	list, err = svc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Empty(t, list)
	reseeded, err := svc.EnsureCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, reseeded, 3)
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	orderRepo := repositories.NewKVOrderRepository(store)
	svc := services.NewAdminService(
		repositories.NewKVAdminProductRepository(store),
		repositories.NewKVCategoryRepository(store),
		orderRepo,
		repositories.NewKVUserRepository(store),
	)

	assert.NoError(t, orderRepo.Append(ctx, models.Order{ID: "o1", UserID: "an123", Status: models.OrderStatusPending}))

	assert.NoError(t, svc.UpdateOrderStatus(ctx, "o1", models.OrderStatusDelivered))
	all, err := svc.ListOrders(ctx)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, all[0].Status)

	var verr *services.ValidationError
	assert.ErrorAs(t, svc.UpdateOrderStatus(ctx, "o1", "returned"), &verr)
	assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, "o99", models.OrderStatusShipped), services.ErrNotFound)
}

func TestAdminService_Users(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	userRepo := repositories.NewKVUserRepository(store)
	svc := services.NewAdminService(
		repositories.NewKVAdminProductRepository(store),
		repositories.NewKVCategoryRepository(store),
		repositories.NewKVOrderRepository(store),
		userRepo,
	)

	assert.NoError(t, userRepo.Create(ctx, models.User{Username: "an123", Password: "abc#12"}))
	assert.NoError(t, userRepo.Create(ctx, models.User{Username: "mailan", Password: "xyz#34"}))

	users, err := svc.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	assert.NoError(t, svc.RemoveUser(ctx, "AN123"))
	users, _ = svc.ListUsers(ctx)
	assert.Len(t, users, 1)
	assert.Equal(t, "mailan", users[0].Username)
}
