package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/storage"
)

func TestKVUserRepository_CaseInsensitiveLookup(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVUserRepository(storage.NewMemoryStore())

	u := models.User{Username: "MaiLan", Password: "abc#12", FullName: "Mai Lan"}
	assert.NoError(t, repo.Create(ctx, u))

	found, err := repo.FindByUsername(ctx, "mailan")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, u, *found)

	missing, err := repo.FindByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestKVUserRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVUserRepository(storage.NewMemoryStore())

	u := models.User{
		Username:  "an123",
		Password:  "pass#1",
		FullName:  "Trần Văn An",
		Email:     "an@example.com",
		Phone:     "0901234567",
		AvatarURI: "file:///avatar.png",
		Role:      models.RoleAdmin,
	}
	assert.NoError(t, repo.Create(ctx, u))

	list, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []models.User{u}, list)

	u.FullName = "An"
	assert.NoError(t, repo.Update(ctx, u))
	found, _ := repo.FindByUsername(ctx, "an123")
	assert.Equal(t, "An", found.FullName)

	assert.NoError(t, repo.Delete(ctx, "AN123"))
	list, _ = repo.List(ctx)
	assert.Empty(t, list)
}

func TestKVSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVSessionRepository(storage.NewMemoryStore())

	u, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, u)

	saved := models.User{Username: "an123", Password: "pass#1"}
	assert.NoError(t, repo.Save(ctx, saved))
	u, err = repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, saved, *u)

	assert.NoError(t, repo.Clear(ctx))
	u, _ = repo.Load(ctx)
	assert.Nil(t, u)

	// Clearing twice stays idempotent.
	assert.NoError(t, repo.Clear(ctx))
}

func TestKVCatalogRepository_OverlayMerge(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := repositories.NewKVCatalogRepository(store, repositories.DefaultCatalog())
	assert.NoError(t, first.Initialize(ctx))

	review := models.Review{
		ID:        "r1",
		ProductID: "p_cam",
		UserID:    "an123",
		Rating:    4,
		Comment:   "ngon",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	ok, err := first.AddReview(ctx, review)
	assert.NoError(t, err)
	assert.True(t, ok)

	// A fresh repository over the same store rehydrates the overlay.
	second := repositories.NewKVCatalogRepository(store, repositories.DefaultCatalog())
	assert.NoError(t, second.Initialize(ctx))
	p, found := second.Get("P_CAM")
	assert.True(t, found)
	assert.Len(t, p.Reviews, 1)
	assert.Equal(t, review.ID, p.Reviews[0].ID)
}

func TestKVCatalogRepository_AddReviewUnknownProduct(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVCatalogRepository(storage.NewMemoryStore(), repositories.DefaultCatalog())
	assert.NoError(t, repo.Initialize(ctx))

	ok, err := repo.AddReview(ctx, models.Review{ID: "r1", ProductID: "p_khong_co", Rating: 5})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestKVOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVOrderRepository(storage.NewMemoryStore())

	order := models.Order{ID: "o1", UserID: "an123", Status: models.OrderStatusPending}
	assert.NoError(t, repo.Append(ctx, order))

	ok, err := repo.UpdateStatus(ctx, "o1", models.OrderStatusShipped)
	assert.NoError(t, err)
	assert.True(t, ok)
	got, _ := repo.ByID(ctx, "o1")
	assert.Equal(t, models.OrderStatusShipped, got.Status)

	ok, err = repo.UpdateStatus(ctx, "o99", models.OrderStatusShipped)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestKVCategoryRepository_SeedOnce(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVCategoryRepository(storage.NewMemoryStore())

	seeded, err := repo.EnsureSeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, seeded, 3)

	// A custom category survives the next EnsureSeed.
	custom := models.Category{ID: "cat_kho", Name: "Đồ khô", CreatedAt: time.Now()}
	assert.NoError(t, repo.Upsert(ctx, custom))
	again, err := repo.EnsureSeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, again, 4)

	// Reset drops everything; the next EnsureSeed reseeds defaults only.
	assert.NoError(t, repo.Reset(ctx))
	reseeded, err := repo.EnsureSeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, reseeded, 3)
}

func TestKVAdminProductRepository_UpsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVAdminProductRepository(storage.NewMemoryStore())

	p := models.AdminProduct{
		Product:         models.Product{ID: "ap1", Name: "Muối ớt", Price: 15000, Reviews: []models.Review{}},
		CategoryID:      "cat_muoi",
		Featured:        true,
		DiscountPercent: 10,
	}
	assert.NoError(t, repo.Upsert(ctx, p))

	list, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []models.AdminProduct{p}, list)

	p.Price = 12000
	assert.NoError(t, repo.Upsert(ctx, p))
	list, _ = repo.List(ctx)
	assert.Len(t, list, 1)
	assert.Equal(t, 12000.0, list[0].Price)

	assert.NoError(t, repo.Delete(ctx, "ap1"))
	list, _ = repo.List(ctx)
	assert.Empty(t, list)
}

func TestKVAddressRepository_LastCache(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVAddressRepository(storage.NewMemoryStore())

	last, err := repo.Last(ctx)
	assert.NoError(t, err)
	assert.Nil(t, last)

	addr := models.Address{FullName: "Trần Văn An", Phone: "0901234567", Street: "12 Lê Lợi", City: "Đà Nẵng"}
	assert.NoError(t, repo.Add(ctx, addr))

	list, _ := repo.List(ctx)
	assert.Equal(t, []models.Address{addr}, list)
	last, _ = repo.Last(ctx)
	assert.Equal(t, addr, *last)

	other := models.Address{FullName: "Mai Lan", Phone: "0912345678", Street: "3 Trần Phú", City: "Huế"}
	assert.NoError(t, repo.SetLast(ctx, other))
	last, _ = repo.Last(ctx)
	assert.Equal(t, other, *last)
}
