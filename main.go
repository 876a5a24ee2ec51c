package main

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/viper"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/services"
	"warung/internal/storage"
)

func main() {
	// --- Configuration ---
	// Viper reads settings from environment variables with sane defaults.
	viper.SetDefault("STORAGE_DRIVER", "sqlite")
	viper.SetDefault("STORAGE_DSN", "warung.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("SEED_DEMO", true)
	viper.AutomaticEnv()

	store, err := openStore(viper.GetString("STORAGE_DRIVER"))
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	ctx := context.Background()

	// --- Initialize Repositories ---
	userRepo := repositories.NewKVUserRepository(store)
	sessionRepo := repositories.NewKVSessionRepository(store)
	catalogRepo := repositories.NewKVCatalogRepository(store, repositories.DefaultCatalog())
	orderRepo := repositories.NewKVOrderRepository(store)
	cartRepo := repositories.NewKVCartRepository(store)
	addressRepo := repositories.NewKVAddressRepository(store)
	categoryRepo := repositories.NewKVCategoryRepository(store)
	adminProductRepo := repositories.NewKVAdminProductRepository(store)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionRepo)
	productService := services.NewProductService(catalogRepo)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, catalogRepo, store)
	adminService := services.NewAdminService(adminProductRepo, categoryRepo, orderRepo, userRepo)

	// Explicit initialization: resolve the persisted session and merge the
	// review overlay onto the seed catalog before anything else runs.
	if err := authService.Initialize(ctx); err != nil {
		log.Printf("Session restore failed, continuing anonymous: %v", err)
	}
	if err := productService.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}
	if _, err := adminService.EnsureCategories(ctx); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Printf("Storage ready (driver: %s), catalog has %d products",
		viper.GetString("STORAGE_DRIVER"), len(productService.List()))

	if viper.GetBool("SEED_DEMO") {
		runDemo(ctx, authService, productService, cartService, orderService, addressRepo)
	}
}

// openStore selects the storage backend from configuration.
func openStore(driver string) (storage.Store, error) {
	switch driver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "sqlite":
		return storage.OpenSQLite(viper.GetString("STORAGE_DSN"))
	case "postgres":
		return storage.OpenPostgres(viper.GetString("STORAGE_DSN"))
	case "redis":
		return storage.NewRedisStore(viper.GetString("REDIS_ADDR"))
	default:
		return nil, errors.New("unknown STORAGE_DRIVER: " + driver)
	}
}

// runDemo walks the main shopping flow once: register (or log back in), fill
// the cart, check out, review the first item.
func runDemo(ctx context.Context, auth *services.AuthService, products *services.ProductService, cart *services.CartService, orders *services.OrderService, addresses repositories.AddressRepository) {
	user, err := auth.Register(ctx, models.User{
		Username: "demo_user",
		Password: "demo#123",
		FullName: "Nguyễn Văn A",
		Phone:    "0901234567",
	}, true)
	if errors.Is(err, services.ErrDuplicateUsername) {
		user, err = auth.Login(ctx, "demo_user", "demo#123")
	}
	if err != nil {
		log.Printf("Demo account unavailable: %v", err)
		return
	}
	log.Printf("Signed in as %s", user.Username)

	for _, p := range products.List() {
		if err := cart.AddOrIncrement(ctx, models.CartItem{ID: p.ID, Name: p.Name, Price: p.Price}); err != nil {
			log.Printf("Add to cart failed for %s: %v", p.Name, err)
			return
		}
	}

	addr := models.Address{
		FullName: "Nguyễn Văn A",
		Phone:    "0901234567",
		Street:   "12 Lê Lợi",
		City:     "Đà Nẵng",
	}
	if err := addresses.Add(ctx, addr); err != nil {
		log.Printf("Saving address failed: %v", err)
		return
	}

	order, err := orders.PlaceOrder(ctx, user.Username, addr, "")
	if err != nil {
		log.Printf("Checkout failed: %v", err)
		return
	}
	log.Printf("Placed order %s (total %.0f)", order.ID, order.Total)

	review, err := products.NewReview(order.Items[0].ProductID, user.Username, 5, "Rất tươi và ngon")
	if err != nil {
		log.Printf("Review rejected: %v", err)
		return
	}
	ok, err := orders.MarkItemReviewed(ctx, order.ID, review.ProductID, review)
	if err != nil || !ok {
		log.Printf("Review not saved (ok=%v): %v", ok, err)
		return
	}
	log.Printf("Reviewed %s, average rating now %.1f",
		order.Items[0].Name, products.AverageRating(review.ProductID))
}
