package repositories

import (
	"time"

	"warung/internal/models"
)

// DefaultCatalog returns the code-defined seed products. The storefront ships
// with a small fruit catalog; reviews accumulate on top of it over time.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "p_cam",
			Name:        "Cam Sành",
			Price:       25000,
			Description: "Cam sành ngọt, mọng nước, cung cấp vitamin C dồi dào.",
		},
		{
			ID:          "p_tao",
			Name:        "Táo Mỹ",
			Price:       35000,
			Description: "Táo Mỹ giòn, ngọt thanh, nhiều chất xơ và vitamin A.",
		},
		{
			ID:          "p_nho",
			Name:        "Nho Đen Úc",
			Price:       45000,
			Description: "Nho đen giàu chất chống oxy hóa, tốt cho tim mạch.",
		},
	}
}

// DefaultCategories returns the categories seeded when `admin_categories` is
// absent or empty.
func DefaultCategories(now time.Time) []models.Category {
	return []models.Category{
		{ID: "cat_trai_cay", Name: "Trái cây", CreatedAt: now},
		{ID: "cat_thuc_uong", Name: "Thức uống", CreatedAt: now},
		{ID: "cat_muoi", Name: "Muối", CreatedAt: now},
	}
}
