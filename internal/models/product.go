package models

import "time"

// Product is a catalog entry. The catalog itself is code-defined seed data;
// only the Reviews field is persisted (under `product_reviews`) and merged
// back onto the seeds by id at load time.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Reviews     []Review `json:"reviews"`
}

// Review is written twice: onto the order item it was left for, and onto the
// product's aggregate list used for the average-rating display.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductReviews is one entry of the persisted `product_reviews` array.
type ProductReviews struct {
	ID      string   `json:"id"`
	Reviews []Review `json:"reviews"`
}

// AdminProduct is the admin console's fully persisted catalog entry. It is
// independent of the seed catalog; no referential integrity is enforced
// between the two.
type AdminProduct struct {
	Product
	CategoryID      string  `json:"categoryId,omitempty"`
	Featured        bool    `json:"featured,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
	WideImage       string  `json:"wideImage,omitempty"`
}

// Category is an admin-managed grouping, seeded once when storage is empty.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}
