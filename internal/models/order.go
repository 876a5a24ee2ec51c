package models

import "time"

// OrderStatus is the only mutable field of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the four known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem captures one cart line at checkout time. Reviewed and Review are
// set later by the review flow; everything else is immutable.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Reviewed  bool    `json:"reviewed,omitempty"`
	Review    *Review `json:"review,omitempty"`
}

// Order is created from the cart snapshot at checkout. Total is computed
// once at creation and never recomputed.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Address       *Address    `json:"address,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
}
