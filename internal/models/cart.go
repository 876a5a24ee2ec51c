package models

// CartItem is one line of the device-scoped cart. The cart is persisted as a
// single ordered list under the `cart` key and cleared on checkout.
type CartItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}
