package models

// Address is a delivery address. The list under `addresses` plus the cached
// `lastAddress` pointer are device-scoped, like the cart.
type Address struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"required,localphone"`
	Street   string `json:"street" validate:"required,min=5"`
	City     string `json:"city" validate:"required,min=2"`
}
