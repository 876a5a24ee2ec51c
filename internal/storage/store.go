package storage

import "context"

// Fixed storage keys. Each repository exclusively owns its key; ownership is
// by convention, the store itself does not enforce it.
const (
	KeyUsers           = "users"
	KeyCurrentUser     = "currentUser"
	KeyCart            = "cart"
	KeyOrders          = "orders"
	KeyAddresses       = "addresses"
	KeyLastAddress     = "lastAddress"
	KeyAdminProducts   = "admin_products"
	KeyAdminCategories = "admin_categories"
	KeyProductReviews  = "product_reviews"
)

// Store is the key-value storage contract: string keys, string (JSON) values.
// Get reports absence through its second return value rather than an error.
//
// SetMulti applies all writes atomically. It exists for the two multi-key
// sequences in the system (checkout: orders+cart, review: orders+reviews) so
// a crash can no longer leave one key written and the other not.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetMulti(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
