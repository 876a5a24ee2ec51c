package repositories

import (
	"context"

	"warung/internal/models"
)

// UserRepository defines the interface for user data access. Lookups that
// find nothing return (nil, nil); errors are reserved for storage failures.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, username string) error
}

// SessionRepository owns the `currentUser` snapshot: the denormalized copy of
// the logged-in user, persisted separately from the authoritative users list.
type SessionRepository interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}
