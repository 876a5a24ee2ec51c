package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"warung/internal/models"
	"warung/internal/storage"
)

// KVUserRepository is a Store-backed implementation of UserRepository owning
// the `users` key.
type KVUserRepository struct {
	store storage.Store
}

// NewKVUserRepository creates a new instance of KVUserRepository.
func NewKVUserRepository(store storage.Store) *KVUserRepository {
	return &KVUserRepository{store: store}
}

// List returns every registered user.
func (r *KVUserRepository) List(ctx context.Context) ([]models.User, error) {
	return readList[models.User](ctx, r.store, storage.KeyUsers)
}

// FindByUsername returns the user whose username matches case-insensitively,
// or nil if there is none.
func (r *KVUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends a new user to the list. Uniqueness is the caller's concern;
// the repository does not re-check it.
func (r *KVUserRepository) Create(ctx context.Context, user models.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	return writeList(ctx, r.store, storage.KeyUsers, users)
}

// Update replaces the record with the same username (exact match, as the
// original update path did). Missing records are reported as an error.
func (r *KVUserRepository) Update(ctx context.Context, user models.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == user.Username {
			users[i] = user
			return writeList(ctx, r.store, storage.KeyUsers, users)
		}
	}
	return fmt.Errorf("user %s not found for update", user.Username)
}

// Delete removes the record with the given username. Removing an unknown
// username is a no-op.
func (r *KVUserRepository) Delete(ctx context.Context, username string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	next := users[:0]
	for _, u := range users {
		if !strings.EqualFold(u.Username, username) {
			next = append(next, u)
		}
	}
	return writeList(ctx, r.store, storage.KeyUsers, next)
}

// KVSessionRepository is a Store-backed implementation of SessionRepository
// owning the `currentUser` key.
type KVSessionRepository struct {
	store storage.Store
}

// NewKVSessionRepository creates a new instance of KVSessionRepository.
func NewKVSessionRepository(store storage.Store) *KVSessionRepository {
	return &KVSessionRepository{store: store}
}

// Load returns the persisted session snapshot, or nil when logged out.
func (r *KVSessionRepository) Load(ctx context.Context) (*models.User, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", storage.KeyCurrentUser, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", storage.KeyCurrentUser, err)
	}
	return &u, nil
}

// Save writes the session snapshot. At most one user is current at a time.
func (r *KVSessionRepository) Save(ctx context.Context, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", storage.KeyCurrentUser, err)
	}
	return r.store.Set(ctx, storage.KeyCurrentUser, string(b))
}

// Clear removes the session snapshot. Idempotent.
func (r *KVSessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyCurrentUser)
}
