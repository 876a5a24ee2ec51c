package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"warung/internal/models"
	"warung/internal/storage"
)

// AddressRepository owns the `addresses` list and the `lastAddress` cache.
// Like the cart, both are device-scoped rather than keyed by user.
type AddressRepository interface {
	List(ctx context.Context) ([]models.Address, error)
	Add(ctx context.Context, addr models.Address) error
	Last(ctx context.Context) (*models.Address, error)
	SetLast(ctx context.Context, addr models.Address) error
}

// KVAddressRepository is a Store-backed implementation of AddressRepository.
type KVAddressRepository struct {
	store storage.Store
}

// NewKVAddressRepository creates a new instance of KVAddressRepository.
func NewKVAddressRepository(store storage.Store) *KVAddressRepository {
	return &KVAddressRepository{store: store}
}

// List returns every saved address.
func (r *KVAddressRepository) List(ctx context.Context) ([]models.Address, error) {
	return readList[models.Address](ctx, r.store, storage.KeyAddresses)
}

// Add appends the address and makes it the last-used one, matching the save
// flow of the address screen.
func (r *KVAddressRepository) Add(ctx context.Context, addr models.Address) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	list = append(list, addr)
	if err := writeList(ctx, r.store, storage.KeyAddresses, list); err != nil {
		return err
	}
	return r.SetLast(ctx, addr)
}

// Last returns the cached last-used address, or nil when none is set.
func (r *KVAddressRepository) Last(ctx context.Context) (*models.Address, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyLastAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", storage.KeyLastAddress, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var addr models.Address
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", storage.KeyLastAddress, err)
	}
	return &addr, nil
}

// SetLast caches addr as the last-used address.
func (r *KVAddressRepository) SetLast(ctx context.Context, addr models.Address) error {
	b, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", storage.KeyLastAddress, err)
	}
	return r.store.Set(ctx, storage.KeyLastAddress, string(b))
}
