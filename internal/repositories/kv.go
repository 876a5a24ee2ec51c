package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"warung/internal/storage"
)

// readList loads and decodes the JSON array stored under key. An absent key
// reads as an empty list, matching the `raw || '[]'` convention every
// collection in the storage layout follows.
func readList[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return list, nil
}

// writeList encodes list and stores it whole under key.
func writeList[T any](ctx context.Context, store storage.Store, key string, list []T) error {
	value, err := encodeList(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// encodeList marshals a list to its stored form without writing it. Used to
// stage payloads for atomic multi-key writes. nil encodes as an empty array
// so an absent collection and an empty one are indistinguishable on disk.
func encodeList[T any](list []T) (string, error) {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
