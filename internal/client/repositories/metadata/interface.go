// Package metadata is the key/value table backing the persisted session.
package metadata

import (
	"context"
)

// Repository is a flat key/value store. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var _ Repository = (*SQLiteRepository)(nil)
