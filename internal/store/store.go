// Package store provides the durable-slot backing used by the
// keyword-analysis and trending-analysis actors: Load on activation,
// Commit on explicit write-through. Memory and Badger are the two
// implementations shipped here.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no record exists for a kind/key.
var ErrNotFound = errors.New("store: not found")

// Store is a durable key-value slot store. Values are opaque marshalled
// bytes; callers (the grain package's durable Slot) own encoding.
type Store interface {
	// Load reads the record for (kind, key). Returns ErrNotFound if absent.
	Load(ctx context.Context, kind, key string) ([]byte, error)
	// Commit writes the record for (kind, key), replacing any prior value.
	Commit(ctx context.Context, kind, key string, value []byte) error
}

func recordKey(kind, key string) []byte {
	b := make([]byte, 0, len(kind)+1+len(key))
	b = append(b, kind...)
	b = append(b, '/')
	b = append(b, key...)
	return b
}
