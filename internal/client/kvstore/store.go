// Package kvstore abstracts the client's local persistence as a flat
// key-value store, so call sites never touch the embedded database
// directly and tests can substitute an in-memory implementation.
package kvstore

import "context"

// Store is a flat key/value store with byte-slice values.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete is idempotent.
//   - List returns a snapshot of all pairs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Close() error
}
