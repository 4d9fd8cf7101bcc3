// Package store is the key-value persistence surface behind every
// collection in the application. Values are JSON blobs stored whole
// under fixed keys; there are no partial writes.
package store

import "context"

// Store reads and writes JSON-encoded records.
//
// Get contract: an absent key OR a malformed blob under a key yields
// found == false with a nil error. Callers substitute their empty
// collection. Only real backend I/O failures surface as errors.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error

	// SetMulti overwrites several keys as one logical write. Backends
	// without a multi-key primitive apply the entries in order, so the
	// instant between two entries is a known inconsistency window.
	SetMulti(ctx context.Context, entries []Entry) error

	Remove(ctx context.Context, key string) error
}

type Entry struct {
	Key   string
	Value interface{}
}
