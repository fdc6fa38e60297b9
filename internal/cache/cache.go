// Package cache holds the read-through cache the handlers share. Entries are
// serialized JSON blobs with no expiry; they live until a mutation deletes
// them or the process restarts. The store is never the source of truth.
package cache

import "context"

// Store is the key-value contract every handler gets injected. A cache
// backend failure is indistinguishable from a miss: Get reports absent,
// writes are best effort.
type Store interface {
	Has(ctx context.Context, key string) bool
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	// Delete removes every listed key. Absent keys are not an error.
	Delete(ctx context.Context, keys ...string)
}
