// Package kvstore provides the string-keyed persistence surface the
// storefront core reads and writes through. It mirrors the semantics of
// browser local storage: synchronous get/set/remove on opaque string
// values, last writer wins.
package kvstore

import "context"

// Store is the narrow key-value contract consumed by the repositories.
type Store interface {
	// Get returns the stored value. The boolean reports presence; an
	// absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the value under the key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
