// Package store provides the key-value persistence media backing all
// Pizzarten state. Two implementations exist: FileStore, the durable
// per-user medium used for the catalog and cart, and MemStore, the
// session-scoped medium used for the role, which dies with the process.
package store

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Persisted storage keys. The names are contract-bearing: a format change
// requires a new key name suffix, never an in-place migration.
const (
	CatalogKey = "pizzarten_db_v2"
	CartKey    = "pizzarten_cart_v1"
	RoleKey    = "pizzarten_role_v1"
)

// Store is the key-value contract shared by all persistence media.
// Values are serialized structured text (JSON).
type Store interface {
	// Get retrieves the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set persists value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes the value for key. Removing an absent key is a no-op.
	Remove(key string) error
}
