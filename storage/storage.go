package storage

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// ErrReadOnlyTxn is returned by Set calls made inside a View transaction
var ErrReadOnlyTxn = errors.New("storage: write inside read-only transaction")

// Txn is a single key-value transaction. Writes performed through a Txn
// become visible only if the enclosing Update commits.
type Txn interface {
	// Set stores the value under the given key
	Set(p []byte, v []byte) error

	// Get fetches the value stored under the given key
	Get(p []byte) ([]byte, bool, error)
}

// Storage is a transactional key-value store. Every contract operation
// runs inside exactly one Update call, which is all-or-nothing: if the
// callback returns an error, none of its writes are applied.
type Storage interface {
	// Update runs fn inside a read-write transaction
	Update(fn func(txn Txn) error) error

	// View runs fn inside a read-only transaction
	View(fn func(txn Txn) error) error

	// Close releases the underlying store
	Close() error
}

// Factory is a factory method to create a storage backend
type Factory func(path string, logger hclog.Logger) (Storage, error)
