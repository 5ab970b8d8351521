package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a plain handle is
	// attempted on a transactional one.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called on a handle
	// that is not inside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
