// Package repoerr holds the repository error sentinels in a leaf package so
// that both the repository interfaces and the domain services can share them
// without an import cycle.
package repoerr

import "errors"

var (
	// ErrNotFound is returned when a requested record doesn't exist.
	// Lookups treat this as an expected outcome, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an insert collides with an existing id.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStoreUnavailable is returned when the underlying database cannot be
	// opened or migrated. Fatal to persistence for the session.
	ErrStoreUnavailable = errors.New("store unavailable")
)
