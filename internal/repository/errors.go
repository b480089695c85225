package repository

import "github.com/quarrylabs/sitekeeper/internal/repoerr"

// The sentinels live in the repoerr leaf package so domain services can use
// them without importing this package; they are re-exported here unchanged.
var (
	// ErrNotFound is returned when a requested record doesn't exist.
	// Lookups treat this as an expected outcome, not a failure.
	ErrNotFound = repoerr.ErrNotFound

	// ErrDuplicateKey is returned when an insert collides with an existing id.
	ErrDuplicateKey = repoerr.ErrDuplicateKey

	// ErrStoreUnavailable is returned when the underlying database cannot be
	// opened or migrated. Fatal to persistence for the session.
	ErrStoreUnavailable = repoerr.ErrStoreUnavailable
)
