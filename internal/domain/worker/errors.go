package worker

import "errors"

var (
	// ErrWorkerNotFound indicates the worker doesn't exist.
	ErrWorkerNotFound = errors.New("worker not found")
	// ErrDuplicateID indicates a worker with the same id already exists.
	ErrDuplicateID = errors.New("worker id already exists")
	// ErrInvalidInput indicates the worker failed schema validation.
	ErrInvalidInput = errors.New("invalid worker input")
)
