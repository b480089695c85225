package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDuplicateID indicates a project with the same id already exists.
	ErrDuplicateID = errors.New("project id already exists")
	// ErrInvalidInput indicates the project failed schema validation.
	ErrInvalidInput = errors.New("invalid project input")
)
