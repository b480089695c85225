package task

import "errors"

var (
	// ErrTaskNotFound indicates the task doesn't exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrDuplicateID indicates a task with the same id already exists.
	ErrDuplicateID = errors.New("task id already exists")
	// ErrInvalidInput indicates the task failed schema validation.
	ErrInvalidInput = errors.New("invalid task input")
)
