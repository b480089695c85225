package attendance

import "errors"

var (
	// ErrRecordNotFound indicates the attendance record doesn't exist.
	ErrRecordNotFound = errors.New("attendance record not found")
	// ErrDuplicateID indicates a record with the same id already exists.
	ErrDuplicateID = errors.New("attendance record id already exists")
	// ErrInvalidInput indicates the record failed schema validation.
	ErrInvalidInput = errors.New("invalid attendance input")
)
