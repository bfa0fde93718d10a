package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint. Distinguishable from other write errors so the resolver
	// can re-resolve instead of failing.
	ErrDuplicate = errors.New("duplicate: uniqueness constraint violated")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
