package importjob

import "errors"

var (
	// ErrJobNotFound indicates the import job doesn't exist.
	ErrJobNotFound = errors.New("import job not found")
	// ErrInvalidInput indicates invalid input for import operations.
	ErrInvalidInput = errors.New("invalid import input")
)
