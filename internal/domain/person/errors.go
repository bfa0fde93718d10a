package person

import "errors"

var (
	// ErrPersonNotFound indicates the person doesn't exist in the scope.
	ErrPersonNotFound = errors.New("person not found")
	// ErrInvalidInput indicates invalid input for person operations.
	ErrInvalidInput = errors.New("invalid person input")
	// ErrResolveConflict indicates an insert hit a uniqueness constraint but
	// the conflicting record could not be found on re-resolution. This is a
	// consistency anomaly, not a retryable condition.
	ErrResolveConflict = errors.New("identity conflict persisted after re-resolution")
	// ErrIdentityInUse indicates the platform identity already belongs to a
	// different person in the same scope.
	ErrIdentityInUse = errors.New("platform identity already attached to another person")
)
