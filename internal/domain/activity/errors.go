package activity

import "errors"

// ErrInvalidInput indicates invalid input for log operations.
var ErrInvalidInput = errors.New("invalid activity input")
