package apperrors

import (
	"errors"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates an unexpected failure that the caller cannot fix.
var ErrInternal = errors.New("internal error")

// ErrPartialWrite marks a multi-collection write where the first collection
// was stored and a later one was not.
var ErrPartialWrite = errors.New("write partially applied")
