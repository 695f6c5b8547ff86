package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("not authorized to access this record")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ValidationError reports a rejected input field. It is returned before any
// write is applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid value for field %q", e.Field)
}
