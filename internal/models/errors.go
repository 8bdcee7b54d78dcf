package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("not found")
)

// ValidationError describes the first constraint a record violated.
type ValidationError struct {
	Entity string
	Field  string
	Rule   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field '%s' failed on '%s'", e.Entity, e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
