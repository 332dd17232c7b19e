// Package errors provides custom error types for inventory operations.
package errors

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateID = errors.New("duplicate product id")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrCorruptData = errors.New("corrupt catalog data")

// ValidationError reports a single invalid field on a product or operation
// argument. It carries the field name so callers can render a precise message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
