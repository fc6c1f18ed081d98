// Package domain defines domain-level errors for the product feature.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound indicates that no active product matched the id.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotOwner indicates that the caller is neither the product's seller
	// nor an admin.
	ErrNotOwner = errors.New("caller does not own this product")
)

// ValidationError reports the first product field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
