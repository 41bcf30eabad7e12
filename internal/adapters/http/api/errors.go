package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API layer.
var (
	// ErrNotFound indicates the requested route does not exist.
	ErrNotFound = errors.New("route not found")

	// ErrRateLimited indicates the client exceeded its request budget.
	ErrRateLimited = errors.New("rate limited")
)

// newKind annotates a sentinel error with the failing operation.
func newKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}
