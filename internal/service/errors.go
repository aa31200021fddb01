package service

import (
	"errors"
	"strings"
)

// Sentinel errors handlers translate into HTTP statuses.
var (
	// ErrNotFound: the keyed row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReferenced: the row is still referenced by dependent rows and
	// cannot be deleted (surfaced as a 409, never a generic failure).
	ErrReferenced = errors.New("cannot delete: still referenced")

	// ErrConflict: a caller-supplied unique key is already taken.
	ErrConflict = errors.New("already exists")
)

// CheckoutValidationError aggregates every business-rule violation found in a
// checkout request. The whole transaction is aborted; nothing is written.
type CheckoutValidationError struct {
	Problems []string
}

func (e *CheckoutValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}
