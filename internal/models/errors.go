package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by every repository. Handlers map these onto HTTP
// statuses: invalid id / invalid input -> 400, not found -> 404,
// store unavailable -> 500.
var (
	ErrInvalidID        = errors.New("invalid identifier")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// WrapStore attaches the store-level cause to ErrStoreUnavailable so the
// kind survives errors.Is while the message keeps the original error.
func WrapStore(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
