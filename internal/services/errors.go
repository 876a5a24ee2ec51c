package services

import (
	"errors"
	"fmt"
)

// Domain errors. Callers distinguish these from storage failures with
// errors.Is; storage failures arrive wrapped and unclassified (spec'd to be
// surfaced generically, never retried).
var (
	// ErrDuplicateUsername is returned by registration when the username is
	// already taken, compared case-insensitively.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is deliberately generic: it does not distinguish
	// an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated is returned by operations that require an active
	// session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUserNotFound is returned when the session points at a user the
	// users list no longer contains.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound covers order, item and product lookups.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned by checkout on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError reports the first input rule that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
