package repositories

import "errors"

// Typed storage errors. Callers translate these at the response boundary
// instead of matching on error strings.
var (
	// ErrInvalidID is returned when a path identifier is not a valid ObjectID hex
	ErrInvalidID = errors.New("invalid identifier")
	// ErrNotFound is returned when a findOne filter matches no record
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email index
	ErrDuplicateEmail = errors.New("email already registered")
)
