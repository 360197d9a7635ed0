package services

import "errors"

// Service-level sentinel errors. Together with the repository errors they
// form the closed set the handler boundary translates into HTTP statuses.
var (
	// ErrForbidden is returned when the caller's verified identity does not
	// own the target resource
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when a request body fails validation
	ErrInvalidInput = errors.New("invalid input")
)
