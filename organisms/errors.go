package organisms

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every construction validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOrganismNotFound is wrapped by every lookup miss.
	ErrOrganismNotFound = errors.New("organism not found")
)

// InputError describes a malformed construction argument.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError reports a lookup for an identifier that is not present.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("organism with ID %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrOrganismNotFound
}

func invalid(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
