package store

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors shared by every store
var (
	// Validation errors
	ErrValidation       = errors.New("please complete all fields")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Business logic errors
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNotFound           = errors.New("record not found")

	// Persistence errors
	ErrMalformed = errors.New("stored collection is malformed")
	ErrNotLoaded = errors.New("collection has not been loaded")
)

// ValidationError lists the draft fields that were empty or invalid.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 || len(e.Invalid) == 0 {
		msg := ErrValidation.Error()
		if len(e.Missing) > 0 {
			msg += " (missing: " + strings.Join(e.Missing, ", ") + ")"
		}
		parts = append(parts, msg)
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid value for "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
