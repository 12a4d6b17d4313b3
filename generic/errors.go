/*
errors.go - Centralized error types for the payroll core

PURPOSE:
  All error types in one place for consistency and discoverability.
  The console package maps them to the fixed advisory messages the user
  sees; storage backends return them unchanged.

ERROR CATEGORIES:
  1. Input errors - Malformed or non-positive numeric tokens, bad choices
  2. Identity errors - Duplicate employee IDs
  3. Registry errors - Unknown or malformed stored kinds

USAGE:
  if errors.Is(err, generic.ErrDuplicateID) {
      // re-prompt for another ID
  }

SEE ALSO:
  - store.go: Append returns ErrDuplicateID
  - console/reader.go: Produces InputError values
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidNumber is returned when a token does not parse as a number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNotPositive is returned when a numeric value is zero or negative.
	ErrNotPositive = errors.New("value must be positive")

	// ErrInvalidChoice is returned when a menu choice is out of range.
	ErrInvalidChoice = errors.New("invalid menu choice")

	// ErrDuplicateID is returned when an employee with the same ID is
	// already in the session store.
	ErrDuplicateID = errors.New("duplicate employee id")

	// ErrUnknownKind is returned when a stored kind is not registered.
	ErrUnknownKind = errors.New("unknown employee kind")

	// ErrMissingAttribute is returned when a stored record lacks a field
	// its kind requires.
	ErrMissingAttribute = errors.New("missing employee attribute")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InputError records the token that failed validation.
type InputError struct {
	Token string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// DuplicateIDError provides details about an ID collision.
type DuplicateIDError struct {
	ID EmployeeID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("employee id %d already exists", e.ID)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInputError returns true if the error is due to invalid user input and
// should be answered with a re-prompt.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrNotPositive) ||
		errors.Is(err, ErrInvalidChoice) ||
		errors.Is(err, ErrDuplicateID)
}
