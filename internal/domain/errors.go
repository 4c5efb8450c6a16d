package domain

import (
	"errors"
	"fmt"
)

// Structural parse errors. A page that does not match the expected markup is
// rejected outright rather than parsed partially.
var (
	ErrMissingElement    = errors.New("missing expected element")
	ErrUnexpectedElement = errors.New("unexpected element")
)

// MissingElement wraps ErrMissingElement with the selector that failed to match.
func MissingElement(selector string) error {
	return fmt.Errorf("%w: %s", ErrMissingElement, selector)
}

// UnexpectedElement wraps ErrUnexpectedElement with the offending selector.
func UnexpectedElement(selector string) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedElement, selector)
}
