package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Engine input errors
	ErrEmptyInput       = errors.New("empty input sample")
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrInvalidParameter = errors.New("invalid test parameter")

	// Dataset errors
	ErrColumnNotFound = errors.New("column not found")
	ErrNonNumeric     = errors.New("column contains non-numeric values")
	ErrGroupNotFound  = errors.New("group value not found")
)

// Error constructors with context

func NewEmptyInputError(what string) error {
	return fmt.Errorf("%w: %s", ErrEmptyInput, what)
}

func NewInsufficientDataError(what string, n, min int) error {
	return fmt.Errorf("%w: %s has n=%d, need at least %d", ErrInsufficientData, what, n, min)
}

func NewInvalidParameterError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, param, reason)
}

func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

func NewNonNumericError(column string, row int, raw string) error {
	return fmt.Errorf("%w: column %q row %d value %q", ErrNonNumeric, column, row, raw)
}

// Error checking helpers

func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrInvalidParameter)
}

func IsDatasetError(err error) bool {
	return errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrNonNumeric) ||
		errors.Is(err, ErrGroupNotFound)
}
