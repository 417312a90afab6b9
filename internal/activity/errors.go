package activity

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a document that lacks a field the portal
	// requires. The wrapped message names the section and field.
	ErrMissingField = errors.New("missing required field")

	// ErrBadValue marks a field whose value cannot be converted to the
	// wire format (unparseable date, unknown timezone, bad time of day).
	ErrBadValue = errors.New("invalid field value")
)

func missingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

func badValue(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrBadValue, path, err)
}
