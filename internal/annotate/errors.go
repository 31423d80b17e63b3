package annotate

import (
	"errors"
	"fmt"
)

// ErrFormat indicates a date or time string with the wrong shape.
var ErrFormat = errors.New("annotate: malformed date or time")

// FormatError records which field failed validation and why.
type FormatError struct {
	Field string
	Value string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s %q, want %s", ErrFormat, e.Field, e.Value, e.Want)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
