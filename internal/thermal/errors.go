package thermal

import (
	"errors"
	"fmt"
)

// Domain errors for schedule construction and queries.
var (
	// ErrShapeMismatch indicates input sequences that break the dwell/ramp layout.
	ErrShapeMismatch = errors.New("thermal: sequence lengths do not match dwell/ramp layout")

	// ErrDivisionByZero indicates a rate over a zero-width span or a zero total time.
	ErrDivisionByZero = errors.New("thermal: division by zero")

	// ErrInvalidValue indicates a NaN, infinite or negative input where it is not allowed.
	ErrInvalidValue = errors.New("thermal: invalid value")
)

// ScheduleError wraps an error with the operation and position that produced it.
// Index is -1 when the error is not tied to one element.
type ScheduleError struct {
	Op    string
	Index int
	Err   error
}

func (e *ScheduleError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s [%d]: %v", e.Op, e.Index, e.Err)
}

func (e *ScheduleError) Unwrap() error {
	return e.Err
}

func newError(op string, index int, err error, format string, args ...any) error {
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	}
	return &ScheduleError{Op: op, Index: index, Err: err}
}
