package fn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is raised by constructors handed an absent payload.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyValue is raised when unwrapping an Option that holds no value.
	ErrEmptyValue = errors.New("there was no value to unwrap")
	// ErrNoValue is the generic failure for collapsing an absent Option into a Result.
	ErrNoValue = errors.New("no value to convert")
)

// ExpectError is raised by Result.Expect. It carries only the caller's message.
type ExpectError struct {
	Message string
}

func (e *ExpectError) Error() string {
	return e.Message
}

// PanicError wraps a recovered panic value that was not an error itself.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ValidationError is produced by checks that return a failure message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsEmptyValue reports whether err comes from unwrapping an absent Option.
func IsEmptyValue(err error) bool {
	return errors.Is(err, ErrEmptyValue)
}
