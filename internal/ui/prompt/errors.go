package prompt

import (
	"errors"
	"fmt"
)

// ErrEmptyOptions is returned by Select and MultiSelect when there is nothing
// to choose from.
var ErrEmptyOptions = errors.New("options is empty")

// ErrInvalidMaxChoice matches any [InvalidMaxChoiceError] via errors.Is.
var ErrInvalidMaxChoice = errors.New("invalid max choice")

// InvalidMaxChoiceError reports a multi-select cap outside [1, len(options)].
type InvalidMaxChoiceError struct {
	Message string
}

func (e *InvalidMaxChoiceError) Error() string {
	return e.Message
}

func (e *InvalidMaxChoiceError) Is(target error) bool {
	return target == ErrInvalidMaxChoice
}

// IOError wraps a failure of the underlying terminal.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ioErr wraps err in an IOError, passing nil through.
func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}
