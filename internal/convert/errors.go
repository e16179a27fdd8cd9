package convert

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotADirectory      = errors.New("not a directory")
	ErrConflictingOptions = errors.New("conflicting options")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrNegativeValue      = errors.New("negative value")

	// ErrInvalidOuttype is an InvalidFormat failure for the --outtype token.
	ErrInvalidOuttype = fmt.Errorf("%w: unknown outtype", ErrInvalidFormat)
)

// OptionError ties a validation failure to the flag and value that caused it.
type OptionError struct {
	Flag  string
	Value string
	Err   error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Flag, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

func optionError(flag, value string, err error) error {
	return &OptionError{Flag: flag, Value: value, Err: err}
}
