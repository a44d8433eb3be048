package main

import (
	"errors"
	"fmt"
)

var (
	// errInvalidConfiguration covers unknown flags and bad flag values.
	errInvalidConfiguration = errors.New("invalid configuration")
	// errNoInput is returned when neither arguments nor piped input carry text.
	errNoInput = errors.New("no input")
)

// usageError carries a message meant for the terminal and the class of failure.
type usageError struct {
	kind error
	msg  string
}

func newUsageError(kind error, format string, args ...any) error {
	return &usageError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *usageError) Error() string { return e.msg }
func (e *usageError) Unwrap() error { return e.kind }
