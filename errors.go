package minirepl

import (
	"errors"
	"fmt"
)

// BuildErrorKind discriminates registry construction failures.
type BuildErrorKind int

const (
	// ErrDuplicateCommands: two variants under one name share a type signature.
	ErrDuplicateCommands BuildErrorKind = iota
	// ErrInvalidName: the name is empty or does not tokenize to a single word.
	ErrInvalidName
	// ErrReservedName: the name collides with a built-in command.
	ErrReservedName
)

// BuildError is returned by Builder.Build. The first failing registration
// aborts the whole build; no partial registry is returned.
type BuildError struct {
	Kind BuildErrorKind
	Name string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch e.Kind {
	case ErrDuplicateCommands:
		return fmt.Sprintf("more than one command with name '%s' added", e.Name)
	case ErrInvalidName:
		return fmt.Sprintf("name '%s' cannot be parsed correctly, thus would be impossible to call", e.Name)
	case ErrReservedName:
		return fmt.Sprintf("'%s' is a reserved command name", e.Name)
	default:
		return fmt.Sprintf("cannot register command '%s'", e.Name)
	}
}

var _ error = (*BuildError)(nil)

// CriticalError marks a handler failure that must not be swallowed by the
// loop's normal recovery: Run and Next return it instead of printing it.
type CriticalError struct {
	Err error
}

// Critical wraps err so the loop propagates it out instead of reporting it
// and continuing. Wrapping nil returns nil.
func Critical(err error) error {
	if err == nil {
		return nil
	}
	return &CriticalError{Err: err}
}

// Error implements the error interface.
func (e *CriticalError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying cause.
func (e *CriticalError) Unwrap() error {
	return e.Err
}

var _ error = (*CriticalError)(nil)

func isCritical(err error) bool {
	var ce *CriticalError
	return errors.As(err, &ce)
}
