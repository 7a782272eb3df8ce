package minirepl

import (
	"fmt"
	"strconv"
)

// ArgsErrorKind discriminates the ways arguments can be rejected.
type ArgsErrorKind int

const (
	// WrongNumberOfArguments: the argument count does not match the signature.
	WrongNumberOfArguments ArgsErrorKind = iota
	// WrongArgumentValue: an argument failed to parse as its declared type.
	WrongArgumentValue
	// NoVariantFound: every overload rejected the arguments.
	NoVariantFound
)

// ArgsError is a recoverable, argument-shaped rejection. The dispatcher treats
// it as "try the next overload"; the loop reports it together with the usage
// lines for the command.
type ArgsError struct {
	Kind     ArgsErrorKind
	Got      int    // WrongNumberOfArguments
	Expected int    // WrongNumberOfArguments
	Argument string // WrongArgumentValue: the offending raw text
	Cause    string // WrongArgumentValue: the underlying parse error
}

// Error implements the error interface.
func (e *ArgsError) Error() string {
	switch e.Kind {
	case WrongNumberOfArguments:
		return fmt.Sprintf("wrong number of arguments: got %d, expected %d", e.Got, e.Expected)
	case WrongArgumentValue:
		return fmt.Sprintf("failed to parse argument value '%s': %s", e.Argument, e.Cause)
	case NoVariantFound:
		return "no command variant found for provided args"
	default:
		return "invalid arguments"
	}
}

var _ error = (*ArgsError)(nil)

// Validate checks raw arguments against a declared signature. It is a pure
// predicate: no side effects, usable independently of dispatch.
//
// The count must match exactly. Int32 and Float32 positions must parse as
// their numeric type; String and Custom positions always pass here (their
// real validation, if any, happens inside the handler).
func Validate(args []string, spec []ArgInfo) error {
	if len(args) != len(spec) {
		return &ArgsError{Kind: WrongNumberOfArguments, Got: len(args), Expected: len(spec)}
	}

	for i, raw := range args {
		switch spec[i].Type {
		case ArgInt32:
			if _, err := strconv.ParseInt(raw, 10, 32); err != nil {
				return &ArgsError{Kind: WrongArgumentValue, Argument: raw, Cause: err.Error()}
			}
		case ArgFloat32:
			if _, err := strconv.ParseFloat(raw, 32); err != nil {
				return &ArgsError{Kind: WrongArgumentValue, Argument: raw, Cause: err.Error()}
			}
		case ArgString, ArgCustom:
			// always pass
		}
	}

	return nil
}
