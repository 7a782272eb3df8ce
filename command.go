// Package minirepl implements the command-resolution and dispatch core of an
// interactive line-oriented shell.
//
// A Repl is assembled once through a Builder: commands are registered by name,
// possibly several times with different argument signatures (overloads), and
// the registry is closed when Build returns. At runtime the loop reads a line,
// resolves the first word against the registered names (tolerating unambiguous
// abbreviations), picks the first overload whose arguments validate, invokes
// its handler and classifies the outcome into "continue", "stop cleanly",
// "report and continue" or "propagate and terminate".
package minirepl

import (
	"context"
	"strings"
)

// ArgType is the closed set of argument types a command can declare.
type ArgType int

const (
	// ArgInt32 requires the raw argument to parse as a 32-bit integer.
	ArgInt32 ArgType = iota
	// ArgFloat32 requires the raw argument to parse as a 32-bit float.
	ArgFloat32
	// ArgString accepts any raw argument.
	ArgString
	// ArgCustom accepts any raw argument; the handler parses it itself.
	ArgCustom
)

func (t ArgType) String() string {
	switch t {
	case ArgInt32:
		return "i32"
	case ArgFloat32:
		return "f32"
	case ArgString:
		return "string"
	case ArgCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ArgInfo declares one positional argument: its type and an optional display
// name used in usage lines and help text.
type ArgInfo struct {
	Type ArgType
	Name string
}

// Arg declares an unnamed argument of the given type.
func Arg(t ArgType) ArgInfo {
	return ArgInfo{Type: t}
}

// NamedArg declares an argument with a display name.
func NamedArg(t ArgType, name string) ArgInfo {
	return ArgInfo{Type: t, Name: name}
}

// String renders the argument as "name:type". The name part may be empty.
func (a ArgInfo) String() string {
	return a.Name + ":" + a.Type.String()
}

// Status is what a handler reports after a successful invocation.
type Status int

const (
	// Done tells the loop to continue with the next line.
	Done Status = iota
	// Quit tells the loop to stop cleanly.
	Quit
)

// Handler is the invocable capability behind a registered command.
//
// The handler must validate its arguments (see Validate) and return an
// *ArgsError when they do not fit its signature; the dispatcher relies on that
// to try the next overload. Any error wrapped with Critical terminates the
// loop; every other error is printed and the loop continues.
//
// The core guarantees at most one handler is in flight at any time, so a
// handler may close over shared mutable state without extra locking against
// the loop itself. The context is the one passed to Run or Next.
type Handler interface {
	Execute(ctx context.Context, args []string) (Status, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, args []string) (Status, error)

// Execute implements Handler.
func (f HandlerFunc) Execute(ctx context.Context, args []string) (Status, error) {
	return f(ctx, args)
}

// Command is one registered variant of a named command.
type Command struct {
	// Description is shown in the help message.
	Description string
	// Args declares the names and types of the positional arguments.
	Args []ArgInfo
	// Handler validates arguments and performs the command logic.
	Handler Handler
}

// NewCommand builds a Command from its parts.
func NewCommand(description string, args []ArgInfo, handler Handler) Command {
	return Command{Description: description, Args: args, Handler: handler}
}

// signature is the type-only key used to detect duplicate overloads.
// Argument names and descriptions do not participate.
func (c Command) signature() string {
	types := make([]string, len(c.Args))
	for i, a := range c.Args {
		types[i] = a.Type.String()
	}
	return strings.Join(types, " ")
}

// usage renders the "name arg:type ..." call signature for usage lines
// and help entries.
func (c Command) usage(name string) string {
	if len(c.Args) == 0 {
		return name
	}
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, name)
	for _, a := range c.Args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

// TrivialHandler validates against an empty signature and reports Done.
// Useful in tests and as a placeholder while wiring a registry.
type TrivialHandler struct{}

// Execute implements Handler.
func (TrivialHandler) Execute(_ context.Context, args []string) (Status, error) {
	return LiftValidation(Validate(args, nil))
}

// LiftValidation converts a validation result into a handler outcome:
// nil becomes Done, an error is passed through for the dispatcher to
// classify.
func LiftValidation(err error) (Status, error) {
	if err != nil {
		return Done, err
	}
	return Done, nil
}
