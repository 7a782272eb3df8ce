package minirepl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minirepl/minirepl/internal/editor"
	"github.com/minirepl/minirepl/internal/log"
	"github.com/minirepl/minirepl/internal/style"
)

// reservedCommands are always present and can never be registered by a
// caller. They bypass the registry and the dispatcher entirely.
var reservedCommands = []struct {
	Name        string
	Description string
}{
	{"help", "Show this help message"},
	{"quit", "Quit repl"},
}

func isReserved(name string) bool {
	for _, rc := range reservedCommands {
		if rc.Name == name {
			return true
		}
	}
	return false
}

// LineEditor is the collaborator that synchronously yields input lines.
// ReadLine returns editor.ErrInterrupted when the user aborts the prompt and
// io.EOF at end of input; any other error is reported and the loop continues.
type LineEditor interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(entry string)
	Close() error
}

// LoopStatus is the state of the loop after one step.
type LoopStatus int

const (
	// Continue: the loop should run another step.
	Continue LoopStatus = iota
	// Break: the loop should stop (quit command or end of input).
	Break
)

// Repl is the read-eval-print loop. It is constructed through NewBuilder;
// the command registry and the prefix index are immutable once built, so
// resolution needs no locking. At most one handler is in flight at any time.
type Repl struct {
	description string
	prompt      string
	textWidth   int
	predict     bool
	commands    map[string][]Command
	index       *prefixIndex
	editor      LineEditor
	out         io.Writer
	styler      *style.Styler
	logger      *log.Logger
}

// Run repeats Next until Break. It returns nil on a clean stop and the
// failure itself when a handler reports a critical error; no cleanup beyond
// unwinding is performed here, callers own their resources around Run.
func (r *Repl) Run(ctx context.Context) error {
	for {
		status, err := r.Next(ctx)
		if err != nil {
			return err
		}
		if status == Break {
			return nil
		}
	}
}

// Next runs a single loop iteration and reports whether it was the last one.
func (r *Repl) Next(ctx context.Context) (LoopStatus, error) {
	line, err := r.editor.ReadLine(r.prompt)
	switch {
	case errors.Is(err, editor.ErrInterrupted):
		fmt.Fprintln(r.out, "CTRL-C")
		return Break, nil
	case errors.Is(err, io.EOF):
		return Break, nil
	case err != nil:
		fmt.Fprintf(r.out, "%s %v\n", r.styler.Error("Error:"), err)
		return Continue, nil
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Continue, nil
	}
	r.editor.AppendHistory(trimmed)

	return r.handleLine(ctx, line)
}

// Close releases the line editor, restoring the terminal state.
func (r *Repl) Close() error {
	return r.editor.Close()
}

func (r *Repl) handleLine(ctx context.Context, line string) (LoopStatus, error) {
	words, err := splitWords(line)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", r.styler.Error("Error:"), err)
		return Continue, nil
	}
	if len(words) == 0 {
		return Continue, nil
	}

	prefix := words[0]
	res := resolve(r.index, prefix, r.predict)
	r.logger.Debug("resolve %q: found=%t exact=%t candidates=%v", prefix, res.Found, res.Exact, res.Candidates)
	if !res.Found {
		fmt.Fprintf(r.out, "Command not found: %s\n", prefix)
		if res.listCandidates(r.predict) {
			fmt.Fprintf(r.out, "Candidates:\n  %s\n", r.styler.Muted(strings.Join(res.Candidates, "\n  ")))
		}
		fmt.Fprintln(r.out, "Use 'help' to see available commands.")
		return Continue, nil
	}

	status, err := r.handleCommand(ctx, res.Name, words[1:])
	if err != nil {
		if isCritical(err) {
			r.logger.Debug("command %q: critical error: %v", res.Name, err)
			return Break, err
		}
		fmt.Fprintf(r.out, "%s %v\n", r.styler.Error("Error:"), err)
		var argsErr *ArgsError
		if errors.As(err, &argsErr) {
			// an ArgsError cannot have come from a reserved command
			fmt.Fprintln(r.out, "Usage:")
			for _, cmd := range r.commands[res.Name] {
				fmt.Fprintf(r.out, "  %s\n", cmd.usage(res.Name))
			}
		}
		return Continue, nil
	}

	if status == Quit {
		return Break, nil
	}
	return Continue, nil
}

// handleCommand invokes a resolved command. Reserved names are handled
// directly; everything else goes through overload dispatch: variants are
// tried in registration order, an argument-shaped rejection defers to the
// next variant, any other outcome short-circuits. When every variant
// rejects, the last rejection is surfaced. The name always has at least one
// variant because it came from a successful resolution.
func (r *Repl) handleCommand(ctx context.Context, name string, args []string) (Status, error) {
	switch name {
	case "help":
		fmt.Fprintln(r.out, r.Help())
		return Done, nil
	case "quit":
		return Quit, nil
	}

	var lastRejection error
	for i, cmd := range r.commands[name] {
		status, err := cmd.Handler.Execute(ctx, args)
		if err != nil {
			if isCritical(err) {
				return status, err
			}
			var argsErr *ArgsError
			if !errors.As(err, &argsErr) {
				return status, err
			}
			r.logger.Debug("dispatch %q: variant %d rejected: %v", name, i, err)
			lastRejection = err
			continue
		}
		r.logger.Debug("dispatch %q: variant %d accepted", name, i)
		return status, nil
	}
	return Done, lastRejection
}
