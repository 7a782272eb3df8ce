package minirepl

import (
	"io"
	"os"

	shellwords "github.com/mattn/go-shellwords"
	"golang.org/x/term"

	"github.com/minirepl/minirepl/internal/editor"
	"github.com/minirepl/minirepl/internal/log"
	"github.com/minirepl/minirepl/internal/style"
)

// splitWords tokenizes a line into whitespace/quote-aware words.
func splitWords(line string) ([]string, error) {
	return shellwords.Parse(line)
}

type namedCommand struct {
	name string
	cmd  Command
}

// Builder assembles a Repl. All setters return the builder so calls can be
// chained; Build finalizes the registry and the prefix index, after which
// commands can no longer be added or removed.
type Builder struct {
	description            string
	prompt                 string
	textWidth              int
	predictCommands        bool
	withHints              bool
	withCompletion         bool
	withFilenameCompletion bool
	out                    io.Writer
	debugLog               io.Writer
	commands               []namedCommand
	editor                 LineEditor
}

// NewBuilder starts a builder with default configuration: prompt "> ",
// text width 80, prediction, hints and completion enabled, filename
// completion disabled, output to stderr.
func NewBuilder() *Builder {
	return &Builder{
		prompt:          "> ",
		textWidth:       80,
		predictCommands: true,
		withHints:       true,
		withCompletion:  true,
		out:             os.Stderr,
	}
}

// Description sets the text shown atop the help message. Defaults to empty.
func (b *Builder) Description(s string) *Builder {
	b.description = s
	return b
}

// Prompt sets the prompt string. Defaults to "> ".
func (b *Builder) Prompt(s string) *Builder {
	b.prompt = s
	return b
}

// TextWidth sets the width used when wrapping the help message. Defaults to 80.
func (b *Builder) TextWidth(w int) *Builder {
	b.textWidth = w
	return b
}

// PredictCommands controls whether a unique, inexact command prefix is
// executed as its only completion. Defaults to true. With commands "make"
// and "move", entering just "mo" resolves to "move", but entering "m"
// results in an error.
func (b *Builder) PredictCommands(enable bool) *Builder {
	b.predictCommands = enable
	return b
}

// WithHints controls inline expansion of a unique completion in the line
// editor. Defaults to true.
func (b *Builder) WithHints(enable bool) *Builder {
	b.withHints = enable
	return b
}

// WithCompletion controls tab completion of command names. Defaults to true.
func (b *Builder) WithCompletion(enable bool) *Builder {
	b.withCompletion = enable
	return b
}

// WithFilenameCompletion additionally completes argument words as file
// paths. Defaults to false.
func (b *Builder) WithFilenameCompletion(enable bool) *Builder {
	b.withFilenameCompletion = enable
	return b
}

// Output sets where the loop prints its messages. Defaults to os.Stderr.
// Note that the line editor always talks to the terminal directly.
func (b *Builder) Output(w io.Writer) *Builder {
	b.out = w
	return b
}

// DebugLog enables diagnostic traces of resolution and dispatch to w.
// Disabled by default.
func (b *Builder) DebugLog(w io.Writer) *Builder {
	b.debugLog = w
	return b
}

// Add registers a command variant under name. The same name may be added
// several times with distinct argument type signatures; dispatch tries the
// variants in the order they were added.
func (b *Builder) Add(name string, cmd Command) *Builder {
	b.commands = append(b.commands, namedCommand{name: name, cmd: cmd})
	return b
}

// withEditor overrides the line editor. Used by tests.
func (b *Builder) withEditor(ed LineEditor) *Builder {
	b.editor = ed
	return b
}

// Build finalizes the configuration and returns the Repl, or the first
// registration error. The build is all-or-nothing: a failing pair aborts it
// and no partial registry escapes.
func (b *Builder) Build() (*Repl, error) {
	commands := make(map[string][]Command)
	index := newPrefixIndex()

	for _, nc := range b.commands {
		words, err := splitWords(nc.name)
		if err != nil || len(words) != 1 || nc.name == "" {
			return nil, &BuildError{Kind: ErrInvalidName, Name: nc.name}
		}
		if isReserved(nc.name) {
			return nil, &BuildError{Kind: ErrReservedName, Name: nc.name}
		}
		sig := nc.cmd.signature()
		for _, existing := range commands[nc.name] {
			if existing.signature() == sig {
				return nil, &BuildError{Kind: ErrDuplicateCommands, Name: nc.name}
			}
		}
		commands[nc.name] = append(commands[nc.name], nc.cmd)
		index.insert(nc.name)
	}
	for _, rc := range reservedCommands {
		index.insert(rc.Name)
	}

	ed := b.editor
	if ed == nil {
		ed = editor.New(editor.Options{
			Hints:              b.withHints,
			Completion:         b.withCompletion,
			FilenameCompletion: b.withFilenameCompletion,
			Candidates:         index.candidates,
		})
	}

	var logger *log.Logger
	if b.debugLog != nil {
		logger = log.New(b.debugLog, log.LevelDebug)
	}

	return &Repl{
		description: b.description,
		prompt:      b.prompt,
		textWidth:   b.textWidth,
		predict:     b.predictCommands,
		commands:    commands,
		index:       index,
		editor:      ed,
		out:         b.out,
		styler:      style.New(styleEnabled(b.out)),
		logger:      logger,
	}, nil
}

// styleEnabled reports whether the sink is a terminal; only then are ANSI
// styles emitted, keeping bytes stable for buffers and pipes.
func styleEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
