// Package editor wraps the terminal line editor behind a small synchronous
// interface: prompt for a line, record history, signal interruption or end
// of input. The default implementation is backed by peterh/liner.
package editor

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted reports that the user aborted the prompt (Ctrl-C).
var ErrInterrupted = errors.New("prompt interrupted")

// End of input (Ctrl-D) is reported as io.EOF.

// Options configure completion behavior of the default editor.
type Options struct {
	// Hints expands a unique completion eagerly, appending a trailing space
	// so the user can keep typing arguments.
	Hints bool
	// Completion enables tab completion of command names.
	Completion bool
	// FilenameCompletion additionally completes later words as file paths.
	FilenameCompletion bool
	// Candidates yields the command names matching a typed prefix, sorted.
	Candidates func(prefix string) []string
}

// Liner is the default line editor. History is kept in memory for the
// process lifetime; nothing is persisted.
type Liner struct {
	state *liner.State
}

// New creates a Liner and puts the terminal into line-editing mode.
// Callers must Close it to restore the terminal.
func New(opts Options) *Liner {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	if opts.Completion && opts.Candidates != nil {
		st.SetCompleter(completer(opts))
	}
	return &Liner{state: st}
}

func completer(opts Options) liner.Completer {
	return func(line string) []string {
		if i := strings.LastIndex(line, " "); i >= 0 {
			if !opts.FilenameCompletion {
				return nil
			}
			head, word := line[:i+1], line[i+1:]
			matches, err := filepath.Glob(word + "*")
			if err != nil {
				return nil
			}
			out := make([]string, 0, len(matches))
			for _, m := range matches {
				out = append(out, head+m)
			}
			return out
		}

		cands := opts.Candidates(line)
		if opts.Hints && len(cands) == 1 {
			return []string{cands[0] + " "}
		}
		return cands
	}
}

// ReadLine prompts for one line. It returns ErrInterrupted on Ctrl-C and
// io.EOF on end of input.
func (l *Liner) ReadLine(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	}
	return line, err
}

// AppendHistory records a line for arrow-key recall.
func (l *Liner) AppendHistory(entry string) {
	l.state.AppendHistory(entry)
}

// Close restores the terminal state.
func (l *Liner) Close() error {
	return l.state.Close()
}
