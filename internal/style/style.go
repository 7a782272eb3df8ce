// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling is
// semantic (Error, Info, etc.) rather than visual. When disabled, every
// helper returns the input string unchanged with no ANSI codes, so output
// bytes stay stable for non-terminal sinks.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler renders semantic styles for one output sink.
type Styler struct {
	enabled bool

	errorStyle  lipgloss.Style
	infoStyle   lipgloss.Style
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
}

// New creates a Styler. The standard NO_COLOR convention is respected: if the
// variable is set to any non-empty value, styling stays disabled regardless
// of the enable parameter.
func New(enable bool) *Styler {
	if os.Getenv("NO_COLOR") != "" {
		enable = false
	}

	s := &Styler{enabled: enable}
	if !enable {
		return s
	}

	// Force the ANSI256 palette regardless of TTY detection so basic and
	// extended colors both render.
	lipgloss.SetColorProfile(termenv.ANSI256)

	s.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	s.infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	s.headerStyle = lipgloss.NewStyle().Bold(true)
	s.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return s
}

// Enabled returns whether styling is currently enabled.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Error styles text for failure messages.
func (s *Styler) Error(text string) string {
	if !s.enabled {
		return text
	}
	return s.errorStyle.Render(text)
}

// Info styles text for informational messages.
func (s *Styler) Info(text string) string {
	if !s.enabled {
		return text
	}
	return s.infoStyle.Render(text)
}

// Header styles text for section headers.
func (s *Styler) Header(text string) string {
	if !s.enabled {
		return text
	}
	return s.headerStyle.Render(text)
}

// Muted styles text for secondary information.
func (s *Styler) Muted(text string) string {
	if !s.enabled {
		return text
	}
	return s.mutedStyle.Render(text)
}
