package minirepl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Help returns the formatted help message: the description, every overload
// of every user command sorted by name, then the reserved commands in their
// fixed declaration order. The output depends only on the immutable registry,
// so repeated calls yield identical text.
func (r *Repl) Help() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var user [][2]string
	for _, name := range names {
		for _, cmd := range r.commands[name] {
			user = append(user, [2]string{cmd.usage(name), cmd.Description})
		}
	}

	other := make([][2]string, 0, len(reservedCommands))
	for _, rc := range reservedCommands {
		other = append(other, [2]string{rc.Name, rc.Description})
	}

	var b strings.Builder
	b.WriteString(r.description)
	b.WriteString("\n\nAvailable commands:\n")
	b.WriteString(formatHelpEntries(user, r.textWidth))
	b.WriteString("\nOther commands:\n")
	b.WriteString(formatHelpEntries(other, r.textWidth))
	return strings.TrimSpace(b.String())
}

// formatHelpEntries lays out (signature, description) pairs as two aligned
// columns, wrapping descriptions to textWidth with continuation lines
// indented past the signature column.
func formatHelpEntries(entries [][2]string, textWidth int) string {
	if len(entries) == 0 {
		return ""
	}

	width := 0
	for _, e := range entries {
		if len(e[0]) > width {
			width = len(e[0])
		}
	}
	indent := strings.Repeat(" ", width+4)

	avail := textWidth - width - 4
	if avail < 20 {
		avail = 20
	}

	var b strings.Builder
	for _, e := range entries {
		lines := strings.Split(wordwrap.String(e[1], avail), "\n")
		first := fmt.Sprintf("  %-*s  %s", width, e[0], lines[0])
		b.WriteString(strings.TrimRight(first, " "))
		b.WriteByte('\n')
		for _, more := range lines[1:] {
			b.WriteString(indent)
			b.WriteString(more)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
