package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/mcalc/internal/calculator"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// palette styles session output. A plain palette writes text unchanged.
type palette struct {
	plain   bool
	prompt  lipgloss.Style
	label   lipgloss.Style
	display lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	notice  lipgloss.Style
}

func newPalette(out io.Writer, color bool) palette {
	if !color {
		return palette{plain: true}
	}

	r := lipgloss.NewRenderer(out)
	return palette{
		prompt:  r.NewStyle().Foreground(colorPrimary).Bold(true),
		label:   r.NewStyle().Foreground(colorMuted),
		display: r.NewStyle().Foreground(colorSecondary).Bold(true),
		status:  r.NewStyle().Foreground(colorMuted).Italic(true),
		err:     r.NewStyle().Foreground(colorError),
		notice:  r.NewStyle().Foreground(colorMuted),
	}
}

func (p palette) render(style lipgloss.Style, s string) string {
	if p.plain {
		return s
	}
	return style.Render(s)
}

// StatusLine summarises memory, angle mode and a pending operation of
// the advanced variant. It is empty for the basic variant.
func StatusLine(calc *calculator.Calculator) string {
	if calc.Variant() != calculator.Advanced {
		return ""
	}

	status := fmt.Sprintf("Memory: %s | Mode: %s",
		calculator.FormatNumber(calc.Memory()), calc.AngleMode())
	if operand, op, ok := calc.Pending(); ok {
		status += fmt.Sprintf(" | Pending: %s %s", calculator.FormatNumber(operand), op)
	}
	return status
}

// HistoryLines numbers the history entries, oldest first
func HistoryLines(calc *calculator.Calculator) []string {
	history := calc.History()
	if len(history) == 0 {
		return []string{"No history"}
	}

	lines := make([]string, len(history))
	for i, entry := range history {
		lines[i] = fmt.Sprintf("%3d. %s", i+1, entry)
	}
	return lines
}

// render writes the response to one processed line
func render(w io.Writer, p palette, calc *calculator.Calculator, o Outcome) {
	switch {
	case o.Help:
		for _, line := range strings.Split(strings.TrimRight(HelpText(calc.Variant()), "\n"), "\n") {
			fmt.Fprintln(w, p.render(p.notice, line))
		}
	case o.Invalid:
		fmt.Fprintln(w, p.render(p.err, InvalidInputMessage))
	case o.History:
		fmt.Fprintln(w, p.render(p.label, "History:"))
		for _, line := range HistoryLines(calc) {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "%s %s\n", p.render(p.label, "Display:"), p.render(p.display, calc.Display()))
	if status := StatusLine(calc); status != "" {
		fmt.Fprintln(w, p.render(p.status, status))
	}
	if o.Err != nil {
		fmt.Fprintf(w, "%s\n", p.render(p.err, "Error: "+o.Err.Error()))
	}
}
