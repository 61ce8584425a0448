// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     tui
// Description: Full-screen bubbletea front-end for the calculator
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/internal/repl"
	"github.com/msto63/mcalc/pkg/core/logging"
)

// chromeHeight is the number of rows used outside the tape viewport
const chromeHeight = 13

// tapeEntry is one processed line shown on the tape
type tapeEntry struct {
	input  string
	result string
	failed bool
}

// Model is the TUI model. The calculator is only touched from Update,
// which bubbletea calls sequentially.
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input textinput.Model
	tape  viewport.Model

	calc    *calculator.Calculator
	entries []tapeEntry
	lastErr error // error of the last submitted line only
	logger  *logging.Logger
}

// NewModel creates a TUI model around calc
func NewModel(calc *calculator.Calculator, logger *logging.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Number, operator or command..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	if logger == nil {
		logger = logging.Nop()
	}

	return Model{
		input:  ti,
		calc:   calc,
		logger: logger,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+l":
			// Clear tape
			m.entries = nil
			m.updateTape()
			return m, nil

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			if quit := m.submit(line); quit {
				m.quitting = true
				return m, tea.Quit
			}
			m.updateTape()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		tapeHeight := max(3, msg.Height-chromeHeight)
		if !m.ready {
			m.tape = viewport.New(msg.Width, tapeHeight)
			m.ready = true
		} else {
			m.tape.Width = msg.Width
			m.tape.Height = tapeHeight
		}
		m.input.Width = max(10, msg.Width-8)
		m.updateTape()
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.tape, cmd = m.tape.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs one line against the calculator and records it on the
// tape. It returns true when the line ends the program.
func (m *Model) submit(line string) bool {
	o := repl.Step(m.calc, line)
	m.lastErr = o.Err

	entry := tapeEntry{input: o.Input}
	switch {
	case o.Quit:
		m.logger.Debug("quit requested", "input", o.Input)
		return true
	case o.Help:
		entry.result = strings.TrimRight(repl.HelpText(m.calc.Variant()), "\n")
	case o.Invalid:
		m.logger.Debug("invalid input", "input", o.Input)
		entry.result = repl.InvalidInputMessage
		entry.failed = true
	case o.Err != nil:
		m.logger.Warn("command failed",
			"input", o.Input,
			"code", calculator.CodeOf(o.Err).String(),
			"error", o.Err.Error())
		entry.result = "Error: " + o.Err.Error()
		entry.failed = true
	case o.History:
		entry.result = strings.Join(repl.HistoryLines(m.calc), "\n")
	default:
		m.logger.Debug("command processed", "input", o.Input, "display", m.calc.Display())
		entry.result = m.calc.Display()
	}

	m.entries = append(m.entries, entry)
	return false
}

func (m *Model) updateTape() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(TapeInputStyle.Render(e.input))
		content.WriteString("\n")
		for _, line := range strings.Split(e.result, "\n") {
			if e.failed {
				content.WriteString("  " + ErrorMessageStyle.Render(line))
			} else {
				content.WriteString("  " + TapeResultStyle.Render(line))
			}
			content.WriteString("\n")
		}
	}

	m.tape.SetContent(content.String())
	m.tape.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	// Header
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	// Display
	s.WriteString(m.renderDisplay())
	s.WriteString("\n")

	// Tape
	s.WriteString(m.tape.View())
	s.WriteString("\n")

	// Input
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")

	// Footer
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	title := TitleStyle.Render("mcalc")
	variant := "Basic"
	if m.calc.Variant() == calculator.Advanced {
		variant = "Scientific"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", SubtitleStyle.Render(variant))
}

func (m *Model) renderDisplay() string {
	width := max(10, m.width-4)

	var s strings.Builder
	s.WriteString(DisplayBoxStyle.Render(DisplayStyle.Width(width).Render(m.calc.Display())))
	s.WriteString("\n")

	if status := repl.StatusLine(m.calc); status != "" {
		s.WriteString(StatusStyle.Render(status))
	}
	s.WriteString("\n")

	if m.lastErr != nil {
		s.WriteString(RenderError(m.lastErr.Error()))
	}

	return s.String()
}

func (m *Model) renderFooter() string {
	help := "Enter: Apply • Ctrl+L: Clear tape • Esc: Quit"
	info := fmt.Sprintf("%d entries", len(m.entries))

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-len(help)-len(info)-4)),
			info,
		),
	)
}
