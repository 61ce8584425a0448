// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     repl
// Description: Maps one input line onto the calculator
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package repl

import (
	"strings"

	"github.com/msto63/mcalc/internal/calculator"
)

// Outcome describes what a single input line did
type Outcome struct {
	// Trimmed input line
	Input string

	// Session control
	Quit bool
	Help bool

	// Input was neither a session keyword nor a calculator command
	Invalid bool

	// History listing was requested and is available via Calculator.History
	History bool

	// Error of the applied command, nil on success
	Err error
}

// Step processes one line. "exit", "quit" and "help" are handled here;
// everything else goes through calculator.Parse. Invalid input leaves the
// calculator untouched.
func Step(calc *calculator.Calculator, line string) Outcome {
	input := strings.TrimSpace(line)
	out := Outcome{Input: input}

	keyword := input
	if calc.Variant() == calculator.Advanced {
		keyword = strings.ToLower(keyword)
	}
	switch keyword {
	case "exit", "quit":
		out.Quit = true
		return out
	case "help":
		out.Help = true
		return out
	}

	cmd, err := calculator.Parse(input, calc.Variant())
	if err != nil {
		out.Invalid = true
		return out
	}

	out.Err = calc.Apply(cmd)
	if _, ok := cmd.(calculator.ShowHistory); ok && out.Err == nil {
		out.History = true
	}
	return out
}
