// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     repl
// Description: Line-oriented calculator session
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/pkg/core/logging"
)

// Default prompts per variant
const (
	BasicPrompt    = "Calculator> "
	AdvancedPrompt = "Scientific> "
)

// Options configures a Session
type Options struct {
	Variant   calculator.Variant
	AngleMode calculator.AngleMode

	// Prompt overrides the variant default
	Prompt string

	// ShowPrompt prints the prompt before each line; off for piped input
	ShowPrompt bool

	// Color enables styled output
	Color bool

	Logger *logging.Logger
}

// Session reads commands line by line and renders the calculator after
// each one. It is single-threaded: Run and Handle must not be called
// concurrently.
type Session struct {
	calc    *calculator.Calculator
	out     io.Writer
	opts    Options
	palette palette
	logger  *logging.Logger
	id      string
}

// NewSession creates a session writing to out
func NewSession(out io.Writer, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = BasicPrompt
		if opts.Variant == calculator.Advanced {
			opts.Prompt = AdvancedPrompt
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	id := uuid.NewString()
	return &Session{
		calc:    calculator.New(opts.Variant, calculator.WithAngleMode(opts.AngleMode)),
		out:     out,
		opts:    opts,
		palette: newPalette(out, opts.Color),
		logger:  logger.With("session_id", id, "variant", opts.Variant.String()),
		id:      id,
	}
}

// Calculator returns the session's calculator
func (s *Session) Calculator() *calculator.Calculator {
	return s.calc
}

// ID returns the session id used in log records
func (s *Session) ID() string {
	return s.id
}

// Run processes lines from in until "exit"/"quit", end of input or ctx
// cancellation. Cancellation is observed between lines only.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.opts.ShowPrompt {
			fmt.Fprintf(s.out, "\n%s", s.palette.render(s.palette.prompt, s.opts.Prompt))
		}

		if !scanner.Scan() {
			if s.opts.ShowPrompt {
				fmt.Fprintln(s.out)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		if !s.Handle(scanner.Text()) {
			return nil
		}
	}
}

// Handle processes one line and writes the response. It returns false
// when the line ends the session.
func (s *Session) Handle(line string) bool {
	o := Step(s.calc, line)
	if o.Quit {
		s.logger.Debug("quit requested", "input", o.Input)
		return false
	}

	switch {
	case o.Invalid:
		s.logger.Debug("invalid input", "input", o.Input)
	case o.Err != nil:
		s.logger.Warn("command failed",
			"input", o.Input,
			"code", calculator.CodeOf(o.Err).String(),
			"error", o.Err.Error())
	default:
		s.logger.Debug("command processed", "input", o.Input, "display", s.calc.Display())
	}

	render(s.out, s.palette, s.calc, o)
	return true
}
