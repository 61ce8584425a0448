// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     calculator
// Description: Command model and line parsing
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Variant selects the calculator flavour
type Variant int

const (
	Basic Variant = iota
	Advanced
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ParseVariant converts a config or flag value to a Variant
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "advanced", "scientific", "sci":
		return Advanced, nil
	default:
		return Basic, fmt.Errorf("unknown calculator variant: %q", s)
	}
}

// AngleMode is the unit used by trigonometric functions
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

// String returns the short label shown in the status line
func (m AngleMode) String() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// ParseAngleMode converts a config value to an AngleMode
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("unknown angle mode: %q", s)
	}
}

// Operator is a binary operator of a pending calculation
type Operator string

const (
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
	OpPow  Operator = "^"
	OpRoot Operator = "root"
)

// AvailableIn reports whether the operator exists in the given variant
func (o Operator) AvailableIn(v Variant) bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	case OpPow, OpRoot:
		return v == Advanced
	default:
		return false
	}
}

// Function is a scientific unary function (advanced only)
type Function string

const (
	FnSin       Function = "sin"
	FnCos       Function = "cos"
	FnTan       Function = "tan"
	FnAsin      Function = "asin"
	FnAcos      Function = "acos"
	FnAtan      Function = "atan"
	FnLn        Function = "ln"
	FnLog       Function = "log"
	FnSqrt      Function = "sqrt"
	FnPercent   Function = "%"
	FnFactorial Function = "!"
)

// Functions lists every scientific function in help order
var Functions = []Function{
	FnSin, FnCos, FnTan, FnAsin, FnAcos, FnAtan,
	FnLn, FnLog, FnSqrt, FnPercent, FnFactorial,
}

func (f Function) valid() bool {
	for _, fn := range Functions {
		if fn == f {
			return true
		}
	}
	return false
}

// MemoryOp is one of the memory register operations
type MemoryOp int

const (
	MemoryStore MemoryOp = iota
	MemoryRecall
	MemoryClear
	MemoryAdd
)

// String returns the command keyword of the memory operation
func (op MemoryOp) String() string {
	switch op {
	case MemoryStore:
		return "ms"
	case MemoryRecall:
		return "mr"
	case MemoryClear:
		return "mc"
	case MemoryAdd:
		return "m+"
	default:
		return "unknown"
	}
}

// Command is one input to the state machine. The set of implementations
// is closed; Calculator.Apply handles each of them.
type Command interface {
	command()
}

// EnterNumber types a numeric literal into the display
type EnterNumber struct {
	Literal string
}

// SelectOperator captures the display as first operand of op
type SelectOperator struct {
	Op Operator
}

// Evaluate completes the pending calculation ("=")
type Evaluate struct{}

// Clear resets display and pending calculation
type Clear struct{}

// Memory runs a memory register operation
type Memory struct {
	Op MemoryOp
}

// ApplyFunction runs a scientific function on the display
type ApplyFunction struct {
	Fn Function
}

// ToggleAngleMode flips between degrees and radians
type ToggleAngleMode struct{}

// ShowHistory queries the history log
type ShowHistory struct{}

// ClearHistory empties the history log
type ClearHistory struct{}

func (EnterNumber) command()     {}
func (SelectOperator) command()  {}
func (Evaluate) command()        {}
func (Clear) command()           {}
func (Memory) command()          {}
func (ApplyFunction) command()   {}
func (ToggleAngleMode) command() {}
func (ShowHistory) command()     {}
func (ClearHistory) command()    {}

// numericLiteral accepts plain decimal literals with optional sign and
// exponent. inf, nan and hex floats are rejected.
var numericLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumericLiteral reports whether s is accepted as number entry
func IsNumericLiteral(s string) bool {
	if !numericLiteral.MatchString(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Parse maps one input line to a command. The line is trimmed; the
// advanced variant matches case-insensitively, the basic variant only
// accepts "C" besides the lower-case keywords. Lines that are no command
// of the variant return ErrInvalidInput.
func Parse(line string, v Variant) (Command, error) {
	input := strings.TrimSpace(line)
	if v == Advanced {
		input = strings.ToLower(input)
	}

	switch input {
	case "=":
		return Evaluate{}, nil
	case "c", "C":
		return Clear{}, nil
	}

	if op := Operator(input); op.AvailableIn(v) {
		return SelectOperator{Op: op}, nil
	}

	if v == Advanced {
		switch input {
		case "ms":
			return Memory{Op: MemoryStore}, nil
		case "mr":
			return Memory{Op: MemoryRecall}, nil
		case "mc":
			return Memory{Op: MemoryClear}, nil
		case "m+":
			return Memory{Op: MemoryAdd}, nil
		case "mode":
			return ToggleAngleMode{}, nil
		case "hist":
			return ShowHistory{}, nil
		case "clrhist":
			return ClearHistory{}, nil
		}
		if fn := Function(input); fn.valid() {
			return ApplyFunction{Fn: fn}, nil
		}
	}

	if IsNumericLiteral(input) {
		return EnterNumber{Literal: input}, nil
	}

	return nil, ErrInvalidInput
}
