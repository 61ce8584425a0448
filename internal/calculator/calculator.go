// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculator state and command transitions
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"
	"math"
)

// maxFactorial is the largest n for which n! is exact in a float64
const maxFactorial = 20

// pendingOp is the first operand and operator of a calculation waiting
// for its second operand. Keeping both in one value means they are
// always present or absent together.
type pendingOp struct {
	operand float64
	op      Operator
}

// Calculator holds the complete calculator state. It is not safe for
// concurrent use.
type Calculator struct {
	variant          Variant
	display          string
	pending          *pendingOp
	awaitingNewEntry bool
	memory           float64
	history          []string
	angleMode        AngleMode
	err              error
}

// Option configures a new Calculator
type Option func(*Calculator)

// WithAngleMode sets the initial angle mode
func WithAngleMode(mode AngleMode) Option {
	return func(c *Calculator) {
		c.angleMode = mode
	}
}

// New creates a calculator showing "0"
func New(variant Variant, opts ...Option) *Calculator {
	c := &Calculator{
		variant:          variant,
		display:          "0",
		awaitingNewEntry: true,
		angleMode:        Degrees,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Variant returns the calculator variant
func (c *Calculator) Variant() Variant {
	return c.variant
}

// Display returns the current display text
func (c *Calculator) Display() string {
	return c.display
}

// Memory returns the memory register
func (c *Calculator) Memory() float64 {
	return c.memory
}

// AngleMode returns the current angle mode
func (c *Calculator) AngleMode() AngleMode {
	return c.angleMode
}

// AwaitingNewEntry reports whether the next number replaces the display
func (c *Calculator) AwaitingNewEntry() bool {
	return c.awaitingNewEntry
}

// Pending returns the first operand and operator of an unfinished
// calculation. ok is false when no operator is selected.
func (c *Calculator) Pending() (operand float64, op Operator, ok bool) {
	if c.pending == nil {
		return 0, "", false
	}
	return c.pending.operand, c.pending.op, true
}

// History returns a copy of the completed operations, oldest first
func (c *Calculator) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Err returns the error of the most recent command, nil after a success
func (c *Calculator) Err() error {
	return c.err
}

// DivideByZeroYieldsZero reports how "/" treats a zero divisor. The basic
// variant silently yields 0, the advanced variant reports
// ErrDivisionByZero. Front-ends that merge both variants must not assume
// either behaviour.
func (c *Calculator) DivideByZeroYieldsZero() bool {
	return c.variant == Basic
}

// Apply dispatches cmd to the matching operation
func (c *Calculator) Apply(cmd Command) error {
	switch cmd := cmd.(type) {
	case EnterNumber:
		c.EnterNumber(cmd.Literal)
		return nil
	case SelectOperator:
		return c.SelectOperator(cmd.Op)
	case Evaluate:
		return c.Evaluate()
	case Clear:
		c.Clear()
		return nil
	case Memory:
		return c.memoryOp(cmd.Op)
	case ApplyFunction:
		return c.ApplyFunction(cmd.Fn)
	case ToggleAngleMode:
		return c.ToggleAngleMode()
	case ShowHistory:
		if err := c.requireAdvanced("hist"); err != nil {
			return err
		}
		c.err = nil
		return nil
	case ClearHistory:
		return c.ClearHistory()
	default:
		return c.fail(ErrInvalidInput.withOperation(fmt.Sprintf("%T", cmd)))
	}
}

// EnterNumber replaces the display with literal when a new entry is
// expected, otherwise appends it. The literal is not validated; Parse
// only produces well-formed ones.
func (c *Calculator) EnterNumber(literal string) {
	if c.awaitingNewEntry {
		c.display = literal
		c.awaitingNewEntry = false
	} else {
		c.display += literal
	}
	c.err = nil
}

// SelectOperator stores the display as first operand of op. A display
// that is not a number leaves the state unchanged.
func (c *Calculator) SelectOperator(op Operator) error {
	if !op.AvailableIn(c.variant) {
		return c.fail(ErrUnsupported.withOperation(string(op)))
	}
	value, ok := parseNumber(c.display)
	if !ok {
		return c.fail(ErrInvalidNumber.withOperation(string(op)))
	}

	c.pending = &pendingOp{operand: value, op: op}
	c.awaitingNewEntry = true
	c.err = nil
	return nil
}

// Evaluate completes the pending calculation. Without one the display
// is kept as the result and the next number replaces it. The pending
// calculation is dropped even when it fails.
func (c *Calculator) Evaluate() error {
	if c.pending == nil {
		c.awaitingNewEntry = true
		c.err = nil
		return nil
	}

	p := *c.pending
	c.pending = nil
	c.awaitingNewEntry = true

	second, ok := parseNumber(c.display)
	if !ok {
		return c.fail(ErrInvalidNumber.withOperation("="))
	}

	result, err := c.compute(p.operand, p.op, second)
	if err != nil {
		return c.fail(err)
	}

	if c.variant == Advanced {
		c.history = append(c.history, fmt.Sprintf("%s %s %s = %s",
			FormatNumber(p.operand), p.op, FormatNumber(second), FormatNumber(result)))
	}
	c.display = FormatNumber(result)
	c.err = nil
	return nil
}

func (c *Calculator) compute(first float64, op Operator, second float64) (float64, *Error) {
	switch op {
	case OpAdd:
		return first + second, nil
	case OpSub:
		return first - second, nil
	case OpMul:
		return first * second, nil
	case OpDiv:
		if second == 0 {
			if c.DivideByZeroYieldsZero() {
				return 0, nil
			}
			return 0, ErrDivisionByZero.withOperation(string(op))
		}
		return first / second, nil
	case OpPow:
		return math.Pow(first, second), nil
	case OpRoot:
		if second == 0 {
			return 0, ErrInvalidRoot.withOperation(string(op))
		}
		return math.Pow(first, 1/second), nil
	default:
		return 0, ErrUnsupported.withOperation(string(op))
	}
}

// Clear resets the display to "0" and drops any pending calculation.
// Memory, history and angle mode survive.
func (c *Calculator) Clear() {
	c.display = "0"
	c.pending = nil
	c.awaitingNewEntry = true
	c.err = nil
}

func (c *Calculator) memoryOp(op MemoryOp) error {
	switch op {
	case MemoryStore:
		return c.MemoryStore()
	case MemoryRecall:
		return c.MemoryRecall()
	case MemoryClear:
		return c.MemoryClear()
	case MemoryAdd:
		return c.MemoryAdd()
	default:
		return c.fail(ErrInvalidInput.withOperation(op.String()))
	}
}

// MemoryStore copies the display into memory
func (c *Calculator) MemoryStore() error {
	if err := c.requireAdvanced(MemoryStore.String()); err != nil {
		return err
	}
	value, ok := parseNumber(c.display)
	if !ok {
		return c.fail(ErrInvalidMemoryNumber.withOperation(MemoryStore.String()))
	}
	c.memory = value
	c.err = nil
	return nil
}

// MemoryRecall shows the memory value; the next number replaces it
func (c *Calculator) MemoryRecall() error {
	if err := c.requireAdvanced(MemoryRecall.String()); err != nil {
		return err
	}
	c.display = FormatNumber(c.memory)
	c.awaitingNewEntry = true
	c.err = nil
	return nil
}

// MemoryClear sets memory to zero
func (c *Calculator) MemoryClear() error {
	if err := c.requireAdvanced(MemoryClear.String()); err != nil {
		return err
	}
	c.memory = 0
	c.err = nil
	return nil
}

// MemoryAdd adds the display to memory
func (c *Calculator) MemoryAdd() error {
	if err := c.requireAdvanced(MemoryAdd.String()); err != nil {
		return err
	}
	value, ok := parseNumber(c.display)
	if !ok {
		return c.fail(ErrInvalidMemoryNumber.withOperation(MemoryAdd.String()))
	}
	c.memory += value
	c.err = nil
	return nil
}

// ApplyFunction evaluates fn on the display. The next number replaces the
// display whether or not fn succeeds.
func (c *Calculator) ApplyFunction(fn Function) error {
	if err := c.requireAdvanced(string(fn)); err != nil {
		return err
	}
	if !fn.valid() {
		return c.fail(ErrInvalidInput.withOperation(string(fn)))
	}

	c.awaitingNewEntry = true

	x, ok := parseNumber(c.display)
	if !ok {
		return c.fail(ErrInvalidNumber.withOperation(string(fn)))
	}

	value, err := c.evaluateFunction(fn, x)
	if err != nil {
		return c.fail(err)
	}

	c.history = append(c.history, fmt.Sprintf("%s(%s) = %s", fn, FormatNumber(x), FormatNumber(value)))
	c.display = FormatNumber(value)
	c.err = nil
	return nil
}

func (c *Calculator) evaluateFunction(fn Function, x float64) (float64, *Error) {
	switch fn {
	case FnSin:
		return math.Sin(c.toRadians(x)), nil
	case FnCos:
		return math.Cos(c.toRadians(x)), nil
	case FnTan:
		return math.Tan(c.toRadians(x)), nil
	case FnAsin:
		if x < -1 || x > 1 {
			return 0, domainError(fn, "Invalid input for asin")
		}
		return c.fromRadians(math.Asin(x)), nil
	case FnAcos:
		if x < -1 || x > 1 {
			return 0, domainError(fn, "Invalid input for acos")
		}
		return c.fromRadians(math.Acos(x)), nil
	case FnAtan:
		return c.fromRadians(math.Atan(x)), nil
	case FnLn:
		if x <= 0 {
			return 0, domainError(fn, "Invalid input for ln")
		}
		return math.Log(x), nil
	case FnLog:
		if x <= 0 {
			return 0, domainError(fn, "Invalid input for log")
		}
		return math.Log10(x), nil
	case FnSqrt:
		if x < 0 {
			return 0, domainError(fn, "Cannot calculate square root of negative number")
		}
		return math.Sqrt(x), nil
	case FnPercent:
		return x / 100, nil
	case FnFactorial:
		if x != math.Trunc(x) || x < 0 || x > maxFactorial {
			return 0, domainError(fn, "Factorial only works with positive integers <= 20")
		}
		return factorial(int(x)), nil
	default:
		return 0, ErrInvalidInput.withOperation(string(fn))
	}
}

func domainError(fn Function, message string) *Error {
	return newError(CodeDomain, message).withOperation(string(fn))
}

func factorial(n int) float64 {
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return float64(result)
}

func (c *Calculator) toRadians(x float64) float64 {
	if c.angleMode == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (c *Calculator) fromRadians(x float64) float64 {
	if c.angleMode == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// ToggleAngleMode switches between degrees and radians
func (c *Calculator) ToggleAngleMode() error {
	if err := c.requireAdvanced("mode"); err != nil {
		return err
	}
	if c.angleMode == Degrees {
		c.angleMode = Radians
	} else {
		c.angleMode = Degrees
	}
	c.err = nil
	return nil
}

// ClearHistory empties the history log
func (c *Calculator) ClearHistory() error {
	if err := c.requireAdvanced("clrhist"); err != nil {
		return err
	}
	c.history = nil
	c.err = nil
	return nil
}

func (c *Calculator) requireAdvanced(op string) error {
	if c.variant != Advanced {
		return c.fail(ErrUnsupported.withOperation(op))
	}
	return nil
}

func (c *Calculator) fail(err *Error) error {
	c.err = err
	return err
}
