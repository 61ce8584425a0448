// Package calculator implements the accumulator state machine behind the
// mcalc console calculator.
//
// Package: calculator
// Title: Accumulator State Machine
// Description: A single Calculator value owns the running display, the
//              pending two-operand calculation, memory, history and the
//              angle mode. Commands are applied one at a time and never
//              perform I/O; front-ends (line session, TUI) render the
//              resulting state.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with basic and advanced variants
//
// Variants:
// - Basic: + - * /, evaluate and clear. Division by zero yields 0.
// - Advanced: adds ^ and root, memory, scientific functions, angle mode
//   and history. Division by zero is reported as an error.
//
// The two division-by-zero behaviours are intentionally kept apart; see
// Calculator.DivideByZeroYieldsZero.
//
// Usage:
//
//	calc := calculator.New(calculator.Advanced)
//	for _, line := range []string{"9", "sqrt", "+", "1", "="} {
//		cmd, err := calculator.Parse(line, calc.Variant())
//		if err != nil {
//			continue
//		}
//		_ = calc.Apply(cmd)
//	}
//	fmt.Println(calc.Display()) // 4
package calculator
