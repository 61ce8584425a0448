package repl

import (
	"strings"

	"github.com/msto63/mcalc/internal/calculator"
)

// InvalidInputMessage is printed for lines that are no command
const InvalidInputMessage = "Invalid input. Type 'help' for commands."

// HelpText returns the command reference of a variant
func HelpText(v calculator.Variant) string {
	var s strings.Builder

	if v == calculator.Advanced {
		s.WriteString("Scientific Calculator Commands:\n")
		s.WriteString("  Numbers: Enter any number\n")
		s.WriteString("  Operations: +, -, *, /, ^, root\n")
		s.WriteString("  Functions: sin, cos, tan, asin, acos, atan, ln, log, sqrt, %, !\n")
		s.WriteString("  Memory:\n")
		s.WriteString("    ms : Store display in memory\n")
		s.WriteString("    mr : Recall memory\n")
		s.WriteString("    mc : Clear memory\n")
		s.WriteString("    m+ : Add display to memory\n")
		s.WriteString("  Commands:\n")
		s.WriteString("    = : Calculate result\n")
		s.WriteString("    c : Clear calculator\n")
		s.WriteString("    mode : Toggle degrees/radians\n")
		s.WriteString("    hist : Show history\n")
		s.WriteString("    clrhist : Clear history\n")
	} else {
		s.WriteString("Calculator Commands:\n")
		s.WriteString("  Numbers: Enter any number\n")
		s.WriteString("  Operations: +, -, *, /\n")
		s.WriteString("  Commands:\n")
		s.WriteString("    = : Calculate result\n")
		s.WriteString("    c : Clear calculator\n")
	}
	s.WriteString("    help : Show this help\n")
	s.WriteString("    exit/quit : Exit calculator\n")

	return s.String()
}
