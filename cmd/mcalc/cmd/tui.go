package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/internal/tui"
	"github.com/msto63/mcalc/pkg/core/logging"
	"github.com/spf13/cobra"
)

var tuiBasic bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive full-screen calculator",
	Long: `Starts the full-screen calculator.

The same commands as in the line mode are typed into the input field.
Every processed line is kept on the tape above it.

Navigation:
  Enter     - Apply input
  Ctrl+L    - Clear tape
  Esc       - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiBasic, "basic", false, "Use the basic variant")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	variant := env.cfg.Variant()
	if tuiBasic {
		variant = calculator.Basic
	}

	// stderr output would corrupt the alternate screen
	logger := logging.Nop()
	if env.hasLogFile() {
		logger = env.logger.With("session_id", uuid.NewString(), "variant", variant.String())
	}

	calc := calculator.New(variant, calculator.WithAngleMode(env.angleMode()))
	p := tea.NewProgram(
		tui.NewModel(calc, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}

	return nil
}
