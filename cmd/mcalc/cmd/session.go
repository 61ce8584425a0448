package cmd

import (
	"context"
	"os"

	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/internal/repl"
	"github.com/spf13/cobra"
)

var basicCmd = &cobra.Command{
	Use:   "basic",
	Short: "Starts the basic calculator",
	Long: `Starts the basic calculator.

Enter one number, operator (+ - * /) or command per line:
  =          - Calculate result
  c          - Clear calculator
  help       - Show commands
  exit/quit  - Exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		return runSession(cmd, env, calculator.Basic)
	},
}

var advancedCmd = &cobra.Command{
	Use:     "advanced",
	Aliases: []string{"sci", "scientific"},
	Short:   "Starts the scientific calculator",
	Long: `Starts the scientific calculator.

In addition to the basic commands:
  ^ root                         - Power and n-th root
  sin cos tan asin acos atan     - Trigonometry (see mode)
  ln log sqrt % !                - Functions on the display
  ms mr mc m+                    - Memory
  mode                           - Toggle degrees/radians
  hist clrhist                   - Show/clear history

Input is case-insensitive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		return runSession(cmd, env, calculator.Advanced)
	},
}

func init() {
	rootCmd.AddCommand(basicCmd)
	rootCmd.AddCommand(advancedCmd)
}

func runSession(cmd *cobra.Command, env *environment, variant calculator.Variant) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	session := repl.NewSession(cmd.OutOrStdout(), repl.Options{
		Variant:    variant,
		AngleMode:  env.angleMode(),
		Prompt:     env.cfg.UI.Prompt,
		ShowPrompt: isTerminal(os.Stdin) && cmd.InOrStdin() == os.Stdin,
		Color:      env.colorEnabled(os.Stdout) && cmd.OutOrStdout() == os.Stdout,
		Logger:     env.logger,
	})

	return session.Run(ctx, cmd.InOrStdin())
}
