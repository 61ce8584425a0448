package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/pkg/core/config"
	"github.com/msto63/mcalc/pkg/core/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	radians bool
)

var rootCmd = &cobra.Command{
	Use:   "mcalc",
	Short: "mcalc - console calculator",
	Long: `mcalc is a line-oriented console calculator.

Variants:
  basic     - + - * / with a running display
  advanced  - adds ^, root, memory, scientific functions and history

Without a subcommand the variant from the config file is started
(default: advanced).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		return runSession(cmd, env, env.cfg.Variant())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./configs/mcalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&radians, "radians", false, "Start in radian mode")
}

// environment bundles what every command needs from config and flags
type environment struct {
	fs     afero.Fs
	cfg    *config.Config
	logger *logging.Logger
	closer func() error
}

func setup() (*environment, error) {
	fs := afero.NewOsFs()

	cfg, err := config.Discover(fs, cfgFile)
	if err != nil {
		return nil, err
	}

	env := &environment{
		fs:     fs,
		cfg:    cfg,
		closer: func() error { return nil },
	}

	logCfg := cfg.LoggerConfig("mcalc")
	if verbose {
		logCfg.Level = "debug"
	}
	if cfg.General.LogFile != "" {
		f, err := fs.OpenFile(cfg.General.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logCfg.Output = f
		env.closer = f.Close
	}
	env.logger = logging.NewLogger(logCfg)

	if cfg.Source() != "" {
		env.logger.Debug("config loaded", "path", cfg.Source())
	}
	return env, nil
}

func (e *environment) close() {
	if err := e.closer(); err != nil {
		printError("failed to close log file", err)
	}
}

func (e *environment) angleMode() calculator.AngleMode {
	if radians {
		return calculator.Radians
	}
	return e.cfg.AngleMode()
}

// hasLogFile reports whether log records go to a file instead of stderr
func (e *environment) hasLogFile() bool {
	return e.cfg.General.LogFile != ""
}

func (e *environment) colorEnabled(out *os.File) bool {
	return e.cfg.ColorEnabled() && !noColor && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
