package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mdwerror "github.com/msto63/ratio/foundation/core/error"
	"github.com/msto63/ratio/pkg/core/config"
	"github.com/msto63/ratio/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	separator string
	reduce    bool
	mixed     bool
	output    string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ratio",
	Short: "Exact fractions from integers, decimals, scientific and mixed numbers",
	Long: `ratio turns numeric input into exact fractions and calculates with them.

Accepted input:
  integer     22
  decimal     3.14
  scientific  1.1e-30
  fraction    22/7
  mixed       "3 1/7"

Commands:
  parse    - show how a value is read
  calc     - arithmetic on two values
  reduce   - lowest terms
  factor   - prime factors
  approx   - closest fraction with a given denominator
  solve    - solve value = x/n or value = n/x
  clean    - remove floating point noise
  decimal  - exact decimal expansion`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the command tree and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Code().ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $RATIO_CONFIG or ./configs/ratio.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging and detailed errors")
	rootCmd.PersistentFlags().StringVarP(&separator, "separator", "s", "", "separator between numerator and denominator")
	rootCmd.PersistentFlags().BoolVarP(&reduce, "reduce", "r", false, "keep results in lowest terms")
	rootCmd.PersistentFlags().BoolVarP(&mixed, "mixed", "m", false, "print results as mixed numbers")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text or json")
}

// setup loads the configuration, applies flag overrides and builds the logger
func setup(cmd *cobra.Command) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		cfg.Format.Separator = separator
	}
	if flags.Changed("reduce") {
		cfg.Format.AlwaysReduce = reduce
	}
	if flags.Changed("mixed") {
		cfg.Format.Mixed = mixed
	}
	if flags.Changed("output") {
		cfg.General.Output = output
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := logging.DefaultLoggerConfig("ratio")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(lc)

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", cfgFile),
		zap.String("separator", cfg.Format.Separator),
		zap.Bool("always_reduce", cfg.Format.AlwaysReduce),
		zap.String("output", cfg.General.Output),
	)
	return nil
}

// printError writes err to stderr. High severity errors, such as a broken
// configuration file, always show their details; --verbose adds the root
// cause and the stack frames where the error was created.
func printError(err error) {
	out := rootCmd.ErrOrStderr()

	var e *mdwerror.Error
	if !errors.As(err, &e) || (!verbose && !e.Severity().ShouldAlert()) {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(out, e.String())
	if !verbose {
		return
	}

	if root := e.RootCause(); root != error(e) {
		fmt.Fprintf(out, "Root cause: %v\n", root)
	}
	fmt.Fprintln(out, "Stack:")
	for _, frame := range e.StackTrace() {
		fmt.Fprintf(out, "  %s\n      %s:%d\n", frame.Function, frame.File, frame.Line)
	}
}
