package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is set in PersistentPreRunE from the loggerFunc given to newRootCmd.
var logger = zap.NewNop()

// loggerFunc builds the process logger; verbose selects debug level.
type loggerFunc func(verbose bool) (*zap.Logger, error)

// productionLogger writes JSON logs to stderr at warn level, or debug when verbose.
func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// newRootCmd builds the command tree. newLogger is called once per execution.
func newRootCmd(version string, newLogger loggerFunc) *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "lvlarrays",
		Short: "Pure algorithms over integer sequences",
		Long: `lvlarrays runs the lvlath-arrays algorithms on sequences given as flags.

Sequences are passed as comma separated lists so that negative values are
not mistaken for flags:

  lvlarrays max-subarray --nums=-2,1,-3,4,-1,2,1,-5,4
  lvlarrays find-duplicate --nums=1,3,4,2,2

Run "lvlarrays examples" to check the built-in example battery.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = color.NoColor || noColor

			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		maxSubarrayCmd(),
		findDuplicateCmd(),
		examplesCmd(),
		randomCmd(),
	)

	return cmd
}

// numsFlag registers the shared --nums sequence flag.
func numsFlag(fs *pflag.FlagSet, p *[]int) {
	fs.IntSliceVar(p, "nums", nil, "comma separated integer sequence (e.g. --nums=-2,1,-3)")
}

// floatsFlag registers --floats, the real-valued counterpart of --nums.
func floatsFlag(fs *pflag.FlagSet, p *[]float64) {
	fs.Float64SliceVar(p, "floats", nil, "comma separated real sequence (e.g. --floats=-2.5,1.25)")
}
