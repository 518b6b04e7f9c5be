package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-arrays/subarray"
)

// strategies maps --strategy values onto subarray strategies.
var strategies = map[string]subarray.Strategy{
	subarray.Kadane.String():     subarray.Kadane,
	subarray.BruteForce.String(): subarray.BruteForce,
}

func maxSubarrayCmd() *cobra.Command {
	var (
		nums     []int
		floats   []float64
		strategy string
		span     bool
	)

	cmd := &cobra.Command{
		Use:     "max-subarray",
		Aliases: []string{"msa"},
		Short:   "Print the maximum sum of a contiguous run",
		Long: `Print the maximum sum of a contiguous, non-empty run.

Pass integers with --nums or real numbers with --floats (not both).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := strategies[strategy]
			if !ok {
				return fmt.Errorf("--strategy %q: %w", strategy, subarray.ErrBadStrategy)
			}
			opts := &subarray.Options{Strategy: s}

			if cmd.Flags().Changed("floats") {
				logger.Debug("max-subarray",
					zap.Float64s("floats", floats),
					zap.Stringer("strategy", s))
				return printMaxSpan(cmd.OutOrStdout(), floats, opts, span)
			}
			logger.Debug("max-subarray",
				zap.Ints("nums", nums),
				zap.Stringer("strategy", s))
			return printMaxSpan(cmd.OutOrStdout(), nums, opts, span)
		},
	}

	numsFlag(cmd.Flags(), &nums)
	floatsFlag(cmd.Flags(), &floats)
	cmd.MarkFlagsMutuallyExclusive("nums", "floats")
	cmd.Flags().StringVar(&strategy, "strategy", subarray.Kadane.String(), "algorithm: kadane or brute")
	cmd.Flags().BoolVar(&span, "span", false, "also print the winning run and its bounds")

	return cmd
}

// printMaxSpan runs MaxSpan and writes the sum, plus the run when span is set.
func printMaxSpan[T subarray.Number](out io.Writer, nums []T, opts *subarray.Options, span bool) error {
	res, err := subarray.MaxSpan(nums, opts)
	if err != nil {
		return fmt.Errorf("max-subarray: %w", err)
	}

	if span {
		fmt.Fprintf(out, "%s [%d..%d] %v\n",
			color.GreenString("%v", res.Sum), res.Start, res.End, nums[res.Start:res.End+1])
		return nil
	}
	fmt.Fprintln(out, color.GreenString("%v", res.Sum))
	return nil
}
