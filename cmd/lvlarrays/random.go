package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-arrays/sequence"
)

// Fixture kinds accepted by --kind.
const (
	kindUniform     = "uniform"
	kindNegative    = "negative"
	kindPermutation = "permutation"
	kindDuplicate   = "duplicate"
)

func randomCmd() *cobra.Command {
	var (
		kind   string
		n      int
		seed   int64
		lo, hi int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a deterministic fixture sequence usable as --nums",
		Long: `Print a generated sequence as a comma separated list.

Kinds:
  uniform      n values in [lo, hi]
  negative     n values in [lo, -1]
  permutation  1..n shuffled, no repeats
  duplicate    1..n shuffled plus one repeated value (length n+1)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lo > hi {
				return fmt.Errorf("random: --lo %d > --hi %d: %w", lo, hi, sequence.ErrBadRange)
			}
			opts := []sequence.Option{sequence.WithSeed(seed), sequence.WithRange(lo, hi)}

			var (
				seq []int
				err error
			)
			switch kind {
			case kindUniform:
				seq, err = sequence.Uniform(n, opts...)
			case kindNegative:
				seq, err = sequence.Negative(n, opts...)
			case kindPermutation:
				seq, err = sequence.Permutation(n, opts...)
			case kindDuplicate:
				var dup int
				seq, dup, err = sequence.OneDuplicate(n, opts...)
				logger.Debug("generated duplicate fixture", zap.Int("dup", dup))
			default:
				return fmt.Errorf("random: unknown --kind %q", kind)
			}
			if err != nil {
				return fmt.Errorf("random: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), joinInts(seq))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindUniform, "uniform, negative, permutation or duplicate")
	cmd.Flags().IntVar(&n, "n", 10, "number of values (duplicate: distinct values)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().IntVar(&lo, "lo", -100, "inclusive lower bound")
	cmd.Flags().IntVar(&hi, "hi", 100, "inclusive upper bound")

	return cmd
}

// joinInts renders seq in the format IntSlice flags parse.
func joinInts(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
