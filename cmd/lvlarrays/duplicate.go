package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-arrays/duplicate"
)

func findDuplicateCmd() *cobra.Command {
	var (
		nums  []int
		floyd bool
		all   bool
	)

	cmd := &cobra.Command{
		Use:     "find-duplicate",
		Aliases: []string{"dup"},
		Short:   "Print a value that appears more than once",
		Long: `Print the first value seen twice in a left-to-right scan.

--floyd uses cycle detection instead; it needs every value in [1, len-1]
and may report a different repeat when several values repeat.
--all prints every repeated value in order of its second occurrence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("find-duplicate",
				zap.Ints("nums", nums),
				zap.Bool("floyd", floyd),
				zap.Bool("all", all))

			out := cmd.OutOrStdout()
			if all {
				fmt.Fprintln(out, color.GreenString("%v", duplicate.FindAll(nums)))
				return nil
			}

			var (
				v   int
				err error
			)
			if floyd {
				v, err = duplicate.FindFloyd(nums)
			} else {
				v, err = duplicate.Find(nums)
			}
			if err != nil {
				return fmt.Errorf("find-duplicate: %w", err)
			}
			fmt.Fprintln(out, color.GreenString("%d", v))
			return nil
		},
	}

	numsFlag(cmd.Flags(), &nums)
	cmd.Flags().BoolVar(&floyd, "floyd", false, "use Floyd cycle detection (O(1) memory)")
	cmd.Flags().BoolVar(&all, "all", false, "print every repeated value")
	cmd.MarkFlagsMutuallyExclusive("floyd", "all")

	return cmd
}
