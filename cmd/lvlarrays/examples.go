package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-arrays/duplicate"
	"github.com/katalvlaran/lvlath-arrays/subarray"
)

// Outcome labels for failing calls in the example battery.
const (
	outcomeNotFound = "not found"
	outcomeEmpty    = "empty input"
)

// errExamplesFailed is returned when at least one example mismatches.
var errExamplesFailed = errors.New("examples: mismatching results")

// exampleCase is one literal call and the outcome it must produce.
type exampleCase struct {
	op   string
	nums []int
	want string
}

// exampleBattery holds the literal inputs each exercise is checked against.
var exampleBattery = []exampleCase{
	{"maxSubArray", []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, "6"},
	{"maxSubArray", []int{1}, "1"},
	{"maxSubArray", []int{5, 4, -1, 7, 8}, "23"},
	{"maxSubArray", []int{-1}, "-1"},
	{"maxSubArray", []int{-2, 1}, "1"},
	{"maxSubArray", []int{-2, -1}, "-1"},
	{"maxSubArray", []int{-1, -2}, "-1"},
	{"maxSubArray", []int{1, 2}, "3"},
	{"maxSubArray", []int{2, 1}, "3"},
	{"maxSubArray", []int{}, outcomeEmpty},
	{"findDuplicate", []int{1, 3, 4, 2, 2}, "2"},
	{"findDuplicate", []int{3, 1, 1, 3}, "1"},
	{"findDuplicate", []int{1, 2, 3}, outcomeNotFound},
}

// run evaluates c and renders its outcome the same way want is written.
func (c exampleCase) run() string {
	var (
		v   int
		err error
	)
	switch c.op {
	case "maxSubArray":
		v, err = subarray.MaxSum(c.nums)
	case "findDuplicate":
		v, err = duplicate.Find(c.nums)
	default:
		return "unknown op " + c.op
	}

	switch {
	case errors.Is(err, duplicate.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, subarray.ErrEmptyInput):
		return outcomeEmpty
	case err != nil:
		return err.Error()
	}
	return strconv.Itoa(v)
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the literal example battery and print a result table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runExamples(cmd, exampleBattery)
			return err
		},
	}
}

// runExamples renders one table row per case and returns the number of
// mismatching rows, with errExamplesFailed when that number is not zero.
func runExamples(cmd *cobra.Command, cases []exampleCase) (int, error) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "Call", "Expected", "Got", ""})

	mismatches := 0
	for i, c := range cases {
		got := c.run()
		status := color.GreenString("ok")
		if got != c.want {
			mismatches++
			status = color.RedString("FAIL")
			logger.Warn("example mismatch",
				zap.String("op", c.op),
				zap.Ints("nums", c.nums),
				zap.String("want", c.want),
				zap.String("got", got))
		}
		t.AppendRow(table.Row{i + 1, fmt.Sprintf("%s(%v)", c.op, c.nums), c.want, got, status})
	}
	t.AppendFooter(table.Row{"", "", "", "mismatches", mismatches})
	t.Render()

	if mismatches > 0 {
		return mismatches, fmt.Errorf("%d of %d: %w", mismatches, len(cases), errExamplesFailed)
	}
	return 0, nil
}
