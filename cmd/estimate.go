package cmd

import (
	"fmt"
	"strconv"

	"github.com/jonstaff/OneRepMax/internal/formula"
	"github.com/spf13/cobra"
)

var (
	estimateFormula string
	estimateAverage bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [weight] [reps]",
	Short: "Estimate a one rep max from a submaximal set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, reps, err := parseSet(args[0], args[1])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s × %g\n", boldGreen("Estimated 1RM for"), formatWeight(weight), reps)

		if estimateFormula != "" {
			f, err := formula.Lookup(estimateFormula)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-20s %s\n", boldCyan(f.Label), formatWeight(f.Func(weight, reps)))
			return nil
		}

		for _, e := range formula.EstimateAll(weight, reps) {
			fmt.Fprintf(out, "  %-20s %s\n", boldCyan(e.Label), formatWeight(e.Value))
		}
		if estimateAverage {
			fmt.Fprintf(out, "  %-20s %s\n", yellow("Average"), formatWeight(formula.Average(weight, reps)))
		}
		return nil
	},
}

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "List the available formulas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, f := range formula.Available() {
			fmt.Fprintf(out, "  %-18s %-20s %s\n", f.Name, boldCyan(f.Label), f.Expression)
		}
		return nil
	},
}

func parseSet(weightArg, repsArg string) (float32, float32, error) {
	weight, err := strconv.ParseFloat(weightArg, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid weight %q: %w", weightArg, err)
	}
	reps, err := strconv.ParseFloat(repsArg, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reps %q: %w", repsArg, err)
	}
	return float32(weight), float32(reps), nil
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFormula, "formula", "f", "", "Only show this formula")
	estimateCmd.Flags().BoolVarP(&estimateAverage, "average", "a", false, "Also show the mean of all finite estimates")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(formulasCmd)
}
