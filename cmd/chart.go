package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonstaff/OneRepMax/internal/chart"
	"github.com/jonstaff/OneRepMax/internal/formula"
	"github.com/spf13/cobra"
)

var (
	chartFormula   string
	chartMaxReps   int
	percentInc     float32
	percentPercent string
)

var chartCmd = &cobra.Command{
	Use:   "chart [one-rm]",
	Short: "Show the predicted rep maxes for a one rep max",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		oneRM, err := parseWeight(args[0])
		if err != nil {
			return err
		}

		name := chartFormula
		if name == "" {
			name = cfg.Display.Formula
		}
		f, err := formula.Lookup(name)
		if err != nil {
			return err
		}

		maxReps := chartMaxReps
		if maxReps <= 0 {
			maxReps = cfg.Display.MaxReps
		}

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "REP MAXES ("+f.Label+")")
		fmt.Fprintf(out, "  %-5s | %-12s | %-6s\n", "Reps", "Weight", "%1RM")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 30))
		for _, row := range chart.RepMaxes(oneRM, maxReps, f.Func) {
			if !formula.IsValid(row.Weight) {
				fmt.Fprintf(out, "  %-5d | %-12s | %-6s\n", row.Reps, "n/a", "")
				continue
			}
			if !formula.IsValid(row.Percent) {
				fmt.Fprintf(out, "  %-5d | %-12s | %-6s\n", row.Reps, formatWeight(row.Weight), "")
				continue
			}
			fmt.Fprintf(out, "  %-5d | %-12s | %5.1f%%\n", row.Reps, formatWeight(row.Weight), row.Percent)
		}
		return nil
	},
}

var percentCmd = &cobra.Command{
	Use:   "percent [one-rm]",
	Short: "Show working weights at percentages of a one rep max",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		oneRM, err := parseWeight(args[0])
		if err != nil {
			return err
		}

		percents, err := parsePercents(percentPercent)
		if err != nil {
			return err
		}

		inc := cfg.Display.Increment
		if cmd.Flags().Changed("increment") {
			inc = percentInc
		}

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "WORKING WEIGHTS")
		for _, p := range chart.Percentages(oneRM, percents, inc) {
			fmt.Fprintf(out, "  %5.1f%%  %s\n", p.Percent, formatWeight(p.Weight))
		}
		return nil
	},
}

func parseWeight(arg string) (float32, error) {
	v, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", arg, err)
	}
	return float32(v), nil
}

// parsePercents reads a comma separated list such as "70,80,90". An empty
// string yields nil, meaning the default percentages.
func parsePercents(s string) ([]float32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []float32
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q: %w", part, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}

func init() {
	chartCmd.Flags().StringVarP(&chartFormula, "formula", "f", "", "Formula to invert (default from config)")
	chartCmd.Flags().IntVarP(&chartMaxReps, "max-reps", "m", 0, "Highest rep count to show (default from config)")

	percentCmd.Flags().Float32VarP(&percentInc, "increment", "i", 0, "Round to this plate increment, 0 disables rounding (default from config)")
	percentCmd.Flags().StringVarP(&percentPercent, "percents", "p", "", "Comma separated percentages, e.g. 70,80,90")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(percentCmd)
}
