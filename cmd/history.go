package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonstaff/OneRepMax/internal/models"
	"github.com/jonstaff/OneRepMax/internal/storage"
	"github.com/jonstaff/OneRepMax/internal/utils"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyDay   string
)

// historyCmd lists logged lifts, newest first.
var historyCmd = &cobra.Command{
	Use:   "history [exercise]",
	Short: "Display logged lifts, optionally filtered by exercise and/or day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var exercise string
		if len(args) == 1 {
			exercise = args[0]
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit := historyLimit
		if historyDay != "" {
			// The day filter runs after the query.
			limit = 0
		}
		lifts, err := st.ListLifts(cmd.Context(), exercise, limit)
		if err != nil {
			return fmt.Errorf("failed to retrieve lifts: %w", err)
		}

		if historyDay != "" {
			day, err := utils.ParseDay(historyDay)
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
			var filtered []models.Lift
			for _, l := range lifts {
				if l.PerformedAt.Local().Format("2006-01-02") == day.Format("2006-01-02") {
					filtered = append(filtered, l)
				}
			}
			lifts = filtered
			if historyLimit > 0 && len(lifts) > historyLimit {
				lifts = lifts[:historyLimit]
			}
		}

		out := cmd.OutOrStdout()
		if len(lifts) == 0 {
			if exercise != "" {
				if err := requireExercise(cmd, st, exercise); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, magenta("No lifts found."))
			return nil
		}

		fmt.Fprintf(out, "%-16s | %-16s | %-10s | %-4s | %-10s | %-10s | %s\n",
			"Date", "Exercise", "Weight", "Reps", "Est. 1RM", "Formula", "ID")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, l := range lifts {
			fmt.Fprintf(out, "%-16s | %-16s | %-10s | %-4d | %-10s | %-10s | %s\n",
				utils.FormatLocal(l.PerformedAt), l.Exercise, formatWeight(l.Weight), l.Reps,
				formatWeight(l.Estimated1RM), l.Formula, l.ID)
			if l.Notes != "" {
				fmt.Fprintf(out, "    %s: %s\n", magenta("Notes"), l.Notes)
			}
		}
		return nil
	},
}

var bestCmd = &cobra.Command{
	Use:   "best [exercise]",
	Short: "Show the best estimated one rep max per exercise",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var exercises []string
		if len(args) == 1 {
			if err := requireExercise(cmd, st, args[0]); err != nil {
				return err
			}
			exercises = args
		} else {
			exercises, err = st.Exercises(cmd.Context())
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if len(exercises) == 0 {
			fmt.Fprintln(out, magenta("No lifts found."))
			return nil
		}

		printBoxedHeader(out, "BEST ESTIMATES")
		for _, ex := range exercises {
			best, err := st.BestLift(cmd.Context(), ex)
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Fprintf(out, "  %s: %s\n", boldCyan(ex), red("no lifts logged"))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to get best lift: %w", err)
			}
			fmt.Fprintf(out, "  %s: %s (%s × %d, %s, %s)\n",
				boldCyan(best.Exercise), formatWeight(best.Estimated1RM),
				formatWeight(best.Weight), best.Reps, best.Formula, utils.FormatLocal(best.PerformedAt))
		}
		return nil
	},
}

// requireExercise fails when no lift has ever been logged for name.
func requireExercise(cmd *cobra.Command, st *storage.Storage, name string) error {
	exists, err := st.ExerciseExists(cmd.Context(), name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("unknown exercise %q", name)
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of lifts to display, 0 for all")
	historyCmd.Flags().StringVarP(&historyDay, "day", "d", "", "Only show lifts from this day (YYYY-MM-DD or DD/MM/YY)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bestCmd)
}
