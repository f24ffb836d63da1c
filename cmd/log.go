package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonstaff/OneRepMax/internal/models"
	"github.com/jonstaff/OneRepMax/internal/storage"
	"github.com/jonstaff/OneRepMax/internal/utils"
	"github.com/spf13/cobra"
)

var (
	logWeight  float32
	logReps    int
	logFormula string
	logNotes   string
	logDay     string
)

var logCmd = &cobra.Command{
	Use:   "log [exercise]",
	Short: "Log a set and store its estimated one rep max",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logReps < 1 {
			return fmt.Errorf("reps must be at least 1")
		}

		lift := models.Lift{
			Exercise: args[0],
			Weight:   logWeight,
			Reps:     logReps,
			Notes:    logNotes,
		}
		if logDay != "" {
			day, err := utils.ParseDay(logDay)
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
			lift.PerformedAt = day
		} else {
			lift.PerformedAt = time.Now().UTC()
		}

		name := logFormula
		if name == "" {
			name = cfg.Display.Formula
		}
		if err := utils.EstimateLift(&lift, name); err != nil {
			return err
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prev, err := st.BestLift(cmd.Context(), lift.Exercise)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to get best lift: %w", err)
		}

		saved, err := st.SaveLift(cmd.Context(), lift)
		if err != nil {
			return fmt.Errorf("Failed to log lift: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Logged %s: %s × %d (%s: %s)\n",
			saved.Exercise, formatWeight(saved.Weight), saved.Reps,
			yellow("Estimated 1RM"), formatWeight(saved.Estimated1RM))
		if prev == nil || saved.Estimated1RM > prev.Estimated1RM {
			fmt.Fprintf(out, "🏆 %s\n", boldGreen("New best estimate for "+saved.Exercise))
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [lift-id]",
	Short: "Delete a logged lift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteLift(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to delete lift: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Deleted lift %s\n", args[0])
		return nil
	},
}

func init() {
	logCmd.Flags().Float32VarP(&logWeight, "weight", "w", 0, "Weight lifted")
	logCmd.Flags().IntVarP(&logReps, "reps", "r", 0, "Number of reps performed")
	logCmd.Flags().StringVarP(&logFormula, "formula", "f", "", "Formula for the estimate (default from config)")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "Notes for this set")
	logCmd.Flags().StringVarP(&logDay, "day", "d", "", "Day the set was performed (YYYY-MM-DD or DD/MM/YY)")
	logCmd.MarkFlagRequired("weight")
	logCmd.MarkFlagRequired("reps")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(deleteCmd)
}
