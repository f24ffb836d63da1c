package cmd

import (
	"fmt"

	"github.com/jonstaff/OneRepMax/internal/utils"
	"github.com/spf13/cobra"
)

var importFormula string

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import lifts from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := utils.ParseLiftsFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("invalid TOML file: %w", err)
		}

		name := importFormula
		if name == "" {
			name = cfg.Display.Formula
		}
		lifts, err := utils.ToLifts(parsed, name)
		if err != nil {
			return err
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportLifts(cmd.Context(), lifts); err != nil {
			return fmt.Errorf("failed to import lifts: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d lifts\n", len(lifts))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all logged lifts to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "lifts_export.toml"
		if len(args) == 1 {
			path = args[0]
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ExportLiftsToTOML(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("failed to export lifts: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d lifts to %s\n", n, path)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFormula, "formula", "f", "", "Formula for lifts that do not name one (default from config)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
