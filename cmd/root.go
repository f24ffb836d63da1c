package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonstaff/OneRepMax/internal/config"
	"github.com/jonstaff/OneRepMax/internal/logger"
	"github.com/jonstaff/OneRepMax/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath string
	verbose bool

	cfg        *config.Config
	syncLogger func() error
)

var rootCmd = &cobra.Command{
	Use:           "onerepmax",
	Short:         "Estimate one rep maxes and keep a log of your lifts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flush, err := logger.Setup(verbose)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		syncLogger = flush

		cfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.L().Debug("config loaded",
			zap.String("formula", cfg.Display.Formula),
			zap.String("unit", cfg.Display.Unit),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if syncLogger != nil {
			_ = syncLogger()
		}
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func openStorage(cmd *cobra.Command) (*storage.Storage, error) {
	st, err := storage.Open(cmd.Context(), cfg.DB.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return st, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default ~/.config/onerepmax/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
