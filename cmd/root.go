package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geomarket-ma/atmboard/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "atmboard",
	Short: "Geomarketing API for the ATM network dashboard",
	Long:  "Serves the ATM-network dataset for the geomarketing dashboard: proxies the indicator backend when reachable, otherwise rebuilds the dataset locally from the scraped snapshot.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
