package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vinaykagithapu/portfolio/internal/adapters/env"
)

var version = "dev"

var (
	verbose    bool
	configPath string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve or export the portfolio home page",
	Long: `portfolio renders the personal home page: a hero banner with the
profile photo, title, tagline and navigation, followed by the feature cards.

Use "serve" to run the HTTP server (set PORTFOLIO_DEV=1 for live reload)
and "export" to write the site as static files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", env.ConfigPath(), "path to the site config file")

	rootCmd.AddCommand(serveCmd, exportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
