package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rewired-gh/bikeshare/internal/config"
	"github.com/rewired-gh/bikeshare/internal/logger"
	"github.com/rewired-gh/bikeshare/internal/shell"
	"github.com/rewired-gh/bikeshare/internal/storage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip statistics",
	Long: `An interactive tool for exploring bikeshare trip data for Chicago,
New York City, and Washington. It prompts for a city and optional month and
day filters, then prints the most common travel times, popular stations,
trip durations, and user breakdowns.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to an optional configuration file")
}

func main() {
	// .env is optional; it only seeds BIKESHARE_* variables for local runs
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var dsErr *storage.DataSourceError
		if errors.As(err, &dsErr) {
			fmt.Fprintf(os.Stderr, "\nCannot read the %s dataset: %v\n", dsErr.City, dsErr.Err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if configPath != "" {
		logger.Info("Configuration loaded from %s", configPath)
	}
	logger.Debug("Data directory: %s, cities: %d, raw page size: %d",
		cfg.Data.Dir, len(cfg.Cities), cfg.Shell.RawPageSize)

	loader := storage.NewLoader(cfg.Data, cfg.Cities)
	sh := shell.New(os.Stdin, os.Stdout, loader, cfg)

	return sh.Run(ctx)
}
