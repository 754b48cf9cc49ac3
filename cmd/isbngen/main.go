package main

import (
	"fmt"
	"os"

	"github.com/mmrzaf/isbngen/internal/app"
	"github.com/mmrzaf/isbngen/internal/config"
	"github.com/mmrzaf/isbngen/internal/generators"
	"github.com/mmrzaf/isbngen/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "isbngen",
		Short: "Print a random check-digit-valid ISBN-13",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}

			logger := logging.NewLoggerWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()

			svc := app.NewGenerateService(&generators.ISBN13Generator{}, logger)
			value, err := svc.Generate(cfg.Seed)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.SilenceUsage = true

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")

	return cmd
}
