// Package main is the advisor command-line tool: trade profit reports and
// one-off stock analysis without running the HTTP service.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/advisor/internal/config"
	"github.com/aristath/advisor/internal/di"
	"github.com/aristath/advisor/pkg/logger"
)

var version = "dev"

// App holds the wired services shared by all subcommands
type App struct {
	Config    *config.Config
	Container *di.Container
	Log       zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &App{}

	var (
		verbose  bool
		seed     int64
		currency string
	)

	rootCmd := &cobra.Command{
		Use:           "advisor",
		Short:         "Stock target prices, recommendations and trade profit reports",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.PredictorSeed = seed
			}
			if cmd.Flags().Changed("currency") {
				cfg.Currency = strings.ToUpper(currency)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			app.Log = logger.New(logger.Config{
				Level:  level,
				Pretty: true,
				Output: cmd.ErrOrStderr(),
			})

			container, _, err := di.Wire(cfg, app.Log)
			if err != nil {
				return fmt.Errorf("failed to wire dependencies: %w", err)
			}
			app.Config = cfg
			app.Container = container
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for the target price predictor (0 = clock)")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "ISO 4217 display currency (defaults to DISPLAY_CURRENCY or USD)")

	rootCmd.AddCommand(newCalculateCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		// Overrides the root hook: printing the version needs no config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advisor %s\n", version)
		},
	}
}
