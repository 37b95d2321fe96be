package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/internal/config"
)

// flags holds command-line overrides; zero values mean "not set".
type flags struct {
	configPath string
	maxStepUp  int
	strategy   string
	workers    int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hillclimb",
		Short:        "Fewest-step routes across an elevation map",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())

	return root
}

func newSolveCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "solve [input file]",
		Short: "Print the route length from S (part 1) and from the best lowest cell (part 2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not read the input file: %w", err)
			}
			defer in.Close()

			return run(cmd.Context(), cfg, in, cmd.OutOrStdout(), logger)
		},
	}
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().IntVar(&f.maxStepUp, "max-step-up", 1, "levels a single step may climb")
	cmd.Flags().StringVar(&f.strategy, "strategy", config.StrategyPerCandidate, "part 2 strategy: per-candidate, reverse or parallel")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "goroutines for the parallel strategy (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")

	return cmd
}

// resolveConfig starts from the file (or defaults) and applies flags the
// user actually set.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	fs := cmd.Flags()
	if fs.Changed("max-step-up") {
		cfg.MaxStepUp = f.maxStepUp
	}
	if fs.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
