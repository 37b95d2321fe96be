package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
	"github.com/katalvlaran/hillclimb/internal/config"
)

// run parses the map, builds the graph once and prints both answers to out.
// An unreachable target is printed, not returned as an error.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	grid, err := heightmap.Parse(in)
	if err != nil {
		return err
	}
	logger.Debug("parsed elevation map", "rows", grid.Height, "cols", grid.Width)

	g, err := hillclimb.Build(grid, hillclimb.WithMaxStepUp(cfg.MaxStepUp))
	if err != nil {
		return err
	}

	began := time.Now()
	cost, ok, err := g.SolveContext(ctx, g.Start())
	if err != nil {
		return err
	}
	logger.Debug("part 1 searched", "found", ok, "elapsed", time.Since(began))
	printAnswer(out, 1, cost, ok)

	lowest := cfg.LowestHeight()
	pred := func(h int) bool { return h == lowest }

	began = time.Now()
	var res hillclimb.Result
	switch cfg.Strategy {
	case config.StrategyReverse:
		res, ok, err = g.ShortestFromAnyReverseContext(ctx, pred)
	case config.StrategyParallel:
		res, ok, err = g.ShortestFromAnyParallel(ctx, g.CandidateStarts(pred), cfg.Workers)
	default:
		res, ok, err = g.ShortestFromAnyContext(ctx, g.CandidateStarts(pred))
	}
	if err != nil {
		return err
	}
	if ok {
		row, col := grid.Coordinate(res.Start)
		logger.Debug("part 2 searched", "strategy", cfg.Strategy, "row", row, "col", col, "elapsed", time.Since(began))
	} else {
		logger.Warn("no candidate start reaches the target", "strategy", cfg.Strategy)
	}
	printAnswer(out, 2, res.Cost, ok)

	return nil
}

func printAnswer(out io.Writer, part, cost int, ok bool) {
	if !ok {
		fmt.Fprintf(out, "part %d: no path found\n", part)
		return
	}
	fmt.Fprintf(out, "part %d: %d\n", part, cost)
}
