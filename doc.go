// Package hillclimb finds fewest-step routes across an elevation map where
// each step may climb at most a fixed number of levels and descend any amount.
//
// Under the hood, everything is organized under these packages:
//
//	heightmap/        — parse and validate the letter-coded elevation grid
//	hillclimb/        — directed step graph, min-heap search, multi-source queries
//	internal/config/  — YAML configuration for the CLI
//	cmd/hillclimb/    — the `hillclimb solve` command
//	examples/trail/   — prints a found route drawn on the map
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// needs 31 steps from S to E, and 29 from the best 'a' cell.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
