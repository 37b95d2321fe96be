// Package hillclimb defines options, results and sentinel errors for the
// shortest-climb search over an elevation grid.
package hillclimb

import (
	"errors"
	"math"
)

// Unknown is the best-cost value of a node not yet reached by the active search.
const Unknown = math.MaxInt

// Sentinel errors returned by Build and the context-aware searches.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed to Build.
	ErrNilGrid = errors.New("hillclimb: grid is nil")

	// ErrBadMaxStepUp indicates a negative step-up allowance.
	ErrBadMaxStepUp = errors.New("hillclimb: MaxStepUp must be non-negative")

	// ErrCanceled wraps the context error when a search is abandoned.
	ErrCanceled = errors.New("hillclimb: search canceled")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// offsets returns (dRow, dCol) pairs for the connectivity.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Options configures graph construction.
//
// MaxStepUp    – how many levels a single step may climb (descent is unlimited).
// Connectivity – which neighbors are candidates for an edge.
type Options struct {
	MaxStepUp    int
	Connectivity Connectivity
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns MaxStepUp=1 and Conn4.
func DefaultOptions() Options {
	return Options{
		MaxStepUp:    1,
		Connectivity: Conn4,
	}
}

// WithMaxStepUp sets how many elevation levels one step may climb.
// Negative values panic with ErrBadMaxStepUp when the option is applied,
// i.e. inside Build.
func WithMaxStepUp(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxStepUp.Error())
		}
		o.MaxStepUp = n
	}
}

// WithConnectivity selects Conn4 or Conn8 neighborhoods.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = c
	}
}

// Result is the outcome of a multi-source query: the cheapest cost and the
// candidate start that achieved it.
type Result struct {
	Cost  int
	Start int
}
