package hillclimb

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Node is one grid cell. Edges are fixed at Build; bestCost and prev are
// scratch state of the most recent search.
type Node struct {
	height   int
	bestCost int
	prev     int
	edges    []int // outgoing: cells this node can step to
	redges   []int // incoming: cells that can step to this node
}

// Graph owns every Node of a grid plus the designated start and end.
type Graph struct {
	rows, cols int
	start, end int
	nodes      []Node
	options    Options

	// solvedFrom is the start of the last successful Solve, or -1.
	solvedFrom int
}

// Build constructs the search graph for grid.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. grid must satisfy heightmap invariants (heightmap.ErrMalformedInput).
//
// Complexity: O(V·d) time and memory.
func Build(grid *heightmap.Grid, opts ...Option) (*Graph, error) {
	// 1) Apply options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if grid == nil {
		return nil, ErrNilGrid
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("hillclimb: build: %w", err)
	}

	// 3) One node per cell, all unsearched.
	g := &Graph{
		rows:       grid.Height,
		cols:       grid.Width,
		start:      grid.Start,
		end:        grid.End,
		nodes:      make([]Node, grid.Len()),
		options:    cfg,
		solvedFrom: -1,
	}
	for i := range g.nodes {
		g.nodes[i] = Node{height: grid.HeightAt(i), bestCost: Unknown, prev: -1}
	}

	// 4) Directed edges to every in-bounds neighbor within the climb
	//    allowance, mirrored into the reverse lists.
	offsets := cfg.Connectivity.offsets()
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			u := grid.Index(row, col)
			for _, d := range offsets {
				nr, nc := row+d[0], col+d[1]
				if !grid.InBounds(nr, nc) {
					continue
				}
				v := grid.Index(nr, nc)
				// Compare the climb itself; height+MaxStepUp overflows for huge allowances.
				if g.nodes[v].height-g.nodes[u].height > cfg.MaxStepUp {
					continue
				}
				g.nodes[u].edges = append(g.nodes[u].edges, v)
				g.nodes[v].redges = append(g.nodes[v].redges, u)
			}
		}
	}

	return g, nil
}

// Start returns the designated start index.
func (g *Graph) Start() int { return g.start }

// End returns the target index.
func (g *Graph) End() int { return g.end }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Rows returns the number of grid rows.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Graph) Cols() int { return g.cols }

// Options returns the configuration the graph was built with.
func (g *Graph) Options() Options { return g.options }

// Height returns the elevation of node i.
func (g *Graph) Height(i int) int {
	g.mustIndex(i)
	return g.nodes[i].height
}

// BestCost returns the best known cost of node i in the last search,
// or Unknown if the search never reached it.
func (g *Graph) BestCost(i int) int {
	g.mustIndex(i)
	return g.nodes[i].bestCost
}

// Edges returns a copy of the outgoing neighbor indices of node i.
func (g *Graph) Edges(i int) []int {
	g.mustIndex(i)
	return slices.Clone(g.nodes[i].edges)
}

// HasEdge reports whether one step leads from node from to node to.
func (g *Graph) HasEdge(from, to int) bool {
	g.mustIndex(from)
	return slices.Contains(g.nodes[from].edges, to)
}

// Reset forgets all search state; edges are kept.
// Complexity: O(V).
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].bestCost = Unknown
		g.nodes[i].prev = -1
	}
	g.solvedFrom = -1
}

// CandidateStarts returns, in ascending order, every node whose height
// satisfies pred.
func (g *Graph) CandidateStarts(pred func(height int) bool) []int {
	var out []int
	for i := range g.nodes {
		if pred(g.nodes[i].height) {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns an independent copy with its own search state.
// Edge lists are shared, since they never change after Build.
func (g *Graph) Clone() *Graph {
	c := *g
	c.nodes = make([]Node, len(g.nodes))
	copy(c.nodes, g.nodes)

	return &c
}

// mustIndex panics on an out-of-range node index; that is a caller bug, not bad input.
func (g *Graph) mustIndex(i int) {
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Sprintf("hillclimb: node index %d out of range [0,%d)", i, len(g.nodes)))
	}
}
