package hillclimb_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func isLowest(h int) bool { return h == heightmap.MinHeight }

func mustBuild(t *testing.T, input string, opts ...hillclimb.Option) *hillclimb.Graph {
	t.Helper()
	grid, err := heightmap.ParseString(input)
	require.NoError(t, err)
	g, err := hillclimb.Build(grid, opts...)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// Build
// ------------------------------------------------------------------------

// BuildSuite covers validation and edge construction.
type BuildSuite struct {
	suite.Suite
}

// TestNilGrid verifies ErrNilGrid.
func (s *BuildSuite) TestNilGrid() {
	_, err := hillclimb.Build(nil)
	require.ErrorIs(s.T(), err, hillclimb.ErrNilGrid)
}

// TestInconsistentGrid verifies that hand-assembled grids are re-validated.
func (s *BuildSuite) TestInconsistentGrid() {
	grid := &heightmap.Grid{Width: 3, Height: 1, Heights: [][]int{{0, 1}}, Start: 0, End: 1}
	_, err := hillclimb.Build(grid)
	require.ErrorIs(s.T(), err, heightmap.ErrMalformedInput)
	require.ErrorIs(s.T(), err, heightmap.ErrNonRectangular)
}

// TestCliffIsAsymmetric checks that climbing 'a'→'z' is forbidden while
// descending 'z'→'a' is allowed.
func (s *BuildSuite) TestCliffIsAsymmetric() {
	grid, err := heightmap.New([][]int{{0, 25}}, 0, 1)
	require.NoError(s.T(), err)
	g, err := hillclimb.Build(grid)
	require.NoError(s.T(), err)

	require.False(s.T(), g.HasEdge(0, 1), "a must not climb straight to z")
	require.True(s.T(), g.HasEdge(1, 0), "z may descend to a")
	require.Empty(s.T(), g.Edges(0))
	require.Equal(s.T(), []int{0}, g.Edges(1))
}

// TestStepRule checks one-level climbs and arbitrary descents in a 2×2 grid.
func (s *BuildSuite) TestStepRule() {
	// a b
	// d c
	grid, err := heightmap.New([][]int{{0, 1}, {3, 2}}, 0, 3)
	require.NoError(s.T(), err)
	g, err := hillclimb.Build(grid)
	require.NoError(s.T(), err)

	require.ElementsMatch(s.T(), []int{1}, g.Edges(0))    // a→b only
	require.ElementsMatch(s.T(), []int{0, 3}, g.Edges(1)) // b→a, b→c
	require.ElementsMatch(s.T(), []int{1, 2}, g.Edges(3)) // c→b, c→d
	require.ElementsMatch(s.T(), []int{0, 3}, g.Edges(2)) // d→a, d→c
	require.Equal(s.T(), 4, g.Len())
	require.Equal(s.T(), 2, g.Rows())
	require.Equal(s.T(), 2, g.Cols())
}

// TestConn8AddsDiagonals ensures diagonal neighbors appear only under Conn8.
func (s *BuildSuite) TestConn8AddsDiagonals() {
	grid, err := heightmap.New([][]int{{0, 0}, {0, 0}}, 0, 3)
	require.NoError(s.T(), err)

	g4, err := hillclimb.Build(grid)
	require.NoError(s.T(), err)
	require.False(s.T(), g4.HasEdge(0, 3))

	g8, err := hillclimb.Build(grid, hillclimb.WithConnectivity(hillclimb.Conn8))
	require.NoError(s.T(), err)
	require.True(s.T(), g8.HasEdge(0, 3))
	require.Equal(s.T(), hillclimb.Conn8, g8.Options().Connectivity)
}

// TestNegativeStepUpPanics mirrors the option-constructor contract.
func (s *BuildSuite) TestNegativeStepUpPanics() {
	grid, err := heightmap.New([][]int{{0, 1}}, 0, 1)
	require.NoError(s.T(), err)
	require.Panics(s.T(), func() { _, _ = hillclimb.Build(grid, hillclimb.WithMaxStepUp(-1)) })
}

// TestHugeStepUpKeepsDescents checks the largest allowance still permits
// every move, descents included.
func (s *BuildSuite) TestHugeStepUpKeepsDescents() {
	grid, err := heightmap.New([][]int{{25, 0}}, 0, 1)
	require.NoError(s.T(), err)
	g, err := hillclimb.Build(grid, hillclimb.WithMaxStepUp(math.MaxInt))
	require.NoError(s.T(), err)

	require.Equal(s.T(), []int{1}, g.Edges(0))
	require.Equal(s.T(), []int{0}, g.Edges(1))
	cost, ok := g.Solve(0)
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, cost)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// ------------------------------------------------------------------------
// Solve
// ------------------------------------------------------------------------

// SolveSuite runs single-source searches on the sample map.
type SolveSuite struct {
	suite.Suite
	g *hillclimb.Graph
}

func (s *SolveSuite) SetupTest() {
	s.g = mustBuild(s.T(), sample)
}

// TestSample verifies the 31-step answer from S.
func (s *SolveSuite) TestSample() {
	cost, ok := s.g.Solve(s.g.Start())
	require.True(s.T(), ok)
	require.Equal(s.T(), 31, cost)
	require.Equal(s.T(), 31, s.g.BestCost(s.g.End()))
}

// TestPath checks the reconstructed walk is made of real edges.
func (s *SolveSuite) TestPath() {
	require.Nil(s.T(), s.g.Path(), "no path before any search")

	_, ok := s.g.Solve(s.g.Start())
	require.True(s.T(), ok)

	path := s.g.Path()
	require.Len(s.T(), path, 32)
	require.Equal(s.T(), s.g.Start(), path[0])
	require.Equal(s.T(), s.g.End(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.True(s.T(), s.g.HasEdge(path[i-1], path[i]), "step %d: %d→%d", i, path[i-1], path[i])
	}

	s.g.Reset()
	require.Nil(s.T(), s.g.Path())
}

// TestResetDeterminism runs the same search repeatedly with Reset in between.
func (s *SolveSuite) TestResetDeterminism() {
	first, ok := s.g.Solve(s.g.Start())
	require.True(s.T(), ok)

	// Pollute state with a different start before resetting.
	s.g.Reset()
	_, _ = s.g.Solve(32)

	for i := 0; i < 3; i++ {
		s.g.Reset()
		for n := 0; n < s.g.Len(); n++ {
			require.Equal(s.T(), hillclimb.Unknown, s.g.BestCost(n))
		}
		got, ok := s.g.Solve(s.g.Start())
		require.True(s.T(), ok)
		require.Equal(s.T(), first, got)
	}
}

// TestBounds checks Manhattan ≤ cost ≤ rows×cols for every reaching start.
func (s *SolveSuite) TestBounds() {
	grid, err := heightmap.ParseString(sample)
	require.NoError(s.T(), err)

	for start := 0; start < s.g.Len(); start++ {
		s.g.Reset()
		cost, ok := s.g.Solve(start)
		if !ok {
			continue
		}
		require.GreaterOrEqual(s.T(), cost, grid.Manhattan(start, s.g.End()))
		require.LessOrEqual(s.T(), cost, s.g.Rows()*s.g.Cols())
	}
}

// TestOutOfRangePanics treats a bad start index as a caller bug.
func (s *SolveSuite) TestOutOfRangePanics() {
	require.Panics(s.T(), func() { s.g.Solve(-1) })
	require.Panics(s.T(), func() { s.g.Solve(s.g.Len()) })
}

// TestSolveContextCanceled verifies cancellation is reported as an error.
func (s *SolveSuite) TestSolveContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := s.g.SolveContext(ctx, s.g.Start())
	require.False(s.T(), ok)
	require.ErrorIs(s.T(), err, hillclimb.ErrCanceled)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestSolveContext matches Solve when not canceled.
func (s *SolveSuite) TestSolveContext() {
	cost, ok, err := s.g.SolveContext(context.Background(), s.g.Start())
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), 31, cost)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestSolve_SingleCell covers a grid whose start is the target.
func TestSolve_SingleCell(t *testing.T) {
	grid, err := heightmap.New([][]int{{0}}, 0, 0)
	require.NoError(t, err)
	g, err := hillclimb.Build(grid)
	require.NoError(t, err)

	cost, ok := g.Solve(g.Start())
	require.True(t, ok)
	require.Equal(t, 0, cost)
	require.Equal(t, []int{0}, g.Path())
}

// TestSolve_WalledOff covers a target surrounded by unclimbable cells.
func TestSolve_WalledOff(t *testing.T) {
	g := mustBuild(t, "Saz\nzzE\n")

	cost, ok := g.Solve(g.Start())
	require.False(t, ok)
	require.Zero(t, cost)
	require.Nil(t, g.Path())

	_, ok = g.ShortestFromAnyReverse(isLowest)
	require.False(t, ok)
}

// TestSolve_Monotonic raises the step allowance and expects paths never to grow.
func TestSolve_Monotonic(t *testing.T) {
	prev, prevOK := 0, false
	for step := 0; step <= heightmap.MaxHeight; step++ {
		g := mustBuild(t, sample, hillclimb.WithMaxStepUp(step))
		cost, ok := g.Solve(g.Start())
		if prevOK {
			require.True(t, ok, "step %d lost a path found at step %d", step, step-1)
			require.LessOrEqual(t, cost, prev, "step %d", step)
		}
		prev, prevOK = cost, ok
	}
	require.True(t, prevOK)
	require.Equal(t, 7, prev, "unrestricted climbing reaches the Manhattan bound")
}

// TestSolve_Conn8 lets diagonal moves shorten the sample route.
func TestSolve_Conn8(t *testing.T) {
	g := mustBuild(t, sample, hillclimb.WithConnectivity(hillclimb.Conn8))
	cost, ok := g.Solve(g.Start())
	require.True(t, ok)
	require.Equal(t, 27, cost)
}

// ------------------------------------------------------------------------
// Multi-source
// ------------------------------------------------------------------------

// MultiSourceSuite checks every multi-source strategy agrees.
type MultiSourceSuite struct {
	suite.Suite
	g          *hillclimb.Graph
	candidates []int
}

func (s *MultiSourceSuite) SetupTest() {
	s.g = mustBuild(s.T(), sample)
	s.candidates = s.g.CandidateStarts(isLowest)
}

// TestCandidateStarts lists every 'a' cell including S.
func (s *MultiSourceSuite) TestCandidateStarts() {
	require.Equal(s.T(), []int{0, 1, 8, 16, 24, 32}, s.candidates)
}

// TestPerCandidate is the baseline strategy.
func (s *MultiSourceSuite) TestPerCandidate() {
	res, ok := s.g.ShortestFromAny(s.candidates)
	require.True(s.T(), ok)
	require.Equal(s.T(), hillclimb.Result{Cost: 29, Start: 32}, res)
}

// TestReverse agrees with the baseline.
func (s *MultiSourceSuite) TestReverse() {
	res, ok := s.g.ShortestFromAnyReverse(isLowest)
	require.True(s.T(), ok)
	require.Equal(s.T(), hillclimb.Result{Cost: 29, Start: 32}, res)
}

// TestParallel agrees with the baseline for several worker counts and
// leaves the shared graph untouched.
func (s *MultiSourceSuite) TestParallel() {
	for _, workers := range []int{0, 1, 3, 16} {
		res, ok, err := s.g.ShortestFromAnyParallel(context.Background(), s.candidates, workers)
		require.NoError(s.T(), err)
		require.True(s.T(), ok)
		require.Equal(s.T(), hillclimb.Result{Cost: 29, Start: 32}, res, "workers=%d", workers)
	}
	for n := 0; n < s.g.Len(); n++ {
		require.Equal(s.T(), hillclimb.Unknown, s.g.BestCost(n))
	}
}

// TestParallelCanceled propagates cancellation.
func (s *MultiSourceSuite) TestParallelCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := s.g.ShortestFromAnyParallel(ctx, s.candidates, 2)
	require.False(s.T(), ok)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestSequentialCanceled checks the per-candidate and reverse strategies
// honor cancellation.
func (s *MultiSourceSuite) TestSequentialCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := s.g.ShortestFromAnyContext(ctx, s.candidates)
	require.False(s.T(), ok)
	require.ErrorIs(s.T(), err, hillclimb.ErrCanceled)
	require.ErrorIs(s.T(), err, context.Canceled)

	_, ok, err = s.g.ShortestFromAnyReverseContext(ctx, isLowest)
	require.False(s.T(), ok)
	require.ErrorIs(s.T(), err, hillclimb.ErrCanceled)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestContextVariants match the plain calls when not canceled.
func (s *MultiSourceSuite) TestContextVariants() {
	want := hillclimb.Result{Cost: 29, Start: 32}

	res, ok, err := s.g.ShortestFromAnyContext(context.Background(), s.candidates)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), want, res)

	res, ok, err = s.g.ShortestFromAnyReverseContext(context.Background(), isLowest)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), want, res)
}

// TestTieBreak keeps the earliest candidate on equal cost.
func (s *MultiSourceSuite) TestTieBreak() {
	// Candidates 1, 8 and 24 all need 30 steps.
	res, ok := s.g.ShortestFromAny([]int{24, 8, 1})
	require.True(s.T(), ok)
	require.Equal(s.T(), hillclimb.Result{Cost: 30, Start: 24}, res)

	res, ok, err := s.g.ShortestFromAnyParallel(context.Background(), []int{24, 8, 1}, 3)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), hillclimb.Result{Cost: 30, Start: 24}, res)
}

// TestNoCandidates reports not-found without error.
func (s *MultiSourceSuite) TestNoCandidates() {
	_, ok := s.g.ShortestFromAny(nil)
	require.False(s.T(), ok)

	_, ok, err := s.g.ShortestFromAnyParallel(context.Background(), nil, 4)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

// TestClone checks searches on a clone leave the original alone.
func (s *MultiSourceSuite) TestClone() {
	c := s.g.Clone()
	cost, ok := c.Solve(c.Start())
	require.True(s.T(), ok)
	require.Equal(s.T(), 31, cost)
	require.Equal(s.T(), hillclimb.Unknown, s.g.BestCost(s.g.End()))
	require.Nil(s.T(), s.g.Path())
}

func TestMultiSourceSuite(t *testing.T) {
	suite.Run(t, new(MultiSourceSuite))
}
