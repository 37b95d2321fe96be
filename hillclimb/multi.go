package hillclimb

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ShortestFromAny runs Reset+Solve once per candidate and returns the
// cheapest successful result. On equal cost the earlier candidate wins.
// ok is false when no candidate reaches End(). The graph is left holding the
// state of the last candidate searched.
//
// Complexity: O(k·(V + E) log V) for k candidates.
func (g *Graph) ShortestFromAny(candidates []int) (Result, bool) {
	res, ok, _ := g.ShortestFromAnyContext(context.Background(), candidates)
	return res, ok
}

// ShortestFromAnyContext is ShortestFromAny with cancellation, checked on
// every pop of every candidate search.
func (g *Graph) ShortestFromAnyContext(ctx context.Context, candidates []int) (Result, bool, error) {
	best, found := Result{}, false
	for _, s := range candidates {
		// 1) Forget the previous candidate's costs.
		g.Reset()

		// 2) Search from this candidate; a canceled ctx aborts the whole query.
		cost, ok, err := g.SolveContext(ctx, s)
		if err != nil {
			return Result{}, false, err
		}
		if !ok {
			continue
		}

		// 3) Keep strictly better results only, so earlier candidates win ties.
		if !found || cost < best.Cost {
			best, found = Result{Cost: cost, Start: s}, true
		}
	}

	return best, found, nil
}

// ShortestFromAnyReverse answers the same query as ShortestFromAny with a
// single search: it starts at End(), walks edges backwards and stops at the
// first node whose height satisfies pred. Among equally cheap matches the
// lowest index is returned.
//
// Complexity: O((V + E) log V).
func (g *Graph) ShortestFromAnyReverse(pred func(height int) bool) (Result, bool) {
	res, ok, _ := g.ShortestFromAnyReverseContext(context.Background(), pred)
	return res, ok
}

// ShortestFromAnyReverseContext is ShortestFromAnyReverse with cancellation.
func (g *Graph) ShortestFromAnyReverseContext(ctx context.Context, pred func(height int) bool) (Result, bool, error) {
	g.Reset()
	var hit int
	cost, ok, err := g.search(ctx, g.end, true, func(u int) bool {
		if pred(g.nodes[u].height) {
			hit = u
			return true
		}
		return false
	})
	if err != nil || !ok {
		return Result{}, false, err
	}

	return Result{Cost: cost, Start: hit}, true, nil
}

// ShortestFromAnyParallel is ShortestFromAny spread over at most workers
// goroutines (GOMAXPROCS if workers <= 0). Each goroutine searches its own
// Clone, so g itself is never mutated. Results match ShortestFromAny,
// including the tie-break on candidate order.
func (g *Graph) ShortestFromAnyParallel(ctx context.Context, candidates []int, workers int) (Result, bool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	for _, s := range candidates {
		g.mustIndex(s)
	}

	pool := make(chan *Graph, workers)
	for i := 0; i < workers; i++ {
		pool <- g.Clone()
	}

	type outcome struct {
		cost int
		ok   bool
	}
	outcomes := make([]outcome, len(candidates))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range candidates {
		i, s := i, s
		eg.Go(func() error {
			c := <-pool
			defer func() { pool <- c }()

			c.Reset()
			cost, ok, err := c.SolveContext(egCtx, s)
			if err != nil {
				return err
			}
			outcomes[i] = outcome{cost: cost, ok: ok}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, false, err
	}

	best, found := Result{}, false
	for i, o := range outcomes {
		if o.ok && (!found || o.cost < best.Cost) {
			best, found = Result{Cost: o.cost, Start: candidates[i]}, true
		}
	}

	return best, found, nil
}
