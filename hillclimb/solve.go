package hillclimb

import (
	"container/heap"
	"context"
	"fmt"
)

// Solve computes the fewest steps from start to End().
//
// It seeds bestCost[start] = 0 and expands nodes in increasing cost order,
// returning as soon as the target is popped. It does not clear earlier
// search state: call Reset between independent searches on the same Graph.
//
// Returns (cost, true) on success and (0, false) if the target is unreachable.
// Panics if start is out of range.
//
// Complexity: O((V + E) log V).
func (g *Graph) Solve(start int) (int, bool) {
	cost, ok, _ := g.search(context.Background(), start, false, nil)
	return cost, ok
}

// SolveContext is Solve with cancellation. A canceled search returns an
// error wrapping both ErrCanceled and ctx.Err().
func (g *Graph) SolveContext(ctx context.Context, start int) (int, bool, error) {
	return g.search(ctx, start, false, nil)
}

// Path returns the node indices from the start of the last successful Solve
// to End(), both inclusive. It returns nil if no such search is on record.
func (g *Graph) Path() []int {
	if g.solvedFrom < 0 {
		return nil
	}
	var path []int
	for cur := g.end; cur >= 0; cur = g.nodes[cur].prev {
		path = append(path, cur)
		if cur == g.solvedFrom {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// search is the shared priority-queue loop.
//
// Forward mode walks outgoing edges from src and stops at g.end.
// Reverse mode walks incoming edges from src and stops at the first node
// for which stop returns true.
func (g *Graph) search(ctx context.Context, src int, reverse bool, stop func(int) bool) (int, bool, error) {
	g.mustIndex(src)
	g.solvedFrom = -1

	// 1) Seed the frontier with the source at cost 0.
	g.nodes[src].bestCost = 0
	pq := make(nodePQ, 0, len(g.nodes))
	heap.Push(&pq, nodeItem{id: src, cost: 0})

	for pq.Len() > 0 {
		// 2) Honor cancellation once per pop.
		if err := ctx.Err(); err != nil {
			return 0, false, fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		// 3) Pop the cheapest frontier entry; skip it if a cheaper push for
		//    the same node was already handled.
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if item.cost > g.nodes[u].bestCost {
			continue
		}

		// 4) A popped cost is final, so the first goal popped ends the search.
		if reverse {
			if stop(u) {
				return item.cost, true, nil
			}
		} else if u == g.end {
			g.solvedFrom = src
			return item.cost, true, nil
		}

		// 5) Relax every edge by one step. Only strict improvements are
		//    pushed, so each push is a genuine decrease.
		next := g.nodes[u].edges
		if reverse {
			next = g.nodes[u].redges
		}
		candidate := item.cost + 1
		for _, v := range next {
			if candidate >= g.nodes[v].bestCost {
				continue
			}
			g.nodes[v].bestCost = candidate
			g.nodes[v].prev = u
			heap.Push(&pq, nodeItem{id: v, cost: candidate})
		}
	}

	// 6) Frontier exhausted: the goal is unreachable.
	return 0, false, nil
}

// nodeItem is a frontier entry: a node and the cost it was pushed with.
type nodeItem struct {
	id   int
	cost int
}

// nodePQ is a min-heap of nodeItem ordered by cost, then by index so that
// equal-cost nodes pop deterministically. Duplicates are allowed
// ("lazy decrease-key"); stale entries are skipped on pop.
type nodePQ []nodeItem

// Len returns the number of entries in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by node index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two entries in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last entry. Called by heap.Pop, which has
// already moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
