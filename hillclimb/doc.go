// Package hillclimb finds the fewest steps needed to walk across an
// elevation grid from a start cell to a target cell.
//
// Overview:
//
//   - Build turns a *heightmap.Grid into a directed graph. Every cell is a
//     node addressed by its row-major index; an edge u→v exists to each
//     in-bounds neighbor v with height(u) + MaxStepUp ≥ height(v). Climbing is
//     limited, descending is not, so edges are asymmetric.
//   - Solve runs a min-heap driven shortest-path search (unit weights) from a
//     start node and stops as soon as the target is popped.
//   - Reset clears per-node best costs so the same graph can be searched again.
//   - ShortestFromAny, ShortestFromAnyReverse and ShortestFromAnyParallel
//     answer "cheapest walk from any candidate start".
//
// Complexity:
//
//   - Build: O(V·d) time and memory, d = 4 or 8.
//   - Solve: O((V + E) log V) time, O(V + E) heap entries worst case.
//   - ShortestFromAny: k·Solve for k candidates.
//   - ShortestFromAnyReverse: one Solve.
//
// Concurrency:
//
//   - A Graph carries mutable search state and must not be searched from two
//     goroutines at once. Clone gives each goroutine its own scratch state;
//     ShortestFromAnyParallel does exactly that.
//
// Unreachable targets are reported as ok == false, never as an error.
package hillclimb
