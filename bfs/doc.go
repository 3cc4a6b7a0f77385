// Package bfs provides breadth-first search over a core.ElementMap,
// expressed as the search engine fed with a heavy-first priority queue and
// a weigher of -len(chain).
//
// What
//
//   - Explore chains in non-decreasing length from the start element.
//   - Stop at the first accepted chain whose leaf is the end element.
//   - Return a search.Result: the solution chain and the pruned frontier.
//
// Why
//
//   - Fewest-arc path between two elements in O(V + E) pops.
//   - Level-by-level exploration of small adjacency oracles.
//
// Determinism
//
//	Equal lengths are served in discovery order, and successors are taken in
//	the order m.Next returns them, so results are fully reproducible.
//
// Usage
//
//	res, err := bfs.BFS(m)
//	if err != nil {
//	    // search.ErrNilMap, search.ErrOptionViolation, core.ErrUnknownIdentity, hook errors
//	}
//	fmt.Println(core.IDs(res.Solution), bfs.Hops(res))
//
// Options are the search package options (WithContext, WithMaxDepth,
// WithLogger and the hooks).
package bfs
