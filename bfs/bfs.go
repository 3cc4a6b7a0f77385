package bfs

import (
	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// BFS runs breadth-first search over m from m.Start() to m.End().
//
// Chains are weighed by their negated length and served heavy-first, so
// every chain of n elements is expanded before any chain of n+1; equal
// lengths keep discovery order. The returned solution therefore has the
// fewest arcs among all start→end paths.
//
// Returns search.ErrNilMap for a nil map, search.ErrOptionViolation for
// bad options, or any error surfaced by m.Next or a hook.
func BFS[E core.Element](m core.ElementMap[E], opts ...search.Option) (*search.Result[E], error) {
	if m == nil {
		return nil, search.ErrNilMap
	}

	return search.QueueSearch(m, search.NewQueue[E](search.Breadth), search.ByBreadth[E], opts...)
}

// Hops returns the number of arcs of a found solution, or -1.
func Hops[E core.Element](res *search.Result[E]) int {
	if res == nil || !res.Found() {
		return -1
	}

	return len(res.Solution) - 1
}
