package dfs

import (
	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// DFS runs depth-first search over m from m.Start() to m.End().
//
// Chains are weighed by their length and served heavy-first, so the most
// recently extended chain is always expanded next, which is a stack. Among
// siblings of equal length the first discovered successor wins.
//
// The solution is a start→end path, not necessarily the shortest.
//
// Returns search.ErrNilMap for a nil map, search.ErrOptionViolation for
// bad options, or any error surfaced by m.Next or a hook.
func DFS[E core.Element](m core.ElementMap[E], opts ...search.Option) (*search.Result[E], error) {
	if m == nil {
		return nil, search.ErrNilMap
	}

	return search.QueueSearch(m, search.NewQueue[E](search.Depth), search.ByDepth[E], opts...)
}
