package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// Dijkstra finds the lightest start→end chain in m, where the weight of a
// chain is the sum of its element weights.
//
// Chains are weighed by that sum and served light-first, so when the end
// element is first accepted no cheaper chain to it can remain queued.
// Equal sums keep discovery order.
//
// Preconditions (checked in order):
//  1. m must be non-nil (search.ErrNilMap).
//  2. m.Start() weight must be ≥ 0 (ErrNegativeWeight).
//  3. every element returned by m.Next must weigh ≥ 0 (ErrNegativeWeight,
//     detected when the element is discovered).
//
// Complexity:
//
//   - Time:  O((V + E) log E) queue operations.
//   - Space: O(E) queued trackers in the worst case (lazy revisit discard).
func Dijkstra[E core.Weighted](m core.ElementMap[E], opts ...search.Option) (*Result[E], error) {
	if m == nil {
		return nil, search.ErrNilMap
	}
	if err := core.CheckWeight(m.Start()); err != nil {
		return nil, err
	}

	res, err := search.QueueSearch[E](guarded[E]{m}, search.NewQueue[E](search.Cheapest), search.ByCost[E], opts...)
	if err != nil {
		return nil, err
	}

	return newResult(res), nil
}

// guarded fails fast on negative weights as successors are discovered.
type guarded[E core.Weighted] struct {
	core.ElementMap[E]
}

func (g guarded[E]) Next(uid string) ([]E, error) {
	next, err := g.ElementMap.Next(uid)
	if err != nil {
		return nil, err
	}
	for _, e := range next {
		if err = core.CheckWeight(e); err != nil {
			return nil, fmt.Errorf("%w (successor of %q)", err, uid)
		}
	}

	return next, nil
}
