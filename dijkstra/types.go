package dijkstra

import (
	"math"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// ErrNegativeWeight indicates that an element with a negative (or NaN)
// weight was met. Dijkstra ordering is only meaningful for weights ≥ 0.
// It is core.ErrNegativeWeight, so either sentinel matches with errors.Is.
var ErrNegativeWeight = core.ErrNegativeWeight

// Result is a search.Result plus the total weight of the solution.
type Result[E core.Weighted] struct {
	*search.Result[E]

	// Cost is Σ Weight() over the solution, start included.
	// math.Inf(1) when no path was found.
	Cost float64
}

func newResult[E core.Weighted](res *search.Result[E]) *Result[E] {
	cost := math.Inf(1)
	if res.Found() {
		cost = search.ByCost(res.Solution)
	}

	return &Result[E]{Result: res, Cost: cost}
}
