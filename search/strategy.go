package search

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/queue"
)

// Strategy names one of the built-in weighting disciplines.
type Strategy int

const (
	// Breadth expands shallower chains first (priority -depth, heavy-first).
	Breadth Strategy = iota
	// Depth expands the deepest chain first (priority +depth, heavy-first).
	Depth
	// Cheapest expands the lightest chain first (priority Σ weight, light-first).
	Cheapest
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Breadth:
		return "breadth"
	case Depth:
		return "depth"
	case Cheapest:
		return "cheapest"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Order returns the queue order the strategy's priorities are meant for.
func (s Strategy) Order() queue.Order {
	if s == Cheapest {
		return queue.LightFirst
	}

	return queue.HeavyFirst
}

// ByBreadth weighs a chain by its negated length.
func ByBreadth[E core.Element](chain []E) float64 { return -float64(len(chain)) }

// ByDepth weighs a chain by its length.
func ByDepth[E core.Element](chain []E) float64 { return float64(len(chain)) }

// ByCost weighs a chain by the sum of its element weights.
func ByCost[E core.Weighted](chain []E) float64 {
	var sum float64
	for _, e := range chain {
		sum += e.Weight()
	}

	return sum
}

// NewQueue returns an empty priority queue ordered for s.
func NewQueue[E core.Element](s Strategy) queue.Queue[Entry[E]] {
	return queue.NewPriority[Entry[E]](s.Order())
}

// Run selects the built-in weigher and queue for s and runs QueueSearch.
//
// Cheapest accepts any element type but requires every element it meets to
// implement core.Weighted (else ErrUnweighted) with a weight ≥ 0 (else
// core.ErrNegativeWeight).
func Run[E core.Element](m core.ElementMap[E], s Strategy, opts ...Option) (*Result[E], error) {
	if m == nil {
		return nil, ErrNilMap
	}
	switch s {
	case Breadth:
		return QueueSearch(m, NewQueue[E](s), ByBreadth[E], opts...)
	case Depth:
		return QueueSearch(m, NewQueue[E](s), ByDepth[E], opts...)
	case Cheapest:
		if err := requireWeighted(m.Start()); err != nil {
			return nil, err
		}
		return QueueSearch[E](weightedMap[E]{m}, NewQueue[E](s), byDynamicCost[E], opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// byDynamicCost is ByCost for element types only known to be Weighted at
// run time. weightedMap guarantees the assertion holds.
func byDynamicCost[E core.Element](chain []E) float64 {
	var sum float64
	for _, e := range chain {
		sum += any(e).(core.Weighted).Weight()
	}

	return sum
}

func requireWeighted[E core.Element](e E) error {
	w, ok := any(e).(core.Weighted)
	if !ok {
		return fmt.Errorf("%w: %q (%T)", ErrUnweighted, e.UID(), e)
	}

	return core.CheckWeight(w)
}

// weightedMap rejects successors that are not core.Weighted or whose
// weight is negative or NaN.
type weightedMap[E core.Element] struct {
	core.ElementMap[E]
}

func (w weightedMap[E]) Next(uid string) ([]E, error) {
	next, err := w.ElementMap.Next(uid)
	if err != nil {
		return nil, err
	}
	for _, e := range next {
		if err = requireWeighted(e); err != nil {
			return nil, fmt.Errorf("%w (successor of %q)", err, uid)
		}
	}

	return next, nil
}
