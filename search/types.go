package search

import (
	"errors"
	"sort"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/tracker"
)

// Sentinel errors for search execution.
var (
	// ErrNilMap is returned when a nil ElementMap is passed.
	ErrNilMap = errors.New("search: element map is nil")

	// ErrNilQueue is returned when a nil queue is passed.
	ErrNilQueue = errors.New("search: queue is nil")

	// ErrNilWeigher is returned when a nil weighting function is passed.
	ErrNilWeigher = errors.New("search: weigher is nil")

	// ErrDirtyQueue is returned when the queue already holds entries.
	ErrDirtyQueue = errors.New("search: queue must start empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned for a Strategy outside the enum.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrUnweighted is returned when Cheapest meets an element that does
	// not implement core.Weighted.
	ErrUnweighted = errors.New("search: element is not weighted")

	// ErrBadPriority is returned when a Weigher yields NaN for a chain.
	ErrBadPriority = errors.New("search: weigher returned NaN priority")

	// ErrEngine marks a broken internal invariant (e.g. an empty pop after
	// a non-zero length check). It is a bug, never a caller mistake.
	ErrEngine = errors.New("search: engine invariant violated")
)

// State is the search state machine position.
type State int

const (
	// Running is the state while the queue is being drained.
	Running State = iota
	// Found means the end element was reached.
	Found
	// Exhausted means the queue ran dry without reaching the end.
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats counts what happened during one search.
type Stats struct {
	Popped    int // trackers taken off the queue
	Discarded int // popped trackers whose leaf was already visited
	Accepted  int // popped trackers that were recorded
	Enqueued  int // trackers added to the queue, the root included
}

// Entry is a queue entry: a tracker plus the priority its weigher gave it
// at insertion time. The priority is never stored on the tracker.
type Entry[E core.Element] struct {
	Tracker  *tracker.Tracker[E]
	Priority float64
}

// UID implements queue.Item.
func (e Entry[E]) UID() string { return e.Tracker.UID() }

// Rank implements queue.Ranked.
func (e Entry[E]) Rank() float64 { return e.Priority }

// Weigher maps a chain (root-to-leaf) to its queue priority.
type Weigher[E core.Element] func(chain []E) float64

// Result is the outcome of one search.
//
//   - Solution: the start→end chain, empty when no path exists.
//   - Searches: the surviving leading-edge branches, indexed 0..n-1 in the
//     order they were recorded. No branch is the immediate prefix of another.
type Result[E core.Element] struct {
	Solution []E
	Searches map[int][]E
	State    State
	Stats    Stats
}

// Found reports whether a solution was reached.
func (r *Result[E]) Found() bool { return r.State == Found }

// Branches returns Searches as a slice ordered by index.
func (r *Result[E]) Branches() [][]E {
	keys := make([]int, 0, len(r.Searches))
	for k := range r.Searches {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([][]E, len(keys))
	for i, k := range keys {
		out[i] = r.Searches[k]
	}

	return out
}
