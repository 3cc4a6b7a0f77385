// Package search implements QueueSearch, the single traversal loop behind
// breadth-first, depth-first and Dijkstra search over a core.ElementMap.
//
// What
//
//   - One loop pops Path Trackers from a queue, discards revisits, records
//     leading-edge branches and expands successors.
//   - The queue discipline plus a Weigher (chain → priority) decide the
//     order. Nothing else differs between the classical algorithms:
//
//     Breadth   priority = -len(chain)   heavy-first
//     Depth     priority = +len(chain)   heavy-first
//     Cheapest  priority = Σ Weight()    light-first
//
//   - Returns a Result holding the solution chain (empty when unreachable)
//     and the pruned frontier snapshot.
//
// Termination
//
//	The visited set holds element uids, grows monotonically and is checked
//	when a tracker is popped. Every element is accepted at most once, so a
//	finite graph, cyclic or not, is drained in O(V + E) pops.
//
// Determinism
//
//	Priority queues serve equal priorities in insertion order and successor
//	lists are taken in map order, so the same map always yields the same
//	Result. The frontier snapshot is re-indexed 0..n-1 in recording order.
//
// Usage
//
//	res, err := search.Run(m, search.Breadth)
//
//	// Or drive the loop with a custom discipline:
//	q := queue.NewPriority[search.Entry[core.Node]](queue.LightFirst)
//	res, err := search.QueueSearch(m, q, search.ByCost[core.Node],
//	    search.WithContext(ctx),
//	    search.WithLogger(logger),
//	)
//
// Options
//
//   - WithContext(ctx)      cancellation, checked once per iteration.
//   - WithLogger(l)         debug-level step events via log/slog.
//   - WithMaxDepth(d)       do not expand chains of d elements (d>0).
//   - WithOnEnqueue/WithOnDequeue/WithOnDiscard/WithOnVisit/WithOnFinish
//     hooks; they compose in registration order.
//
// Errors
//
//   - ErrNilMap, ErrNilQueue, ErrNilWeigher, ErrDirtyQueue for bad input.
//   - ErrOptionViolation for invalid options.
//   - ErrBadPriority when a Weigher yields NaN.
//   - ErrUnknownStrategy, ErrUnweighted, core.ErrNegativeWeight from Run.
//   - ElementMap errors (core.ErrUnknownIdentity) wrapped and propagated.
//   - ErrEngine for a broken internal invariant.
package search
