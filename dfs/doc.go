// Package dfs provides depth-first search over a core.ElementMap,
// expressed as the search engine fed with a heavy-first priority queue and
// a weigher of +len(chain).
//
// Key features:
//   - DFS(m, opts...): dive along the first successor until a dead end or
//     an already visited element, then back off to the next deepest chain.
//   - Cycle safe: revisited elements are dropped when popped.
//   - Hooks, depth limit and cancellation via search options.
//
// Complexity:
//
//   - Time:   O(V + E) pops, O(log n) per queue operation.
//   - Memory: O(E) queued trackers in the worst case.
//
// Errors:
//
//   - search.ErrNilMap          if m is nil.
//   - search.ErrOptionViolation for an invalid option.
//   - context.Canceled          if ctx is done.
//   - any error from m.Next or OnVisit, wrapped.
package dfs
