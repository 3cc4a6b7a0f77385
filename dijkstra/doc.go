// Package dijkstra implements Dijkstra's shortest-path search over a
// core.ElementMap of Weighted elements.
//
// It is the search engine fed with a light-first priority queue and a
// weigher that sums element weights along the chain. A revisited element is
// dropped when popped, which is the lazy decrease-key strategy: no queued
// entry is ever updated in place.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Each element is accepted at most once.
//   - Each arc pushes at most one tracker.
//   - Space: O(E) for queued trackers.
//
// Notes on implementation choices:
//
//   - Weights live on elements: the weight of an element is the price of
//     stepping onto it, so a chain costs the sum of its elements (the start
//     element included, usually 0).
//   - Negative weights are rejected with ErrNegativeWeight as soon as the
//     offending element is discovered; the map is never pre-scanned because
//     the engine only sees it through Next.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(core.IDs(res.Solution), res.Cost)
package dijkstra
