// Package pathq is a small toolkit for path search over element maps, built
// around one queue-driven loop.
//
// 🚀 What is pathq?
//
//	BFS, DFS and Dijkstra are the same algorithm fed by different queues:
//		• a Path Tracker (the chain walked so far) is popped
//		• its leaf is discarded if already visited, otherwise recorded
//		• every successor extends it into a new tracker that is queued
//	Only the priority a chain receives, and whether heavy or light
//	priorities come out first, decides which classical search you get.
//
// ✨ Why choose pathq?
//
//   - One engine: adapters are thin, the loop is tested once
//   - Generic elements: any type with a UID() string can be searched
//   - Deterministic: equal priorities come out in insertion order
//   - Observable: hooks, log/slog, Prometheus metrics and OTel spans
//
// Under the hood, everything is organized under these subpackages:
//
//	core/    : Element, Weighted, ElementMap; Node and the Adjacency map
//	           (Builder, YAML documents, gonum import)
//	tracker/ : immutable Path Tracker with its composite uid
//	queue/   : FIFO and stable Priority queues keyed by uid
//	search/  : QueueSearch, weighers, Strategy, options and hooks
//	bfs/     : breadth-first adapter
//	dfs/     : depth-first adapter
//	dijkstra/: cheapest-path adapter with weight validation
//	builder/ : deterministic topology constructors (path, grid, tree, ...)
//	observe/ : Prometheus metrics and OpenTelemetry tracing for searches
//
// Quick ASCII example:
//
//	    1 ──▶ 2 ──▶ 4
//	    │     └───▶ 5
//	    └───▶ 3 ──▶ end
//
//	bfs.BFS yields [1 3 end] and the frontier {[1 2 4] [1 2 5] [1 3 end]}.
//
//	go get github.com/katalvlaran/pathq
package pathq
