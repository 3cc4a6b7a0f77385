// Package core defines the contracts between the search engine and the
// graphs it explores, plus Adjacency, an immutable in-memory ElementMap.
//
// The engine never sees a graph directly. It asks an ElementMap three
// questions:
//
//   - Start(): the element every path is anchored at.
//   - End()  : the element being searched for.
//   - Next(uid): the ordered successors of uid.
//
// Anything can be an Element as long as it has a stable UID. The Dijkstra
// adapter additionally requires Weighted elements (non-negative Weight).
//
// Adjacency
//
//	Built through a Builder, then frozen with Builder.Map(start, end):
//
//	b := core.NewBuilder()
//	_ = b.AddArc("1", "2", 2)
//	_ = b.AddArc("1", "3", 7)
//	_ = b.AddArc("3", "end", 0)
//	m, err := b.Map("1", "end")
//
//	Arc lists keep insertion order, which is what makes search results
//	reproducible. The cost of an arc is carried by the successor Node, so
//	Dijkstra sums Node costs along a chain. Adjacency is precomputed: there
//	is no lazy state and no lock, so one map can serve concurrent searches.
//
// Builder options:
//
//	– WithMultiArcs()  allow parallel arcs (else ErrDuplicateIdentity).
//	– WithLoops()      allow self-loops (else ErrLoopNotAllowed).
//
// Loaders:
//
//	– DecodeYAML(r)                 declarative Document (gopkg.in/yaml.v3).
//	– FromGonum(g, start, end)      snapshot of a gonum graph.Directed.
//
// Errors:
//
//	ErrEmptyIdentity     – zero-length element ID
//	ErrUnknownIdentity   – unresolvable uid (Next, Map, WithEndpoints)
//	ErrDuplicateIdentity – vertex or arc declared twice
//	ErrLoopNotAllowed    – self-loop when loops are disabled
//	ErrBadDocument       – malformed YAML document
package core
