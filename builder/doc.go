// Package builder generates deterministic core.Adjacency fixtures for
// tests, examples and benchmarks of the search packages.
//
// Components:
//
//   - Build(copts, bopts, start, end, cons...): run Constructors into a
//     core.Builder and freeze the result. Into(b, bopts, cons...) mixes
//     generated topology into a hand-written builder.
//   - Constructors: Path, Cycle, Star, Complete, Grid, BinaryTree, RandomSparse.
//     Constructors declare vertices idempotently, so several may share IDs.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//     Grid and Star use fixed IDs (GridID, CenterVertexID).
//   - Arc-cost distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformIntWeightFn, ExponentialWeightFn. All are non-negative, so every
//     fixture is a valid Dijkstra input.
//   - Options: WithSeed, WithRand, WithIDScheme, WithWeightFn,
//     WithBidirectional, WithStartCost.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical maps, successor
//     order included.
//   - Option constructors panic on meaningless values; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//
// Example:
//
//	m, err := builder.Build(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformIntWeight(1, 9)},
//	    builder.GridID(0, 0), builder.GridID(9, 9),
//	    builder.Grid(10, 10),
//	)
package builder
