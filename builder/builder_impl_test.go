// Package builder_test contains functional tests for the constructors:
// topology, counts, arc order, costs and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathq/builder"
	"github.com/katalvlaran/pathq/core"
)

// successors returns the successor IDs of id.
func successors(t *testing.T, m *core.Adjacency, id string) []string {
	t.Helper()
	next, err := m.Next(id)
	require.NoError(t, err)
	return core.IDs(next)
}

// TestBuilders_Functional checks vertex/arc counts and a sample of each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		start, end  string
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, m *core.Adjacency)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), start: "0", end: "3",
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, m *core.Adjacency) {
				assert.Equal(t, []string{"1"}, successors(t, m, "0"))
				assert.Empty(t, successors(t, m, "3"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), start: "0", end: "4",
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, m *core.Adjacency) {
				assert.Equal(t, []string{"0"}, successors(t, m, "4"))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), start: builder.CenterVertexID, end: "3",
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, m *core.Adjacency) {
				assert.Equal(t, []string{"1", "2", "3"}, successors(t, m, builder.CenterVertexID))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), start: "0", end: "3",
			wantV: 4, wantE: 12,
			sampleCheck: func(t *testing.T, m *core.Adjacency) {
				assert.Equal(t, []string{"0", "1", "3"}, successors(t, m, "2"))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), start: "0_0", end: "1_2",
			wantV: 6, wantE: 7, // 2 rows × 2 right + 3 cols × 1 down
			sampleCheck: func(t *testing.T, m *core.Adjacency) {
				assert.Equal(t, []string{"0_1", "1_0"}, successors(t, m, "0_0"))
				assert.Equal(t, []string{"1_2"}, successors(t, m, "0_2"))
			},
		},
		{
			name: "BinaryTree(3)", ctor: builder.BinaryTree(3), start: "0", end: "6",
			wantV: 7, wantE: 6,
			sampleCheck: func(t *testing.T, m *core.Adjacency) {
				assert.Equal(t, []string{"1", "2"}, successors(t, m, "0"))
				assert.Equal(t, []string{"5", "6"}, successors(t, m, "2"))
			},
		},
		{
			name: "RandomSparse(4,1)", ctor: builder.RandomSparse(4, 1), start: "0", end: "3",
			wantV: 4, wantE: 12,
		},
		{
			name: "RandomSparse(4,0)", ctor: builder.RandomSparse(4, 0), start: "0", end: "3",
			wantV: 4, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.Build(nil, nil, tc.start, tc.end, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.VertexCount())
			assert.Equal(t, tc.wantE, m.ArcCount())
			for _, id := range m.Vertices() {
				next, err := m.Next(id)
				require.NoError(t, err)
				for _, n := range next {
					assert.Equal(t, builder.DefaultEdgeWeight, n.Cost)
				}
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, m)
			}
		})
	}
}

// TestBuilders_Bidirectional doubles every arc.
func TestBuilders_Bidirectional(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithBidirectional()}

	m, err := builder.Build(nil, opts, "0_0", "2_2", builder.Grid(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 24, m.ArcCount())
	assert.Equal(t, []string{"1_2", "2_1"}, successors(t, m, "2_2"))

	m, err = builder.Build(nil, opts, "0", "2", builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2"}, successors(t, m, "1"))

	m, err = builder.Build(nil, opts, "0", "2", builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 6, m.ArcCount(), "Complete ignores WithBidirectional")
}

// TestBuild_Composition shares IDs across constructors and freezes endpoints.
func TestBuild_Composition(t *testing.T) {
	m, err := builder.Build(nil, []builder.BuilderOption{builder.WithStartCost(2)}, "0", "Center",
		builder.Path(3),
		builder.Star(3),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount()) // 0 1 2 Center
	assert.Equal(t, core.Node{ID: "0", Cost: 2}, m.Start())
	assert.Equal(t, []string{"1", "2"}, successors(t, m, builder.CenterVertexID))

	b := core.NewBuilder()
	require.NoError(t, b.AddArc("x", "0", 0))
	require.NoError(t, builder.Into(b, nil, builder.Path(2)))
	m, err = b.Map("x", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, m.ArcCount())
}

// TestBuild_Errors verifies sentinel propagation through Build.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"Path(1)", []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"Cycle(2)", []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"Star(1)", []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"Complete(0)", []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"Grid(0,3)", []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"BinaryTree(0)", []builder.Constructor{builder.BinaryTree(0)}, builder.ErrTooFewVertices},
		{"BinaryTree(99)", []builder.Constructor{builder.BinaryTree(99)}, builder.ErrConstructFailed},
		{"RandomSparse(0,.5)", []builder.Constructor{builder.RandomSparse(0, 0.5)}, builder.ErrTooFewVertices},
		{"RandomSparse(3,-.1)", []builder.Constructor{builder.RandomSparse(3, -0.1)}, builder.ErrInvalidProbability},
		{"RandomSparse(3,1.1)", []builder.Constructor{builder.RandomSparse(3, 1.1)}, builder.ErrInvalidProbability},
		{"RandomSparse no rng", []builder.Constructor{builder.RandomSparse(3, 0.5)}, builder.ErrNeedRandSource},
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"duplicate arcs", []builder.Constructor{builder.Path(3), builder.Path(3)}, core.ErrDuplicateIdentity},
		{"unknown end", []builder.Constructor{builder.Path(2)}, core.ErrUnknownIdentity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			end := "0"
			if tc.name == "unknown end" {
				end = "missing"
			}
			_, err := builder.Build(nil, nil, "0", end, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, builder.Into(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Into(core.NewBuilder(), nil, nil), builder.ErrConstructFailed)
}

// TestRandomSparse_Deterministic fixes the map for a seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Adjacency {
		m, err := builder.Build(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformIntWeight(1, 9)},
			"0", "29", builder.RandomSparse(30, 0.1))
		require.NoError(t, err)
		return m
	}
	a, b := build(42), build(42)
	assert.Equal(t, a, b)

	for _, id := range a.Vertices() {
		for _, n := range mustNext(t, a, id) {
			assert.NotEqual(t, id, n.ID, "no self-loops")
			assert.GreaterOrEqual(t, n.Cost, 1.0)
			assert.LessOrEqual(t, n.Cost, 9.0)
		}
	}
}

func mustNext(t *testing.T, m *core.Adjacency, id string) []core.Node {
	t.Helper()
	next, err := m.Next(id)
	require.NoError(t, err)
	return next
}
