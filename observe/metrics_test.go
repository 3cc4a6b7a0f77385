package observe

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathq/bfs"
	"github.com/katalvlaran/pathq/builder"
	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/dfs"
	"github.com/katalvlaran/pathq/search"
)

// pingPong is the bidirectional path 0 ⇄ 1 ⇄ 2; BFS from 0 to 2 pops the
// revisit [0 1 0] once.
func pingPong(t *testing.T) *core.Adjacency {
	t.Helper()
	m, err := builder.Build(nil, []builder.BuilderOption{builder.WithBidirectional()}, "0", "2", builder.Path(3))
	require.NoError(t, err)
	return m
}

// deadEnd starts on the last vertex of a path, which has no successors.
func deadEnd(t *testing.T) *core.Adjacency {
	t.Helper()
	m, err := builder.Build(nil, nil, "3", "0", builder.Path(4))
	require.NoError(t, err)
	return m
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	found, err := bfs.BFS(pingPong(t), metrics.Options("breadth")...)
	require.NoError(t, err)
	require.True(t, found.Found())
	assert.Equal(t, search.Stats{Popped: 4, Discarded: 1, Accepted: 3, Enqueued: 4}, found.Stats)

	dry, err := bfs.BFS(deadEnd(t), metrics.Options("breadth")...)
	require.NoError(t, err)
	require.False(t, dry.Found())

	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.enqueued))
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.popped))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.discarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues("breadth", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues("breadth", "exhausted")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.accepted))
}

func TestMetrics_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	_, err := bfs.BFS(pingPong(t), metrics.Options("breadth")...)
	require.NoError(t, err)
	_, err = dfs.DFS(pingPong(t), metrics.Options("depth")...)
	require.NoError(t, err)

	expected := `
# HELP pathq_searches_total Finished searches by strategy and terminal state
# TYPE pathq_searches_total counter
pathq_searches_total{state="found",strategy="breadth"} 1
pathq_searches_total{state="found",strategy="depth"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pathq_searches_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.accepted, "pathq_search_accepted"))
}

func TestMetrics_NoFinishOnError(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	opts := append(metrics.Options("breadth"), search.WithMaxDepth(-1))
	_, err := bfs.BFS(pingPong(t), opts...)
	require.ErrorIs(t, err, search.ErrOptionViolation)

	assert.Equal(t, 0, testutil.CollectAndCount(metrics.searches))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.enqueued))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) })
}
