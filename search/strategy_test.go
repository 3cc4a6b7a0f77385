package search_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// label is an Element without a weight.
type label string

func (l label) UID() string { return string(l) }

// mixedMap serves any core.Element so weighted and plain values can meet.
type mixedMap struct {
	start core.Element
	g     map[string][]core.Element
}

func (m mixedMap) Start() core.Element { return m.start }
func (m mixedMap) End() core.Element   { return label("end") }

func (m mixedMap) Next(uid string) ([]core.Element, error) {
	next, ok := m.g[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownIdentity, uid)
	}
	return next, nil
}

func TestRun_CheapestUnweighted(t *testing.T) {
	plain := mixedMap{start: label("1"), g: map[string][]core.Element{"1": {label("end")}}}
	_, err := search.Run[core.Element](plain, search.Cheapest)
	assert.ErrorIs(t, err, search.ErrUnweighted)

	// Weighted start, plain successor: caught on expansion.
	mixed := mixedMap{
		start: core.Node{ID: "1"},
		g: map[string][]core.Element{
			"1": {core.Node{ID: "2", Cost: 1}, label("end")},
			"2": {},
		},
	}
	_, err = search.Run[core.Element](mixed, search.Cheapest)
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrUnweighted)
	assert.Contains(t, err.Error(), `"end"`)

	// Breadth does not care about weights.
	res, err := search.Run[core.Element](mixed, search.Breadth)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "end"}, core.IDs(res.Solution))
}

func TestRun_CheapestHeterogeneous(t *testing.T) {
	m := mixedMap{
		start: core.Node{ID: "1"},
		g: map[string][]core.Element{
			"1": {core.Node{ID: "2", Cost: 5}, core.Node{ID: "3", Cost: 1}},
			"2": {core.Node{ID: "end", Cost: 1}},
			"3": {core.Node{ID: "2", Cost: 1}},
		},
	}
	res, err := search.Run[core.Element](m, search.Cheapest)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "2", "end"}, core.IDs(res.Solution))
}
