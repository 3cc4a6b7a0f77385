package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// graph is a literal successor table; a uid missing from it is unknown.
type graph map[string][]core.Node

// tableMap is the smallest ElementMap: a fixed table and two endpoints.
// Unlike core.Adjacency it does not require the end to be declared.
type tableMap struct {
	start, end core.Node
	g          graph
}

func (m tableMap) Start() core.Node { return m.start }
func (m tableMap) End() core.Node   { return m.end }

func (m tableMap) Next(uid string) ([]core.Node, error) {
	next, ok := m.g[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownIdentity, uid)
	}
	return next, nil
}

func n(ids ...string) []core.Node {
	out := make([]core.Node, len(ids))
	for i, id := range ids {
		out[i] = core.Node{ID: id}
	}
	return out
}

func from(start string, g graph) tableMap {
	return tableMap{start: core.Node{ID: start}, end: core.Node{ID: "end"}, g: g}
}

var (
	standardMap = from("1", graph{
		"1": n("2", "3"),
		"2": n("4", "5"),
		"3": n("end", "6"), // 6 is never reached
		"4": {},
		"5": {},
	})

	noSolutionMap = from("1", graph{
		"1": n("2", "3"),
		"2": n("4"),
		"3": n("5", "6", "7"),
		"4": {}, "5": {}, "6": {}, "7": {},
	})

	cyclicMap = from("1", graph{
		"1": n("2", "3"),
		"2": n("4", "6"),
		"3": n("5", "end"),
		"4": n("2"),
		"5": n("6"),
		"6": {},
	})

	ringMap = from("1", graph{
		"1": n("2"),
		"2": n("3"),
		"3": n("1"),
	})

	trivialMap = from("end", graph{"end": {}})

	complicatedMap = from("1", graph{
		"1":  n("2", "3"),
		"2":  n("4", "5", "6"),
		"3":  n("7"),
		"4":  n("7"),
		"5":  n("8", "end"),
		"6":  n("9"),
		"7":  {},
		"8":  n("10"),
		"9":  {},
		"10": {},
	})

	// weightedMap is standardMap with entry costs on every node.
	weightedMap = tableMap{
		start: core.Node{ID: "1"},
		end:   core.Node{ID: "end"},
		g: graph{
			"1": {{ID: "2", Cost: 2}, {ID: "3", Cost: 7}},
			"2": {{ID: "4", Cost: 3}, {ID: "5", Cost: 4}},
			"3": {{ID: "end"}, {ID: "6", Cost: 2}},
			"4": {},
			"5": {},
		},
	}
)

// branchIDs flattens Result.Branches to uid slices.
func branchIDs(res *search.Result[core.Node]) [][]string {
	branches := res.Branches()
	out := make([][]string, len(branches))
	for i, b := range branches {
		out[i] = core.IDs(b)
	}
	return out
}
