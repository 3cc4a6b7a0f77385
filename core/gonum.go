package core

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
)

// FromGonum snapshots a gonum directed graph into an Adjacency anchored at
// the nodes start and end. Vertex IDs are the decimal node IDs. Successor
// lists are sorted by node ID because gonum iteration order is unspecified.
//
// Arc costs come from graph.Weighted when g implements it, otherwise every
// arc costs 1.
//
// Complexity: O(V log V + E log d)
func FromGonum(g graph.Directed, start, end int64) (*Adjacency, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil gonum graph", ErrUnknownIdentity)
	}
	wg, weightedGraph := g.(graph.Weighted)

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	b := NewBuilder(WithLoops())
	for _, n := range nodes {
		if err := b.AddVertex(gonumID(n.ID())); err != nil {
			return nil, err
		}
	}
	for _, u := range nodes {
		succ := graph.NodesOf(g.From(u.ID()))
		sort.Slice(succ, func(i, j int) bool { return succ[i].ID() < succ[j].ID() })
		for _, v := range succ {
			cost := 1.0
			if weightedGraph {
				if w, ok := wg.Weight(u.ID(), v.ID()); ok {
					cost = w
				}
			}
			if err := b.AddArc(gonumID(u.ID()), gonumID(v.ID()), cost); err != nil {
				return nil, err
			}
		}
	}

	return b.Map(gonumID(start), gonumID(end))
}

func gonumID(id int64) string { return strconv.FormatInt(id, 10) }
