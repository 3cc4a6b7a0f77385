package core

import (
	"fmt"
)

// BuilderOption configures a Builder before any vertex is declared.
type BuilderOption func(b *Builder)

// WithMultiArcs permits parallel arcs between the same ordered pair of vertices.
func WithMultiArcs() BuilderOption {
	return func(b *Builder) { b.allowMulti = true }
}

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() BuilderOption {
	return func(b *Builder) { b.allowLoops = true }
}

// MapOption configures the Adjacency produced by Builder.Map.
type MapOption func(a *Adjacency)

// WithStartCost sets the cost carried by the start element. Default 0.
func WithStartCost(cost float64) MapOption {
	return func(a *Adjacency) { a.start.Cost = cost }
}

// Builder accumulates vertices and directed arcs and freezes them into an
// immutable Adjacency. A Builder is not safe for concurrent use; the
// Adjacency it produces is.
type Builder struct {
	allowMulti bool
	allowLoops bool

	order []string          // vertex IDs in declaration order
	arcs  map[string][]Node // from → successors, insertion ordered
	pairs map[[2]string]int // (from,to) → arc count, for duplicate detection
}

// NewBuilder creates an empty Builder. By default parallel arcs and
// self-loops are rejected.
//
// Complexity: O(1)
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		arcs:  make(map[string][]Node),
		pairs: make(map[[2]string]int),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddVertex declares id. Declaring the same id twice fails with
// ErrDuplicateIdentity; an empty id with ErrEmptyIdentity and an id holding
// UIDSeparator with ErrReservedIdentity.
//
// Complexity: O(1)
func (b *Builder) AddVertex(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := b.arcs[id]; ok {
		return fmt.Errorf("%w: vertex %q", ErrDuplicateIdentity, id)
	}
	b.declare(id)

	return nil
}

// HasVertex reports whether id has been declared, explicitly or through AddArc.
func (b *Builder) HasVertex(id string) bool {
	_, ok := b.arcs[id]

	return ok
}

// AddArc appends the directed arc from→to with the given cost to the
// successor list of from. Missing endpoints are declared on the fly.
//
// Errors:
//   - ErrEmptyIdentity if either endpoint is empty.
//   - ErrReservedIdentity if either endpoint contains UIDSeparator.
//   - ErrLoopNotAllowed if from == to and WithLoops was not given.
//   - ErrDuplicateIdentity if the arc exists and WithMultiArcs was not given.
//
// Complexity: O(1) amortized.
func (b *Builder) AddArc(from, to string, cost float64) error {
	if err := checkID(from); err != nil {
		return err
	}
	if err := checkID(to); err != nil {
		return err
	}
	if from == to && !b.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	key := [2]string{from, to}
	if b.pairs[key] > 0 && !b.allowMulti {
		return fmt.Errorf("%w: arc %s→%s", ErrDuplicateIdentity, from, to)
	}
	if !b.HasVertex(from) {
		b.declare(from)
	}
	if !b.HasVertex(to) {
		b.declare(to)
	}
	b.arcs[from] = append(b.arcs[from], Node{ID: to, Cost: cost})
	b.pairs[key]++

	return nil
}

// Map freezes the builder into an Adjacency anchored at start and end.
// Both must already be declared, otherwise ErrUnknownIdentity is returned.
// The builder may keep being used; later mutations do not leak into the map.
//
// Complexity: O(V + E) for the copy.
func (b *Builder) Map(start, end string, opts ...MapOption) (*Adjacency, error) {
	if !b.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownIdentity, start)
	}
	if !b.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %q", ErrUnknownIdentity, end)
	}

	succ := make(map[string][]Node, len(b.arcs))
	for id, list := range b.arcs {
		succ[id] = append([]Node(nil), list...)
	}
	a := &Adjacency{
		start:    Node{ID: start},
		end:      Node{ID: end},
		order:    append([]string(nil), b.order...),
		succ:     succ,
		arcCount: arcTotal(b.pairs),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

func (b *Builder) declare(id string) {
	b.order = append(b.order, id)
	b.arcs[id] = nil
}

func arcTotal(pairs map[[2]string]int) int {
	n := 0
	for _, c := range pairs {
		n += c
	}

	return n
}

// Adjacency is an immutable, precomputed ElementMap over Nodes.
// It never mutates after Builder.Map, so concurrent searches may share it.
type Adjacency struct {
	start, end Node
	order      []string
	succ       map[string][]Node
	arcCount   int
}

var _ ElementMap[Node] = (*Adjacency)(nil)

// Start implements ElementMap.
func (a *Adjacency) Start() Node { return a.start }

// End implements ElementMap.
func (a *Adjacency) End() Node { return a.end }

// Next implements ElementMap. The returned slice is a fresh copy in arc
// insertion order.
//
// Complexity: O(out-degree)
func (a *Adjacency) Next(uid string) ([]Node, error) {
	list, ok := a.succ[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentity, uid)
	}

	return append([]Node(nil), list...), nil
}

// Vertices returns vertex IDs in declaration order.
func (a *Adjacency) Vertices() []string {
	return append([]string(nil), a.order...)
}

// VertexCount returns |V|.
func (a *Adjacency) VertexCount() int { return len(a.order) }

// ArcCount returns |E|, counting parallel arcs.
func (a *Adjacency) ArcCount() int { return a.arcCount }

// WithEndpoints returns a copy of a re-anchored at start and end, sharing
// the underlying immutable arc lists.
func (a *Adjacency) WithEndpoints(start, end string) (*Adjacency, error) {
	if _, ok := a.succ[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownIdentity, start)
	}
	if _, ok := a.succ[end]; !ok {
		return nil, fmt.Errorf("%w: end %q", ErrUnknownIdentity, end)
	}
	cp := *a
	cp.start = Node{ID: start, Cost: a.start.Cost}
	cp.end = Node{ID: end}

	return &cp, nil
}
