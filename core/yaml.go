package core

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrBadDocument is returned when a YAML map document is malformed.
var ErrBadDocument = errors.New("core: malformed map document")

// Document is the declarative form of an Adjacency:
//
//	start: "1"
//	end: end
//	start_cost: 0
//	multi_arcs: false
//	loops: false
//	vertices: ["lonely"]
//	arcs:
//	  "1": [{to: "2", cost: 2}, {to: "3", cost: 7}]
//
// Arc lists keep their sequence order. The order of keys in the arcs
// mapping is irrelevant; sources are declared in sorted order.
type Document struct {
	Start     string           `yaml:"start"`
	End       string           `yaml:"end"`
	StartCost float64          `yaml:"start_cost,omitempty"`
	MultiArcs bool             `yaml:"multi_arcs,omitempty"`
	Loops     bool             `yaml:"loops,omitempty"`
	Vertices  []string         `yaml:"vertices,omitempty"`
	Arcs      map[string][]Arc `yaml:"arcs"`
}

// Arc is one entry of a Document successor list.
type Arc struct {
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost,omitempty"`
}

// DecodeYAML reads a Document from r and builds the Adjacency it describes.
// Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Adjacency, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return doc.Build()
}

// Build converts the document into an Adjacency.
func (d Document) Build() (*Adjacency, error) {
	if d.Start == "" || d.End == "" {
		return nil, fmt.Errorf("%w: start and end are required", ErrBadDocument)
	}

	var opts []BuilderOption
	if d.MultiArcs {
		opts = append(opts, WithMultiArcs())
	}
	if d.Loops {
		opts = append(opts, WithLoops())
	}
	b := NewBuilder(opts...)

	for _, id := range d.Vertices {
		if err := b.AddVertex(id); err != nil {
			return nil, err
		}
	}

	sources := make([]string, 0, len(d.Arcs))
	for from := range d.Arcs {
		sources = append(sources, from)
	}
	sort.Strings(sources)
	for _, from := range sources {
		if !b.HasVertex(from) {
			if err := b.AddVertex(from); err != nil {
				return nil, err
			}
		}
		for _, arc := range d.Arcs[from] {
			if err := b.AddArc(from, arc.To, arc.Cost); err != nil {
				return nil, err
			}
		}
	}

	return b.Map(d.Start, d.End, WithStartCost(d.StartCost))
}

// MarshalYAML renders a as a Document. Sources appear once each, so
// round-tripping preserves every successor list.
func (a *Adjacency) MarshalYAML() (interface{}, error) {
	doc := Document{
		Start:     a.start.ID,
		End:       a.end.ID,
		StartCost: a.start.Cost,
		Arcs:      make(map[string][]Arc, len(a.succ)),
	}
	for _, id := range a.order {
		list := a.succ[id]
		if len(list) == 0 {
			doc.Vertices = append(doc.Vertices, id)
			continue
		}
		arcs := make([]Arc, len(list))
		for i, n := range list {
			arcs[i] = Arc{To: n.ID, Cost: n.Cost}
			if n.ID == id {
				doc.Loops = true
			}
		}
		doc.Arcs[id] = arcs
	}
	doc.MultiArcs = a.hasParallel()

	return doc, nil
}

func (a *Adjacency) hasParallel() bool {
	for _, list := range a.succ {
		seen := make(map[string]struct{}, len(list))
		for _, n := range list {
			if _, dup := seen[n.ID]; dup {
				return true
			}
			seen[n.ID] = struct{}{}
		}
	}

	return false
}
