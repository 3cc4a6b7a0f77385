// Package core declares the data contracts consumed by the search engine:
// Element, Weighted, ElementMap, the stock Node value, and the sentinel
// errors shared by every Element Map implementation in this module.
//
// Errors:
//
//	ErrEmptyIdentity     - element ID is the empty string.
//	ErrUnknownIdentity   - the map cannot resolve the requested uid.
//	ErrDuplicateIdentity - a vertex or arc was declared twice at build time.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrReservedIdentity  - element ID contains UIDSeparator.
//	ErrNegativeWeight    - element weight is negative or NaN.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// UIDSeparator joins element uids into a path uid. Builder rejects vertex
// IDs containing it.
const UIDSeparator = ","

// Sentinel errors for Element Map construction and lookup.
var (
	// ErrEmptyIdentity indicates that an element was declared with an empty ID.
	ErrEmptyIdentity = errors.New("core: element ID is empty")

	// ErrUnknownIdentity indicates that a uid cannot be resolved by the map.
	// It is a contract violation by the caller; the engine never recovers it.
	ErrUnknownIdentity = errors.New("core: unknown element identity")

	// ErrDuplicateIdentity indicates a vertex or arc was declared twice.
	ErrDuplicateIdentity = errors.New("core: duplicate element identity")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrReservedIdentity indicates an element ID containing UIDSeparator.
	ErrReservedIdentity = errors.New("core: element ID contains the uid separator")

	// ErrNegativeWeight indicates an element weight that is negative or NaN.
	ErrNegativeWeight = errors.New("core: negative element weight encountered")
)

// CheckWeight returns an error wrapping ErrNegativeWeight unless
// e.Weight() is a number ≥ 0.
func CheckWeight(e Weighted) error {
	if w := e.Weight(); !(w >= 0) {
		return fmt.Errorf("%w: element %q weight=%g", ErrNegativeWeight, e.UID(), w)
	}

	return nil
}

func checkID(id string) error {
	if id == "" {
		return ErrEmptyIdentity
	}
	if strings.Contains(id, UIDSeparator) {
		return fmt.Errorf("%w: %q", ErrReservedIdentity, id)
	}

	return nil
}

// Element is an opaque unit of the graph being searched.
// UID must be unique within one search and stable for its duration.
type Element interface {
	UID() string
}

// Weighted is an Element carrying a non-negative cost.
// Only the Dijkstra adapter requires it.
type Weighted interface {
	Element
	Weight() float64
}

// ElementMap is the adjacency oracle the engine consumes.
//
// Next must be a pure function of uid for the duration of one search.
// An unknown uid must produce an error wrapping ErrUnknownIdentity.
type ElementMap[E Element] interface {
	// Start returns the element the search is anchored at.
	Start() E

	// End returns the element the search is looking for.
	End() E

	// Next returns the successors of uid in a deterministic order.
	Next(uid string) ([]E, error)
}

// Node is the stock Weighted implementation used by Adjacency.
//
// Cost is the price of stepping onto this node from the element whose
// successor list contains it, so the same ID may carry different costs
// in different lists.
type Node struct {
	// ID uniquely identifies the node within its map.
	ID string

	// Cost of entering the node. Zero for unweighted maps.
	Cost float64
}

// UID implements Element.
func (n Node) UID() string { return n.ID }

// Weight implements Weighted.
func (n Node) Weight() float64 { return n.Cost }

// String renders the node as "ID" or "ID(cost)" when the cost is non-zero.
func (n Node) String() string {
	if n.Cost == 0 {
		return n.ID
	}

	return n.ID + "(" + strconv.FormatFloat(n.Cost, 'g', -1, 64) + ")"
}

// IDs returns the uids of elems in order.
func IDs[E Element](elems []E) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.UID()
	}

	return out
}
