// Package tracker provides Tracker, an immutable chain of elements from the
// start of a search to one frontier element.
//
// A chain [1 4 7 8] stands for four distinct trackers over its prefixes:
//
//	[1]  [1 4]  [1 4 7]  [1 4 7 8]
//
// Each tracker derives its identity from the chain contents, so two
// trackers are equal exactly when they hold the same uid sequence.
package tracker

import (
	"errors"
	"strings"

	"github.com/katalvlaran/pathq/core"
)

// Separator joins element uids into a tracker uid. Element uids must not
// contain it, otherwise distinct chains may collide; core.Builder enforces
// this for Adjacency maps.
const Separator = core.UIDSeparator

// ErrInvalidChain is returned when a tracker is built from zero elements.
var ErrInvalidChain = errors.New("tracker: chain must hold at least one element")

// Tracker is an immutable, non-empty chain of elements in root-to-leaf order.
type Tracker[E core.Element] struct {
	elements []E
}

// New builds a tracker over a copy of elements.
// Returns ErrInvalidChain if elements is empty.
func New[E core.Element](elements ...E) (*Tracker[E], error) {
	if len(elements) == 0 {
		return nil, ErrInvalidChain
	}

	return &Tracker[E]{elements: append(make([]E, 0, len(elements)), elements...)}, nil
}

// Extend returns a new tracker holding the chain followed by e.
// The receiver is left untouched.
//
// Complexity: O(len) for the copy.
func (t *Tracker[E]) Extend(e E) *Tracker[E] {
	chain := make([]E, len(t.elements), len(t.elements)+1)
	copy(chain, t.elements)

	return &Tracker[E]{elements: append(chain, e)}
}

// Elements returns the chain root-to-leaf. Callers must treat it as read-only.
func (t *Tracker[E]) Elements() []E { return t.elements }

// Last returns the leaf element.
func (t *Tracker[E]) Last() E { return t.elements[len(t.elements)-1] }

// Len returns the number of elements in the chain, which is also its depth.
func (t *Tracker[E]) Len() int { return len(t.elements) }

// UID joins every element uid with Separator.
func (t *Tracker[E]) UID() string { return join(t.elements) }

// PreviousUID returns the uid of the chain without its leaf.
// ok is false for a single-element chain, which has no predecessor.
func (t *Tracker[E]) PreviousUID() (uid string, ok bool) {
	if len(t.elements) == 1 {
		return "", false
	}

	return join(t.elements[:len(t.elements)-1]), true
}

// Contains reports whether uid appears anywhere in the chain.
func (t *Tracker[E]) Contains(uid string) bool {
	for _, e := range t.elements {
		if e.UID() == uid {
			return true
		}
	}

	return false
}

// Equal reports structural equality over the uid sequence.
func (t *Tracker[E]) Equal(other *Tracker[E]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.elements) != len(other.elements) {
		return false
	}
	for i := range t.elements {
		if t.elements[i].UID() != other.elements[i].UID() {
			return false
		}
	}

	return true
}

// String renders the chain as "[a b c]".
func (t *Tracker[E]) String() string {
	return "[" + strings.Join(core.IDs(t.elements), " ") + "]"
}

func join[E core.Element](elems []E) string {
	return strings.Join(core.IDs(elems), Separator)
}
