// Package queue provides the two queue disciplines the search engine is
// parameterized by: FIFO (strict insertion order) and Priority (ordered by
// rank, stable on ties). Both address their entries by uid.
package queue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned by Get and Peek on an empty queue.
	ErrEmptyQueue = errors.New("queue: cannot get element from empty queue")

	// ErrUIDNotFound is returned by Remove when no entry carries the uid.
	ErrUIDNotFound = errors.New("queue: no such uid stored")
)

// Item is anything a queue can hold: it only needs an identity.
type Item interface {
	UID() string
}

// Ranked is an Item with a priority value. Priority queues serve NaN
// ranks after every number.
type Ranked interface {
	Item
	Rank() float64
}

// Queue is the contract the search engine drives.
type Queue[T Item] interface {
	// Len returns the number of queued items.
	Len() int

	// Add enqueues item according to the queue discipline.
	Add(item T)

	// Get removes and returns the front item, or ErrEmptyQueue.
	Get() (T, error)

	// Remove deletes the oldest entry whose UID equals uid, or ErrUIDNotFound.
	Remove(uid string) error
}

// Order selects which end of the rank scale a Priority queue serves first.
type Order int

const (
	// HeavyFirst dequeues the largest rank first.
	HeavyFirst Order = iota
	// LightFirst dequeues the smallest rank first.
	LightFirst
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case HeavyFirst:
		return "heavy-first"
	case LightFirst:
		return "light-first"
	default:
		return "unknown"
	}
}
