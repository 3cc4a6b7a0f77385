package queue

import (
	"math"

	"github.com/tidwall/btree"
)

// entry orders an item by (rank, seq). seq is the insertion counter, so two
// equal ranks keep their relative insertion order.
type entry[T Ranked] struct {
	rank float64
	seq  uint64
	item T
}

// Priority serves items by rank, largest first (HeavyFirst) or smallest
// first (LightFirst). Ties are served in insertion order. NaN ranks are
// served last under either order.
//
// The observable order is exactly that of an ordered insert that places a
// new item before the first queued item with a strictly less favorable
// rank. Entries live in a B-tree keyed by (rank, seq), so Add, Get and
// Remove cost O(log n) instead of the O(n) of a sorted slice.
//
// Priority is not safe for concurrent use.
type Priority[T Ranked] struct {
	order Order
	seq   uint64
	tree  *btree.BTreeG[entry[T]]
	index map[string][]entry[T] // uid → live entries, oldest first
}

var _ Queue[Ranked] = (*Priority[Ranked])(nil)

// NewPriority returns an empty Priority queue serving ranks in order.
// An unknown Order falls back to HeavyFirst.
func NewPriority[T Ranked](order Order) *Priority[T] {
	if order != LightFirst {
		order = HeavyFirst
	}
	less := func(a, b entry[T]) bool {
		// NaN ranks sort after every number, in insertion order.
		if an, bn := math.IsNaN(a.rank), math.IsNaN(b.rank); an || bn {
			if an && bn {
				return a.seq < b.seq
			}
			return bn
		}
		if a.rank != b.rank {
			if order == HeavyFirst {
				return a.rank > b.rank
			}
			return a.rank < b.rank
		}
		return a.seq < b.seq
	}

	return &Priority[T]{
		order: order,
		tree:  btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
		index: make(map[string][]entry[T]),
	}
}

// Order reports which end of the rank scale is served first.
func (q *Priority[T]) Order() Order { return q.order }

// Len implements Queue.
func (q *Priority[T]) Len() int { return q.tree.Len() }

// Add inserts item by its Rank.
//
// Complexity: O(log n)
func (q *Priority[T]) Add(item T) {
	e := entry[T]{rank: item.Rank(), seq: q.seq, item: item}
	q.seq++
	q.tree.Set(e)
	uid := item.UID()
	q.index[uid] = append(q.index[uid], e)
}

// Get removes and returns the most favorable item.
//
// Complexity: O(log n)
func (q *Priority[T]) Get() (T, error) {
	e, ok := q.tree.PopMin()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}
	q.unindex(e)

	return e.item, nil
}

// Peek returns the most favorable item without removing it.
func (q *Priority[T]) Peek() (T, error) {
	e, ok := q.tree.Min()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}

	return e.item, nil
}

// Remove deletes the oldest entry whose UID equals uid.
//
// Complexity: O(log n)
func (q *Priority[T]) Remove(uid string) error {
	live := q.index[uid]
	if len(live) == 0 {
		return ErrUIDNotFound
	}
	q.tree.Delete(live[0])
	q.unindex(live[0])

	return nil
}

// Items returns the queued items in service order.
//
// Complexity: O(n)
func (q *Priority[T]) Items() []T {
	out := make([]T, 0, q.tree.Len())
	q.tree.Scan(func(e entry[T]) bool {
		out = append(out, e.item)
		return true
	})

	return out
}

func (q *Priority[T]) unindex(e entry[T]) {
	uid := e.item.UID()
	live := q.index[uid]
	for i := range live {
		if live[i].seq == e.seq {
			live = append(live[:i], live[i+1:]...)
			break
		}
	}
	if len(live) == 0 {
		delete(q.index, uid)
		return
	}
	q.index[uid] = live
}
