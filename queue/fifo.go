package queue

// FIFO is a first-in, first-out queue. The zero value is ready to use.
// It is not safe for concurrent use.
type FIFO[T Item] struct {
	items []T
}

var _ Queue[Item] = (*FIFO[Item])(nil)

// NewFIFO returns a FIFO seeded with items in the given order.
func NewFIFO[T Item](items ...T) *FIFO[T] {
	return &FIFO[T]{items: append([]T(nil), items...)}
}

// Len implements Queue.
func (q *FIFO[T]) Len() int { return len(q.items) }

// Add appends item at the back.
//
// Complexity: O(1) amortized.
func (q *FIFO[T]) Add(item T) { q.items = append(q.items, item) }

// Get removes and returns the oldest item.
//
// Complexity: O(1)
func (q *FIFO[T]) Get() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmptyQueue
	}
	item := q.items[0]
	q.items[0] = zero // release for GC
	q.items = q.items[1:]

	return item, nil
}

// Peek returns the oldest item without removing it.
func (q *FIFO[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.items[0], nil
}

// Remove deletes the oldest item whose UID equals uid.
//
// Complexity: O(n)
func (q *FIFO[T]) Remove(uid string) error {
	for i, item := range q.items {
		if item.UID() == uid {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return nil
		}
	}

	return ErrUIDNotFound
}
