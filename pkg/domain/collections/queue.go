package collections

import "github.com/vsinha/stocksim/pkg/domain/entities"

// Queue is a FIFO container. Dequeue order always equals enqueue order.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	items []T
	head  int
}

// ConsumptionQueue holds consumption events in arrival order
type ConsumptionQueue = Queue[entities.ConsumptionEvent]

// NewQueue creates an empty queue with room for capacity items
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Enqueue appends v to the tail of the queue
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the head of the queue.
// It returns ErrQueueUnderflow when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrQueueUnderflow
	}

	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, nil
}

// Empty reports whether the queue holds no items
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Len returns the number of queued items
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}
