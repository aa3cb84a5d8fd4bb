// Package collections provides the FIFO and LIFO containers that carry
// consumption events between simulation phases.
package collections

import "errors"

var (
	// ErrQueueUnderflow is returned when dequeuing from an empty queue
	ErrQueueUnderflow = errors.New("dequeue from empty queue")
	// ErrStackUnderflow is returned when popping from an empty stack
	ErrStackUnderflow = errors.New("pop from empty stack")
)
