package collections

import "github.com/vsinha/stocksim/pkg/domain/entities"

// Stack is a LIFO container. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// ConsumptionStack holds consumption events with the most recently processed on top
type ConsumptionStack = Stack[entities.ConsumptionEvent]

// NewStack creates an empty stack with room for capacity items
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top of the stack
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top of the stack.
// It returns ErrStackUnderflow when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.Empty() {
		return zero, ErrStackUnderflow
	}

	idx := len(s.items) - 1
	v := s.items[idx]
	s.items[idx] = zero
	s.items = s.items[:idx]
	return v, nil
}

// Peek returns the top of the stack without removing it; ok is false if the stack is empty
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.Empty() {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// LastK returns a copy of the k most recently pushed items, most recent first.
// The stack is left untouched. k larger than Len returns every item; k <= 0 returns none.
func (s *Stack[T]) LastK(k int) []T {
	if k <= 0 {
		return []T{}
	}
	if k > len(s.items) {
		k = len(s.items)
	}

	out := make([]T, 0, k)
	for i := len(s.items) - 1; i >= len(s.items)-k; i-- {
		out = append(out, s.items[i])
	}
	return out
}

// Empty reports whether the stack holds no items
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

// Len returns the number of stacked items
func (s *Stack[T]) Len() int {
	return len(s.items)
}
