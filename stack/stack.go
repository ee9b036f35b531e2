/*
Package stack implements a bounded LIFO stack on top of a singly linked list.
*/
package stack

import (
	"fmt"

	"github.com/mgnsk/container"
	"github.com/mgnsk/container/singly"
)

// Stack is a LIFO stack with a fixed capacity.
type Stack[V any] struct {
	list singly.List[V]
	cap  int
	len  int
}

// New creates an empty stack.
func New[V any](opts ...Option) *Stack[V] {
	o := newDefaultStackOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Stack[V]{cap: o.capacity}
}

// Len returns the number of values on the stack.
func (s *Stack[V]) Len() int {
	return s.len
}

// Cap returns the capacity of the stack.
func (s *Stack[V]) Cap() int {
	return s.cap
}

// Push a value onto the stack.
func (s *Stack[V]) Push(value V) error {
	if s.len == s.cap {
		return fmt.Errorf("stack: push: %w", container.ErrCapacityExceeded)
	}

	s.list.Prepend(value)
	s.len++

	return nil
}

// Pop removes the most recently pushed value and returns it.
func (s *Stack[V]) Pop() (V, error) {
	if s.len == 0 {
		var zero V
		return zero, fmt.Errorf("stack: pop: %w", container.ErrUnderflow)
	}

	v, err := s.list.RemoveFront()
	if err != nil {
		return v, err
	}

	s.len--

	return v, nil
}

// Peek returns the most recently pushed value without removing it.
func (s *Stack[V]) Peek() (v V, ok bool) {
	if front := s.list.Front(); front != nil {
		return front.Value, true
	}

	return v, false
}
