/*
Package queue implements an unbounded FIFO queue on top of a singly linked list.
*/
package queue

import (
	"fmt"

	"github.com/mgnsk/container/singly"
)

// Queue is a FIFO queue.
type Queue[V any] struct {
	list singly.List[V]
}

// New creates an empty queue.
func New[V any]() *Queue[V] {
	return &Queue[V]{}
}

// Len returns the number of values in the queue.
func (q *Queue[V]) Len() int {
	return q.list.Len()
}

// Enqueue adds a value at the back of the queue.
func (q *Queue[V]) Enqueue(value V) {
	q.list.Append(value)
}

// Dequeue removes the value at the front of the queue and returns it.
func (q *Queue[V]) Dequeue() (V, error) {
	v, err := q.list.RemoveFront()
	if err != nil {
		return v, fmt.Errorf("queue: dequeue: %w", err)
	}

	return v, nil
}

// Peek returns the value at the front of the queue without removing it.
func (q *Queue[V]) Peek() (v V, ok bool) {
	if front := q.list.Front(); front != nil {
		return front.Value, true
	}

	return v, false
}
