/*
Package singly implements a forward-only linked list with O(1) append,
prepend and removal from the front.
*/
package singly

import (
	"fmt"
	"iter"

	"github.com/mgnsk/container"
)

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head *Node[V]
	tail *Node[V]
	len  int
}

// Len returns the number of nodes in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first node of the list or nil.
func (l *List[V]) Front() *Node[V] {
	return l.head
}

// Back returns the last node of the list or nil.
func (l *List[V]) Back() *Node[V] {
	return l.tail
}

// Append inserts a value at the back of list l and returns the new node.
func (l *List[V]) Append(value V) *Node[V] {
	n := &Node[V]{Value: value}

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.len++

	return n
}

// Prepend inserts a value at the front of list l and returns the new node.
func (l *List[V]) Prepend(value V) *Node[V] {
	n := &Node[V]{Value: value, next: l.head}

	l.head = n
	if l.tail == nil {
		l.tail = n
	}

	l.len++

	return n
}

// RemoveFront removes the first node and returns its value.
func (l *List[V]) RemoveFront() (V, error) {
	if l.head == nil {
		var zero V
		return zero, fmt.Errorf("singly: remove front: %w", container.ErrEmpty)
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}

	n.next = nil
	l.len--

	return n.Value, nil
}

// Do calls function f on each node of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(n *Node[V]) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n) {
			return
		}
	}
}

// All returns an iterator over the values of the list, in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.Do(func(n *Node[V]) bool {
			return yield(n.Value)
		})
	}
}
