/*
Package ringlist implements a circularly linked list.

The back element always links forward to the front element.
*/
package ringlist

import (
	"fmt"
	"iter"

	"github.com/mgnsk/container"
)

// List is a circular singly linked list.
//
// The zero value is a ready to use empty list.
type List[V comparable] struct {
	head *Element[V]
	tail *Element[V]
	len  int
}

// Len returns the number of elements in list l.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of list l or nil if the list is empty.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of list l or nil if the list is empty.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// Append inserts a value at the back of list l and returns the new element.
func (l *List[V]) Append(value V) *Element[V] {
	e := NewElement(value)

	if l.tail == nil {
		l.init(e)
		return e
	}

	l.tail.link(e)
	l.tail = e
	l.len++

	return e
}

// Prepend inserts a value at the front of list l and returns the new element.
func (l *List[V]) Prepend(value V) *Element[V] {
	e := NewElement(value)

	if l.tail == nil {
		l.init(e)
		return e
	}

	l.tail.link(e)
	l.head = e
	l.len++

	return e
}

// RemoveBeginning removes the front element and returns its value.
func (l *List[V]) RemoveBeginning() (V, error) {
	if l.head == nil {
		var zero V
		return zero, fmt.Errorf("ringlist: remove beginning: %w", container.ErrEmpty)
	}

	return l.removeNext(l.tail).Value, nil
}

// InsertAfter links the detached element e after mark.
// If the list is empty, e becomes its only element and mark is ignored.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) InsertAfter(mark, e *Element[V]) error {
	if e == nil || e.list != nil {
		return fmt.Errorf("ringlist: insert after: element is not detached: %w", container.ErrInvalidArgument)
	}

	if l.head == nil {
		l.init(e)
		return nil
	}

	if mark == nil || mark.list != l {
		return fmt.Errorf("ringlist: insert after: mark is not in list: %w", container.ErrInvalidArgument)
	}

	mark.link(e)
	if mark == l.tail {
		l.tail = e
	}
	l.len++

	return nil
}

// RemoveAfter removes the element following mark along the ring and returns its value.
// Removing after the back element removes the front element.
// Removing after the only element empties the list.
func (l *List[V]) RemoveAfter(mark *Element[V]) (V, error) {
	var zero V

	if l.head == nil {
		return zero, fmt.Errorf("ringlist: remove after: %w", container.ErrEmpty)
	}

	// A detached mark has no successor.
	if mark == nil || mark.list != l {
		return zero, fmt.Errorf("ringlist: remove after: mark is not in list: %w", container.ErrInvalidArgument)
	}

	return l.removeNext(mark).Value, nil
}

// FindNode returns the first element holding value or nil.
func (l *List[V]) FindNode(value V) (*Element[V], error) {
	if l.head == nil {
		return nil, fmt.Errorf("ringlist: find: %w", container.ErrEmpty)
	}

	e := l.head
	for i := 0; i < l.len; i++ {
		if e.Value == value {
			return e, nil
		}
		e = e.next
	}

	return nil, nil
}

// FindValue reports whether the list holds value.
func (l *List[V]) FindValue(value V) (v V, found bool, err error) {
	e, err := l.FindNode(value)
	if err != nil || e == nil {
		return v, false, err
	}

	return e.Value, true, nil
}

// Do calls function f on each element of the list, in forward order
// starting from the front element and visiting each element once.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	e := l.head
	for i := 0; i < l.len; i++ {
		if !f(e) {
			return
		}
		e = e.next
	}
}

// All returns an iterator over the values of the list, in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.Do(func(e *Element[V]) bool {
			return yield(e.Value)
		})
	}
}

// init makes e the only element, linked to itself.
func (l *List[V]) init(e *Element[V]) {
	e.next = e
	e.list = l
	l.head = e
	l.tail = e
	l.len = 1
}

func (l *List[V]) removeNext(mark *Element[V]) *Element[V] {
	if l.len == 1 {
		e := l.head
		e.next = nil
		e.list = nil
		l.head = nil
		l.tail = nil
		l.len = 0
		return e
	}

	e := mark.unlinkNext()

	switch e {
	case l.head:
		l.head = mark.next
	case l.tail:
		l.tail = mark
	}

	l.len--

	return e
}
