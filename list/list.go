/*
Package list implements a doubly linked list.
*/
package list

import (
	"fmt"
	"iter"

	"github.com/mgnsk/container"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V comparable] struct {
	head *Element[V]
	tail *Element[V]
	len  int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// Append inserts a value at the back of list l and returns the new element.
func (l *List[V]) Append(value V) *Element[V] {
	e := NewElement(value)
	l.pushBack(e)
	return e
}

// Prepend inserts a value at the front of list l and returns the new element.
func (l *List[V]) Prepend(value V) *Element[V] {
	e := NewElement(value)
	l.pushFront(e)
	return e
}

// RemoveFront removes the first element and returns its value.
func (l *List[V]) RemoveFront() (V, error) {
	if l.head == nil {
		var zero V
		return zero, fmt.Errorf("list: remove front: %w", container.ErrEmpty)
	}

	e := l.head
	l.remove(e)

	return e.Value, nil
}

// InsertAfter links the detached element e after mark.
// If the list is empty, e becomes its only element and mark is ignored.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) InsertAfter(mark, e *Element[V]) error {
	if e == nil || e.list != nil {
		return fmt.Errorf("list: insert after: element is not detached: %w", container.ErrInvalidArgument)
	}

	if l.head == nil {
		l.pushBack(e)
		return nil
	}

	if mark == nil || mark.list != l {
		return fmt.Errorf("list: insert after: mark is not in list: %w", container.ErrInvalidArgument)
	}

	mark.link(e)
	if mark == l.tail {
		l.tail = e
	}
	l.len++

	return nil
}

// RemoveAfter removes the element following mark and returns its value.
func (l *List[V]) RemoveAfter(mark *Element[V]) (V, error) {
	var zero V

	if l.head == nil {
		return zero, fmt.Errorf("list: remove after: %w", container.ErrEmpty)
	}

	if mark == nil || mark.list != l {
		return zero, fmt.Errorf("list: remove after: mark is not in list: %w", container.ErrInvalidArgument)
	}

	if mark.next == nil {
		return zero, fmt.Errorf("list: remove after: mark has no successor: %w", container.ErrInvalidArgument)
	}

	e := mark.next
	l.remove(e)

	return e.Value, nil
}

// Remove an element from the list.
func (l *List[V]) Remove(e *Element[V]) error {
	if e == nil || e.list != l {
		return fmt.Errorf("list: remove: element is not in list: %w", container.ErrInvalidArgument)
	}

	l.remove(e)

	return nil
}

// FindNode returns the first element holding value or nil.
func (l *List[V]) FindNode(value V) (*Element[V], error) {
	if l.head == nil {
		return nil, fmt.Errorf("list: find: %w", container.ErrEmpty)
	}

	for e := l.head; e != nil; e = e.next {
		if e.Value == value {
			return e, nil
		}
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

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.head; e != nil; e = e.next {
		if !f(e) {
			return
		}
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

// Backward returns an iterator over the values of the list, in reverse order.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *Element[V]) error {
	if e == nil || mark == nil || e.list != l || mark.list != l {
		return fmt.Errorf("list: move after: %w", container.ErrInvalidArgument)
	}

	if e == mark {
		return nil
	}

	l.remove(e)

	mark.link(e)
	if mark == l.tail {
		l.tail = e
	}
	l.len++

	return nil
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *Element[V]) error {
	if e == nil || e.list != l {
		return fmt.Errorf("list: move to front: %w", container.ErrInvalidArgument)
	}

	if e == l.head {
		return nil
	}

	l.remove(e)
	l.pushFront(e)

	return nil
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *Element[V]) error {
	if e == nil || e.list != l {
		return fmt.Errorf("list: move to back: %w", container.ErrInvalidArgument)
	}

	return l.MoveAfter(e, l.tail)
}

func (l *List[V]) pushBack(e *Element[V]) {
	if l.tail == nil {
		e.list = l
		l.head = e
		l.tail = e
	} else {
		l.tail.link(e)
		l.tail = e
	}
	l.len++
}

func (l *List[V]) pushFront(e *Element[V]) {
	e.list = l
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
}

func (l *List[V]) remove(e *Element[V]) {
	if e == l.head {
		l.head = e.next
	}
	if e == l.tail {
		l.tail = e.prev
	}
	e.unlink()
	l.len--
}
