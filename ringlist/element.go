package ringlist

// Element is a list element.
type Element[V comparable] struct {
	Value V
	next  *Element[V]
	list  *List[V]
}

// NewElement creates a detached list element.
func NewElement[V comparable](v V) *Element[V] {
	return &Element[V]{
		Value: v,
	}
}

// Next returns the next element along the ring or nil if e is detached.
// The next element of the back element is the front element.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// link inserts an element after this element.
func (e *Element[V]) link(s *Element[V]) {
	s.next = e.next
	s.list = e.list
	e.next = s
}

// unlinkNext unlinks and returns the element following this element.
func (e *Element[V]) unlinkNext() *Element[V] {
	s := e.next
	e.next = s.next
	s.next = nil
	s.list = nil
	return s
}
