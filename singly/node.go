package singly

// Node is a list node.
type Node[V any] struct {
	next  *Node[V]
	Value V
}

// Next returns the next node or nil if n is the last node in its list.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}
