package bst

// Node is a tree node.
type Node[V any] struct {
	left, right *Node[V]
	Value       V
}

// Left returns the left child or nil.
func (n *Node[V]) Left() *Node[V] {
	return n.left
}

// Right returns the right child or nil.
func (n *Node[V]) Right() *Node[V] {
	return n.right
}
