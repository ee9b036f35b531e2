/*
Package bst implements an unbalanced binary search tree.

Values less than a node are stored in its left subtree, all other values
(including duplicates) in its right subtree. The tree is not rebalanced,
so all operations are iterative to tolerate skewed shapes.
*/
package bst

import (
	"fmt"
	"iter"

	"github.com/mgnsk/container"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree.
//
// The zero value is a ready to use empty tree.
type Tree[V constraints.Ordered] struct {
	root *Node[V]
	len  int
}

// Len returns the number of nodes in the tree.
func (t *Tree[V]) Len() int {
	return t.len
}

// Root returns the root node or nil if the tree is empty.
func (t *Tree[V]) Root() *Node[V] {
	return t.root
}

// Insert a value into the tree and return the new node.
func (t *Tree[V]) Insert(value V) *Node[V] {
	n := &Node[V]{Value: value}

	slot := &t.root
	for *slot != nil {
		if value < (*slot).Value {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}

	*slot = n
	t.len++

	return n
}

// FindNode returns the first node holding value on the search path or nil.
func (t *Tree[V]) FindNode(value V) (*Node[V], error) {
	if t.root == nil {
		return nil, fmt.Errorf("bst: find: %w", container.ErrEmpty)
	}

	n := t.root
	for n != nil {
		switch {
		case value == n.Value:
			return n, nil
		case value < n.Value:
			n = n.left
		default:
			n = n.right
		}
	}

	return nil, nil
}

// FindValue reports whether the tree holds value.
func (t *Tree[V]) FindValue(value V) (v V, found bool, err error) {
	n, err := t.FindNode(value)
	if err != nil || n == nil {
		return v, false, err
	}

	return n.Value, true, nil
}

// Min returns the smallest value in the tree.
func (t *Tree[V]) Min() (v V, ok bool) {
	if t.root == nil {
		return v, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.Value, true
}

// Max returns the largest value in the tree.
func (t *Tree[V]) Max() (v V, ok bool) {
	if t.root == nil {
		return v, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.Value, true
}

// Delete removes the first node holding value on the search path.
// It reports whether a node was removed.
func (t *Tree[V]) Delete(value V) (bool, error) {
	n, err := t.FindNode(value)
	if err != nil {
		return false, err
	}

	if n == nil {
		return false, nil
	}

	return true, t.Remove(n)
}

// Remove node n from the tree.
//
// A node with two children is replaced by its in-order successor node,
// so references to other nodes stay valid.
func (t *Tree[V]) Remove(n *Node[V]) error {
	if t.root == nil {
		return fmt.Errorf("bst: remove: %w", container.ErrEmpty)
	}

	slot := t.slotOf(n)
	if slot == nil {
		return fmt.Errorf("bst: remove: node is not in tree: %w", container.ErrInvalidArgument)
	}

	switch {
	case n.left == nil:
		*slot = n.right

	case n.right == nil:
		*slot = n.left

	default:
		succSlot := &n.right
		for (*succSlot).left != nil {
			succSlot = &(*succSlot).left
		}

		succ := *succSlot
		*succSlot = succ.right

		succ.left = n.left
		succ.right = n.right
		*slot = succ
	}

	n.left = nil
	n.right = nil
	t.len--

	return nil
}

// Do calls function f on each node of the tree, in order.
// If f returns false, Do stops the iteration.
// f must not change t.
func (t *Tree[V]) Do(f func(n *Node[V]) bool) {
	var stack []*Node[V]

	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(n) {
			return
		}

		n = n.right
	}
}

// All returns an iterator over the values of the tree, in order.
func (t *Tree[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.Do(func(n *Node[V]) bool {
			return yield(n.Value)
		})
	}
}

// slotOf returns the link pointing at n or nil if n is not in the tree.
func (t *Tree[V]) slotOf(n *Node[V]) **Node[V] {
	if n == nil {
		return nil
	}

	slot := &t.root
	for *slot != nil {
		cur := *slot
		if cur == n {
			return slot
		}

		if n.Value < cur.Value {
			slot = &cur.left
		} else {
			slot = &cur.right
		}
	}

	return nil
}
