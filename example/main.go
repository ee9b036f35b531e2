package main

import (
	"github.com/mgnsk/container/bst"
	"github.com/mgnsk/container/ringlist"
	"github.com/mgnsk/container/stack"
)

func main() {
	var tree bst.Tree[int]

	for _, v := range []int{5, 3, 8, 1, 4} {
		tree.Insert(v)
	}

	// Prints the values in order.
	for v := range tree.All() {
		println(v)
	}

	var ring ringlist.List[string]

	ring.Append("a")
	ring.Append("b")
	ring.Append("c")

	if _, err := ring.RemoveBeginning(); err != nil {
		panic(err)
	}

	// The back element links back to the front element.
	println(ring.Back().Next().Value)

	s := stack.New[string](stack.WithCapacity(1))

	if err := s.Push("value"); err != nil {
		panic(err)
	}

	// The stack is full.
	if err := s.Push("overflow"); err != nil {
		println(err.Error())
	}
}
