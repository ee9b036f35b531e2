/*
Package container implements elementary node-based containers.

Subpackages provide a singly linked list (singly), a doubly linked list (list),
a circularly linked list (ringlist), an unbalanced binary search tree (bst)
and the stack and queue adapters built on the singly linked list.

None of the containers are safe for concurrent use.
*/
package container
