package container

import "errors"

var (
	// ErrEmpty indicates that an operation requires a non-empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrInvalidArgument indicates a violated structural precondition,
	// such as removing the successor of an element that has none.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded indicates a push onto a full stack.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrUnderflow indicates a pop from an empty stack.
	ErrUnderflow = errors.New("stack underflow")
)
