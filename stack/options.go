package stack

import "strconv"

// DefaultCapacity is the capacity of a stack created without WithCapacity.
const DefaultCapacity = 256

// Option is a stack configuration option.
type Option interface {
	apply(*stackOptions)
}

type stackOptions struct {
	capacity int
}

func newDefaultStackOptions() stackOptions {
	return stackOptions{
		capacity: DefaultCapacity,
	}
}

// WithCapacity option configures the stack with specified capacity.
//
// The zero value configures DefaultCapacity.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *stackOptions) {
		switch {
		case capacity == 0:
			opts.capacity = DefaultCapacity

		case capacity > 0:
			opts.capacity = capacity

		default:
			panic("stack: invalid capacity '" + strconv.Itoa(capacity) + "'")
		}
	})
}

type funcOption func(*stackOptions)

func (o funcOption) apply(opts *stackOptions) {
	o(opts)
}
