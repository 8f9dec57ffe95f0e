package strqueue

import "errors"

var (
	// ErrInvalidQueue indicates that an operation was invoked on a nil or freed queue.
	ErrInvalidQueue = errors.New("queue is nil or freed")

	// ErrEmptyQueue indicates that a removal was attempted on a queue without elements.
	ErrEmptyQueue = errors.New("queue is empty")
)

var (
	// ErrAllocation indicates that the allocator refused storage for a queue or an element.
	// The queue is left in the state it had before the failed call.
	ErrAllocation = errors.New("allocation refused")

	// ErrInvalidArgument indicates that a required output buffer was nil or had no room
	// for the terminator.
	ErrInvalidArgument = errors.New("invalid argument")
)
