package strqueue

import "github.com/arloliu/go-strqueue/logger"

// Option configures a Queue created by New.
type Option func(*Queue)

// WithAllocator sets the allocator that grants storage for the queue and its elements.
// A nil allocator is ignored and the default HeapAllocator is kept.
func WithAllocator(a Allocator) Option {
	return func(q *Queue) {
		if a != nil {
			q.alloc = a
		}
	}
}

// WithLogger sets the logger of the queue. A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(q *Queue) {
		if l != nil {
			q.logger = l
		}
	}
}
