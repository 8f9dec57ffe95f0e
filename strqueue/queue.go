package strqueue

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/go-strqueue/logger"
)

// node is one element link. It exclusively owns its value and its successor.
type node struct {
	value string
	next  *node
}

// Queue is a singly linked sequence of strings.
//
// A Queue is either empty, with no head and no tail, or holds count elements where
// following count links from head ends at tail. The zero value is not usable; create
// queues with New.
type Queue struct {
	head  *node
	tail  *node
	count int

	alloc    Allocator
	logger   logger.Logger
	released bool
}

// New creates an empty queue.
//
// It returns an error wrapping ErrAllocation if the allocator refuses storage for the
// queue itself.
func New(opts ...Option) (*Queue, error) {
	q := &Queue{
		alloc:  HeapAllocator(),
		logger: logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}

	if err := q.alloc.Reserve(BlockQueue, queueSize); err != nil {
		q.logger.Warn("failed to reserve queue", "error", err)
		return nil, allocError(err)
	}

	q.logger.Debug("queue created")

	return q, nil
}

// Free releases every element and then the queue itself.
//
// Free is a no-op on a nil queue or on a queue that was already freed. After Free,
// insertions and removals report ErrInvalidQueue.
func (q *Queue) Free() {
	if q == nil || q.released {
		return
	}

	released := q.count
	for q.head != nil {
		q.unlinkHead()
	}

	q.alloc.Release(BlockQueue, queueSize)
	q.released = true

	q.logger.Debug("queue freed", "released", released)
}

// InsertHead inserts a copy of value before the current head.
//
// It returns ErrInvalidQueue on a nil or freed queue, or an error wrapping ErrAllocation if
// storage is refused. On error the queue is unchanged.
func (q *Queue) InsertHead(value string) error {
	n, err := q.newNode(value, q.headOrNil())
	if err != nil {
		return err
	}

	q.head = n
	if q.tail == nil {
		q.tail = n
	}
	q.count++

	return nil
}

// InsertTail appends a copy of value after the current tail in constant time.
//
// It fails exactly like InsertHead and leaves the queue unchanged on error.
func (q *Queue) InsertTail(value string) error {
	n, err := q.newNode(value, nil)
	if err != nil {
		return err
	}

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count++

	return nil
}

// RemoveHead removes the head element and copies its value into buf.
//
// At most len(buf)-1 bytes are copied, followed by a zero terminator; longer values are
// truncated silently. The returned count is the number of value bytes copied, so
// buf[:n] holds the (possibly truncated) value.
//
// It returns ErrInvalidQueue on a nil or freed queue, ErrEmptyQueue if the queue has no
// elements, and ErrInvalidArgument if buf has no room for the terminator. Nothing is removed on
// error.
func (q *Queue) RemoveHead(buf []byte) (int, error) {
	if q == nil || q.released {
		return 0, ErrInvalidQueue
	}

	if q.head == nil {
		return 0, ErrEmptyQueue
	}

	if len(buf) == 0 {
		return 0, ErrInvalidArgument
	}

	n := copy(buf[:len(buf)-1], q.head.value)
	buf[n] = 0
	q.unlinkHead()

	return n, nil
}

// PopHead removes the head element and returns its full value.
//
// It returns ErrInvalidQueue on a nil or freed queue and ErrEmptyQueue if the queue has no elements.
func (q *Queue) PopHead() (string, error) {
	if q == nil || q.released {
		return "", ErrInvalidQueue
	}

	if q.head == nil {
		return "", ErrEmptyQueue
	}

	return q.unlinkHead(), nil
}

// Peek returns the head value without removing it.
func (q *Queue) Peek() (string, error) {
	if q == nil || q.released {
		return "", ErrInvalidQueue
	}

	if q.head == nil {
		return "", ErrEmptyQueue
	}

	return q.head.value, nil
}

// Size returns the number of elements, or 0 for a nil queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}

	return q.count
}

// IsEmpty returns true if the queue is nil or has no elements.
func (q *Queue) IsEmpty() bool {
	return q.Size() == 0
}

// Reverse reverses the order of the elements in place by relinking them.
// It is a no-op on a nil queue or a queue with fewer than two elements.
func (q *Queue) Reverse() {
	if q == nil || q.count < 2 {
		return
	}

	var prev *node
	curr := q.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}

	q.head, q.tail = q.tail, q.head
}

// All returns an iterator over the values from head to tail.
// The queue must not be modified while iterating.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}

		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the values from head to tail.
func (q *Queue) Values() []string {
	values := make([]string, 0, q.Size())
	for v := range q.All() {
		values = append(values, v)
	}

	return values
}

// String returns the values in the form "[v1 v2 ...]".
func (q *Queue) String() string {
	if q == nil {
		return "<nil>"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for n := q.head; n != nil; n = n.next {
		sb.WriteString(n.value)
		if n.next != nil {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

func (q *Queue) headOrNil() *node {
	if q == nil {
		return nil
	}

	return q.head
}

// newNode reserves storage for a node and its value and returns it linked to next.
// Nothing stays reserved if it fails.
func (q *Queue) newNode(value string, next *node) (*node, error) {
	if q == nil || q.released {
		return nil, ErrInvalidQueue
	}

	if err := q.alloc.Reserve(BlockNode, nodeSize); err != nil {
		q.logger.Warn("failed to reserve node", "error", err)
		return nil, allocError(err)
	}

	if err := q.alloc.Reserve(BlockValue, valueSize(value)); err != nil {
		q.alloc.Release(BlockNode, nodeSize)
		q.logger.Warn("failed to reserve value", "size", valueSize(value), "error", err)

		return nil, allocError(err)
	}

	return getNode(strings.Clone(value), next), nil
}

// unlinkHead detaches the head node, releases its storage and returns its value.
// The queue must not be empty.
func (q *Queue) unlinkHead() string {
	n := q.head
	value := n.value

	q.head = n.next
	q.count--
	if q.head == nil {
		q.tail = nil
	}

	q.alloc.Release(BlockValue, valueSize(value))
	q.alloc.Release(BlockNode, nodeSize)
	putNode(n)

	return value
}

// allocError makes sure a refusal from a custom allocator matches ErrAllocation.
func allocError(err error) error {
	if errors.Is(err, ErrAllocation) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrAllocation, err)
}
