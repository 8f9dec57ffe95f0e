package strqueue

import "strconv"

// BlockKind identifies what a reserved block of storage backs.
type BlockKind uint8

const (
	// BlockQueue backs the Queue header itself.
	BlockQueue BlockKind = iota
	// BlockNode backs one element link.
	BlockNode
	// BlockValue backs the owned copy of an element value, including its terminator byte.
	BlockValue
)

func (k BlockKind) String() string {
	switch k {
	case BlockQueue:
		return "queue"
	case BlockNode:
		return "node"
	case BlockValue:
		return "value"
	default:
		return "block(" + strconv.Itoa(int(k)) + ")"
	}
}

// Allocator grants and takes back storage for queues and their elements.
//
// The Go runtime owns the actual memory; an Allocator decides whether a request is
// granted and may account for what is outstanding. Every successful Reserve is paired
// with exactly one Release of the same kind and size.
type Allocator interface {
	// Reserve requests size bytes of the given kind. A non-nil error refuses the request.
	Reserve(kind BlockKind, size int) error
	// Release returns a block obtained from Reserve.
	Release(kind BlockKind, size int)
}

// Accounted sizes of the fixed-size blocks.
const (
	queueSize = 32
	nodeSize  = 24
)

type heapAllocator struct{}

var _ Allocator = heapAllocator{}

// HeapAllocator returns the default Allocator, which grants every request.
func HeapAllocator() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Reserve(BlockKind, int) error { return nil }

func (heapAllocator) Release(BlockKind, int) {}

// valueSize is the accounted size of the owned copy of value.
func valueSize(value string) int {
	return len(value) + 1
}
