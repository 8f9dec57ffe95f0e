package strqueue

import "sync"

var nodePool = sync.Pool{New: func() any { return &node{} }}

func getNode(value string, next *node) *node {
	var n *node
	if usePool {
		n, _ = nodePool.Get().(*node)
	}

	if n == nil {
		n = &node{}
	}

	n.value = value
	n.next = next

	return n
}

func putNode(n *node) {
	n.value = ""
	n.next = nil

	if usePool {
		nodePool.Put(n)
	}
}

var usePool = true

// IsUsePool returns true if element nodes are recycled through a pool, false otherwise.
func IsUsePool() bool {
	return usePool
}

// UsePool enables or disables recycling of element nodes.
// When enabled, nodes released by RemoveHead, PopHead and Free are reused by later
// insertions, which reduces garbage collector pressure for queues with high churn.
//
// Pooling is enabled by default.
func UsePool(val bool) {
	usePool = val
}
