// Package strqueue provides Queue, a singly linked sequence of strings with
// constant time insertion at both ends, constant time removal at the head,
// in-place reversal and a stable in-place merge sort.
//
// Every element is an independent copy of the string passed to InsertHead or
// InsertTail; the queue never retains caller memory. Reverse and Sort only relink
// existing elements and never allocate.
//
// Storage Accounting:
// Storage for queues and elements is obtained through an Allocator, which may refuse
// a request. A refused insertion leaves the queue exactly as it was and returns an
// error wrapping ErrAllocation. The default allocator always grants; TrackingAllocator
// counts live blocks, detects double releases and can inject failures for testing.
//
// Absent Queues:
// All methods accept a nil *Queue. Mutating methods report ErrInvalidQueue,
// Size reports 0, and Free, Reverse and Sort do nothing.
//
// Queue is not safe for concurrent use. Callers sharing a queue between goroutines
// must serialize access themselves.
//
// Usage Example:
//
//	q, _ := strqueue.New()
//	defer q.Free()
//
//	_ = q.InsertTail("banana")
//	_ = q.InsertTail("apple")
//	_ = q.InsertHead("cherry")
//
//	buf := make([]byte, 4)
//	n, _ := q.RemoveHead(buf) // buf[:n] == "che", buf[n] == 0
//
//	q.Sort() // [apple banana]
package strqueue
