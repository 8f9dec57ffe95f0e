package strqueue

// Sort orders the elements ascending by byte-wise comparison of their values.
//
// Sort is a stable top-down merge sort that relinks the existing nodes; it neither
// allocates nor releases storage. It is a no-op on a nil queue or a queue with fewer
// than two elements.
func (q *Queue) Sort() {
	if q == nil || q.count < 2 {
		return
	}

	q.head = mergeSort(q.head)

	// the old tail is still in the chain; walk forward to the new last node.
	for q.tail.next != nil {
		q.tail = q.tail.next
	}
}

// mergeSort sorts the nil-terminated chain starting at head and returns the new head.
func mergeSort(head *node) *node {
	if head == nil || head.next == nil {
		return head
	}

	// slow stops on the last node of the left half.
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right := slow.next
	slow.next = nil

	return merge(mergeSort(head), mergeSort(right))
}

// merge joins two ascending chains. On equal values the node from lhs goes first.
func merge(lhs, rhs *node) *node {
	var head, tail *node
	for lhs != nil && rhs != nil {
		var next *node
		if lhs.value <= rhs.value {
			next, lhs = lhs, lhs.next
		} else {
			next, rhs = rhs, rhs.next
		}

		if head == nil {
			head = next
		} else {
			tail.next = next
		}
		tail = next
	}

	rest := lhs
	if rest == nil {
		rest = rhs
	}
	if tail == nil {
		return rest
	}
	tail.next = rest

	return head
}
