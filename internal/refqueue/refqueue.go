// Package refqueue provides a slice backed model of strqueue.Queue.
//
// The model favors obviousness over efficiency and serves as the oracle that
// randomized and fuzz tests compare the linked implementation against.
package refqueue

import (
	"slices"
	"strings"
)

// Model holds the expected sequence of values, head first.
type Model struct {
	items []string
}

// New creates an empty Model with room for prealloc values.
func New(prealloc int) *Model {
	return &Model{items: make([]string, 0, prealloc)}
}

// InsertHead adds value before the first item.
func (m *Model) InsertHead(value string) {
	m.items = slices.Insert(m.items, 0, value)
}

// InsertTail adds value after the last item.
func (m *Model) InsertTail(value string) {
	m.items = append(m.items, value)
}

// RemoveHead removes the first item and returns it truncated the way a buffer of
// bufSize bytes would receive it. It returns false if the model is empty or bufSize
// leaves no room for a terminator, in which case nothing is removed.
func (m *Model) RemoveHead(bufSize int) (string, bool) {
	if len(m.items) == 0 || bufSize <= 0 {
		return "", false
	}

	item := m.items[0]
	m.items = m.items[1:]
	if len(item) > bufSize-1 {
		item = item[:bufSize-1]
	}

	return item, true
}

// Reverse reverses the order of the items.
func (m *Model) Reverse() {
	slices.Reverse(m.items)
}

// Sort orders the items ascending, keeping equal items in their current order.
func (m *Model) Sort() {
	slices.SortStableFunc(m.items, strings.Compare)
}

// Reset empties the model, reusing its backing array.
func (m *Model) Reset() {
	m.items = m.items[:0]
}

// IsEmpty returns true if the model holds no items.
func (m *Model) IsEmpty() bool {
	return len(m.items) == 0
}

// Size returns the number of items.
func (m *Model) Size() int {
	return len(m.items)
}

// Values returns a copy of the items, head first.
func (m *Model) Values() []string {
	return slices.Clone(m.items)
}
