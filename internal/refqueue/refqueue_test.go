package refqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel(t *testing.T) {
	assert := assert.New(t)
	t.Run("Empty Model", func(t *testing.T) {
		m := New(1)

		assert.True(m.IsEmpty())
		assert.Equal(0, m.Size())
		_, ok := m.RemoveHead(8)
		assert.False(ok)
	})

	t.Run("Insert and Remove", func(t *testing.T) {
		m := New(1)

		m.InsertTail("banana")
		m.InsertTail("apple")
		m.InsertHead("cherry")
		assert.Equal([]string{"cherry", "banana", "apple"}, m.Values())

		item, ok := m.RemoveHead(4)
		assert.True(ok)
		assert.Equal("che", item)
		assert.Equal(2, m.Size())

		_, ok = m.RemoveHead(0)
		assert.False(ok)
		assert.Equal(2, m.Size()) // nothing removed without room for the terminator
	})

	t.Run("Reverse and Sort", func(t *testing.T) {
		m := New(4)
		for _, v := range []string{"b", "a", "c", "a"} {
			m.InsertTail(v)
		}

		m.Reverse()
		assert.Equal([]string{"a", "c", "a", "b"}, m.Values())

		m.Sort()
		assert.Equal([]string{"a", "a", "b", "c"}, m.Values())

		m.Reset()
		assert.True(m.IsEmpty())
	})
}
