package strqueue

import (
	"strconv"
	"testing"
)

func BenchmarkQueue_InsertRemove(b *testing.B) {
	q, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer q.Free()

	buf := make([]byte, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.InsertTail("benchmark-value")
		_, _ = q.RemoveHead(buf)
	}
}

func BenchmarkQueue_Sort_1000(b *testing.B) {
	benchQueueSort(b, 1000)
}

func BenchmarkQueue_Sort_100000(b *testing.B) {
	benchQueueSort(b, 100000)
}

func benchQueueSort(b *testing.B, count int) {
	q, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer q.Free()

	for i := 0; i < count; i++ {
		_ = q.InsertTail(strconv.Itoa((i * 7919) % count))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Sort()
		b.StopTimer()
		q.Reverse()
		b.StartTimer()
	}
}
