package ring

import "testing"

func BenchmarkPush(b *testing.B) {
	r := New[int](1000)
	for i := range 1000 {
		r.Push(i)
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		r.Push(i)
		i++
	}
}

func BenchmarkSliceWindowPush(b *testing.B) {
	buf := make([]int, 1000)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		buf = append(buf[1:], i)
		i++
	}
}
