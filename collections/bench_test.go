package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-collections/collections"
)

// makeInts creates a list Collection of size n for benchmarks.
func makeInts(n int) *collections.Collection {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.Collect(items)
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(v, _ any) bool { return v.(int)%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Map(func(v, _ any) any { return v.(int) * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(acc int, v, _ any) int { return acc + v.(int) }, 0)
	}
}

func BenchmarkSort(b *testing.B) {
	c := makeInts(10_000).Shuffle()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort()
	}
}

func BenchmarkSortBy(b *testing.B) {
	c := makeInts(1_000).Map(func(v, _ any) any { return map[string]any{"n": v} }).Shuffle()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.SortBy("n")
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GroupBy(func(v any) any {
			if v.(int)%2 == 0 {
				return "even"
			}
			return "odd"
		})
	}
}

func BenchmarkShuffle(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Shuffle()
	}
}

func BenchmarkUnique(b *testing.B) {
	// 50% duplicates
	items := make([]int, 1_000)
	for i := range items {
		items[i] = i % 500
	}
	c := collections.Collect(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Unique()
	}
}

func BenchmarkChunk(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Chunk(100)
	}
}

func BenchmarkSum(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sum()
	}
}

func BenchmarkFlatten(b *testing.B) {
	c := makeInts(1_000).Chunk(10).Chunk(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Flatten()
	}
}

func BenchmarkPluckDotPath(b *testing.B) {
	c := makeInts(10_000).Map(func(v, _ any) any {
		return map[string]any{"profile": map[string]any{"age": v}}
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Pluck("profile.age")
	}
}

func BenchmarkZip(b *testing.B) {
	a := makeInts(10_000)
	other := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Zip(other)
	}
}
