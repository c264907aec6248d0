package semantic_test

import (
	"fmt"
	"testing"

	"github.com/hasbyte1/go-semantic-collections/semantic"
)

// makeInts creates a Sequence of n Ints for benchmarks.
func makeInts(n int) *semantic.Sequence {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return semantic.Numbers(items...)
}

// makeTree creates a mapping with width keys per level, depth levels deep.
func makeTree(width, depth int) *semantic.Mapping {
	m := semantic.NewMapping()
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("k%d", i)
		if depth > 1 {
			m.Set(key, semantic.Map(makeTree(width, depth-1)))
		} else {
			m.Set(key, semantic.Int(int64(i)))
		}
	}
	return m
}

func BenchmarkSequenceAdd(b *testing.B) {
	x, y := makeInts(10_000), makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Add(y)
	}
}

func BenchmarkMedian(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Median()
	}
}

func BenchmarkMode(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Mode()
	}
}

func BenchmarkWhere(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.WhereOp(semantic.OpGt, semantic.Int(5_000))
	}
}

func BenchmarkTransform(b *testing.B) {
	m := makeTree(10, 3)
	double := func(v semantic.Value) (semantic.Value, error) { return semantic.Mul(v, semantic.Int(2)) }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Transform(double)
	}
}

func BenchmarkMerge(b *testing.B) {
	x, y := makeTree(10, 3), makeTree(10, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Merge(y, nil)
	}
}

func BenchmarkDigest(b *testing.B) {
	m := makeTree(10, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Digest()
	}
}
