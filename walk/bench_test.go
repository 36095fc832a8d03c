package walk_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nodevec/builder"
	"github.com/katalvlaran/nodevec/walk"
)

// BenchmarkRandomWalker_Grid measures DeepWalk-sized generation on a 30×30 lattice.
func BenchmarkRandomWalker_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	w := walk.RandomWalker{Number: 10, Length: 80}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Generate(g, rand.New(rand.NewSource(int64(i))))
	}
}

// BenchmarkBiasedWalker_Grid measures the second-order sampler on the same lattice.
func BenchmarkBiasedWalker_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	w := walk.BiasedWalker{Number: 10, Length: 80, P: 0.5, Q: 2}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Generate(g, rand.New(rand.NewSource(int64(i))))
	}
}
