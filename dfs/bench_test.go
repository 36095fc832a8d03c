package dfs_test

import (
	"testing"

	"github.com/katalvlaran/nodevec/builder"
	"github.com/katalvlaran/nodevec/dfs"
)

// BenchmarkDFS_Grid measures a full recursive sweep on a 100×100 lattice.
func BenchmarkDFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkEulerTour_Star measures the tour of a wide, shallow tree.
func BenchmarkEulerTour_Star(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.EulerTour(g, 0)
	}
}
