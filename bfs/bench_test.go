package bfs_test

import (
	"testing"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/roadmap/maptest"
)

func BenchmarkBFS_Map40(b *testing.B) {
	m := maptest.Map40()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, 8)
	}
}
