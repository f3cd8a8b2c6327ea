//nolint:testpackage // using package name 'benchmark' to access internal packages
package benchmark

import (
	"testing"

	pool "github.com/dzonerzy/go-argparse/internal/pool"
)

// Category: pool

type scratch struct {
	values map[string]int64
	seen   map[int]struct{}
}

func newScratch() *scratch {
	return &scratch{values: make(map[string]int64, 8), seen: make(map[int]struct{}, 8)}
}

func BenchmarkPool_GetPut(b *testing.B) {
	p := pool.NewPool(func() *[]string {
		s := make([]string, 0, 16)
		return &s
	})

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			obj := p.Get()
			*obj = append((*obj)[:0], "--port", "9000")
			p.Put(obj)
		}
	})
}

func BenchmarkPool_vs_Direct(b *testing.B) {
	p := pool.NewPoolWithReset(newScratch, func(s *scratch) {
		pool.ClearMap(s.values)
		pool.ClearMap(s.seen)
	})

	b.Run("Pool", func(b *testing.B) {
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				s := p.Get()
				s.values["--port"] = 9000
				s.seen[0] = struct{}{}
				p.Put(s)
			}
		})
	})

	b.Run("Direct", func(b *testing.B) {
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				s := newScratch()
				s.values["--port"] = 9000
				s.seen[0] = struct{}{}
				_ = s
			}
		})
	})
}
