package benchmark_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/dzonerzy/go-argparse/argparse"
	argio "github.com/dzonerzy/go-argparse/io"
)

func newBenchParser(n int) *argparse.Parser {
	args := make([]*argparse.Argument, 0, n+1)
	for i := 0; i < n; i++ {
		args = append(args, argparse.Optional[int64](fmt.Sprintf("--opt%d", i)).Default(int64(i)).Usage("an option").MustBuild())
	}
	args = append(args, argparse.Positional[string]("file").Usage("input file").MustBuild())
	return argparse.MustNewParser("bench", args, argparse.WithIO(argio.New().WithOut(io.Discard).WithErr(io.Discard)))
}

func BenchmarkParse_Scaling(b *testing.B) {
	for _, n := range []int{1, 10, 50} {
		p := newBenchParser(n)
		args := []string{"--opt0", "42", "input.txt"}
		b.Run(fmt.Sprintf("options=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = p.Parse(args)
			}
		})
	}
}

func BenchmarkParse_Error(b *testing.B) {
	p := newBenchParser(10)
	args := []string{"input.txt", "--opt00"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args)
	}
}

func BenchmarkParse_Parallel(b *testing.B) {
	p := newBenchParser(10)
	args := []string{"--opt3", "7", "input.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = p.Parse(args)
		}
	})
}

func BenchmarkResult_Lookup(b *testing.B) {
	p := newBenchParser(10)
	res, err := p.Parse([]string{"--opt3", "7", "input.txt"})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = res.Int("opt3")
		_, _ = res.String("file")
	}
}

func BenchmarkDescription(b *testing.B) {
	p := newBenchParser(10)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Description()
	}
}
