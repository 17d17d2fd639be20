// Package matrix_test provides benchmarks for the kernels exercised by consumers.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pcmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{4, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkI int
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := matrix.NewGenerator(matrix.WithSeed(1337))
			A, err := g.Generate(n)
			if err != nil {
				b.Fatal(err)
			}
			B, err := g.Generate(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkGenerateRandom(b *testing.B) {
	b.ReportAllocs()
	g := matrix.NewGenerator(matrix.WithSeed(4242))
	for i := 0; i < b.N; i++ {
		m, err := g.Generate(matrix.ModeRandom)
		if err != nil {
			b.Fatal(err)
		}
		sinkI += g.Sum(m)
	}
}
