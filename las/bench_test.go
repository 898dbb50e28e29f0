// SPDX-License-Identifier: MIT
package las_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lasfield/las"
)

var sinkField *las.Field

func BenchmarkNew(b *testing.B) {
	model := markov(b, 1)
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := las.New(las.Config{NX: n, NY: n, XLength: 10, YLength: 10}, model); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSample(b *testing.B) {
	model := markov(b, 1)
	for _, n := range []int{64, 256, 1024} {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("%dx%d/workers=%d", n, n, workers), func(b *testing.B) {
				e := mustEngine(b, model, n, n, 10, 10, 0, las.WithStageWorkers(workers))
				rng := las.NewRand(1)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					f, err := e.SampleContext(context.Background(), rng)
					if err != nil {
						b.Fatal(err)
					}
					sinkField = f
				}
			})
		}
	}
}
