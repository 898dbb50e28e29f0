// SPDX-License-Identifier: MIT
package las_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
)

func ExampleEngine_Sample() {
	model, _ := covfn.NewModel(covfn.Markov, 1, 1, 1)
	eng, err := las.New(las.Config{NX: 64, NY: 64, XLength: 10, YLength: 10}, model)
	if err != nil {
		fmt.Println(err)
		return
	}
	f := eng.Sample(las.NewRand(42))
	fmt.Println(eng.Grid())
	fmt.Printf("%dx%d cells of %.5f\n", f.NX, f.NY, f.DX)
	// Output:
	// 64x64 = (16x16)·2^2
	// 64x64 cells of 0.15625
}

// Coarsening any stage reproduces the stage before it.
func ExampleEngine_SampleStages() {
	model, _ := covfn.NewModel(covfn.MarkovSeparable, 2, 1, 1)
	eng, _ := las.New(las.Config{NX: 32, NY: 16, XLength: 4, YLength: 2, MaxBaseCells: 8}, model)
	stages, _ := eng.SampleStages(context.Background(), las.NewRand(1))

	for s := 0; s+1 < len(stages); s++ {
		up, _ := stages[s+1].Coarsen()
		var worst float64
		for k := range up.Data {
			worst = math.Max(worst, math.Abs(up.Data[k]-stages[s].Data[k]))
		}
		fmt.Printf("stage %d %dx%d consistent=%v\n", s, stages[s].NX, stages[s].NY, worst < 1e-10)
	}
	// Output:
	// stage 0 4x2 consistent=true
	// stage 1 8x4 consistent=true
	// stage 2 16x8 consistent=true
}

func ExampleEngine_Ensemble() {
	model, _ := covfn.NewModel(covfn.Gaussian, 1, 1, 1)
	eng, _ := las.New(las.Config{NX: 16, NY: 16, XLength: 4, YLength: 4, MaxBaseCells: 16}, model,
		las.WithWorkers(4))

	sums := make([]float64, 8)
	err := eng.Ensemble(context.Background(), len(sums), 7, func(r int, f *las.Field) error {
		for _, v := range f.Data {
			sums[r] += v * v
		}
		return nil
	})
	fmt.Println(err, len(sums))
	// Output:
	// <nil> 8
}
