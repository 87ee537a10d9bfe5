package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/conv"
	"github.com/cwbudde/algo-conv/dsp/kernel"
)

func ExampleMovingAverage() {
	// Smooth a noisy step with a 2-tap average.
	signal := []float64{0, 0, 1, 1}

	ma, _ := kernel.MovingAverage(2)
	smoothed, _ := conv.ConvolveMode(signal, ma, conv.ModeSame)

	fmt.Println(smoothed)

	// Output:
	// [0 0.5 1 0.5]
}

func ExampleFirstDifference() {
	// Differencing a step marks its edge.
	signal := []float64{0, 0, 1, 1}

	diff, _ := conv.ConvolveMode(signal, kernel.FirstDifference(), conv.ModeFull)
	fmt.Println(diff)

	// Output:
	// [0 0 1 0 -1]
}

func ExampleEcho() {
	// An echo kernel mixes the signal with a delayed, attenuated copy.
	e, _ := kernel.Echo(2, 0.5)

	out, _ := conv.ConvolveMode([]float64{1, 2}, e, conv.ModeFull)
	fmt.Println(out)

	// Output:
	// [1 2 0.5 1]
}
