package conv

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-conv/dsp/grid"
)

// Benchmark direct convolution with various sizes.
func BenchmarkDirect(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{256, 8},
		{256, 32},
		{1024, 8},
		{1024, 32},
		{1024, 64},
		{4096, 8},
		{4096, 32},
		{4096, 64},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Direct(signal, kernel)
			}
		})
	}
}

// Benchmark overlap-add convolution with various sizes.
func BenchmarkOverlapAdd(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 64},
		{1024, 128},
		{4096, 128},
		{4096, 256},
		{16384, 256},
		{16384, 1024},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = OverlapAddConvolve(signal, kernel)
			}
		})
	}
}

// Benchmark overlap-add with a pre-created convolver, amortizing plan setup.
func BenchmarkOverlapAddReuse(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{4096, 256},
		{16384, 256},
		{16384, 1024},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		oa, err := NewOverlapAdd(kernel, 0)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = oa.Process(signal)
			}
		})
	}
}

// Benchmark the automatic algorithm selection crossover region.
func BenchmarkConvolve(b *testing.B) {
	signal := makeTestSignal(4096)

	for _, kernelLen := range []int{8, 32, 64, 128, 512} {
		kernel := makeTestKernel(kernelLen)

		b.Run(fmt.Sprintf("kernel=%d", kernelLen), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Convolve(signal, kernel)
			}
		})
	}
}

// Benchmark 2-D direct convolution with image-like inputs.
func BenchmarkDirect2D(b *testing.B) {
	sizes := []struct {
		image  int
		kernel int
	}{
		{32, 3},
		{64, 3},
		{64, 5},
		{128, 5},
		{128, 9},
	}

	for _, size := range sizes {
		image := makeTestGrid(size.image, size.image)
		kernel := makeTestGrid(size.kernel, size.kernel)

		b.Run(fmt.Sprintf("image=%d_kernel=%d", size.image, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Direct2D(image, kernel)
			}
		})
	}
}

// Helper to create broadband test signals.
func makeTestSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/100) + 0.5*math.Cos(2*math.Pi*float64(i)/30)
	}
	return signal
}

// Helper to create lowpass-like (sinc-ish) test kernels.
func makeTestKernel(n int) []float64 {
	kernel := make([]float64, n)
	center := float64(n-1) / 2
	for i := range kernel {
		x := float64(i) - center
		if x == 0 {
			kernel[i] = 1
			continue
		}
		kernel[i] = math.Sin(x) / x
	}
	return kernel
}

// Helper to create deterministic test grids.
func makeTestGrid(rows, cols int) *grid.Grid {
	g, _ := grid.New(rows, cols)
	data := g.Data()
	for i := range data {
		data[i] = math.Sin(float64(i) / 7)
	}
	return g
}
