package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrInvalidMode    = errors.New("conv: invalid mode")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Kernel length below which Convolve prefers the direct algorithm over the
// FFT path. Determined empirically; the crossover sits around 64-128 samples
// for a few-thousand-sample signal.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
// For longer kernels, use [Convolve] or an [OverlapAdd] convolver.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
//
// For every output index t, contributions a[k]*b[t-k] accumulate in
// increasing order of k, so the result is reproducible bit-for-bit.
func DirectTo(dst, a, b []float64) {
	n := len(a)
	m := len(b)

	core.Zero(dst)

	// Vectorized path pays off once the kernel spans a few lanes.
	const simdThreshold = 4
	if m >= simdThreshold {
		directToSIMD(dst, a, b, n, m)
	} else {
		directToScalar(dst, a, b, n, m)
	}
}

// directToScalar performs scalar convolution for small kernels.
func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD vectorizes the inner loop: for each input sample the kernel is
// scaled once and accumulated into the destination window.
func directToSIMD(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs full linear convolution with automatic algorithm
// selection: direct convolution for short kernels, FFT-based overlap-add
// otherwise. The two paths agree within floating-point tolerance.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Convolution is commutative; keep the longer operand as the signal.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs linear convolution and returns the portion of the
// result selected by mode. See [Mode] for the output-length conventions.
//
// Fails with [ErrInvalidMode] for an unrecognized mode and with
// [ErrEmptyInput] or [ErrEmptyKernel] when an operand has zero length.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	if !mode.known() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return mode.trim(full, len(a), len(b)), nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
