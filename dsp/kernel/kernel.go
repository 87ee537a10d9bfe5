package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-conv/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by kernel constructors.
var (
	ErrInvalidSize  = errors.New("kernel: size must be positive")
	ErrInvalidSigma = errors.New("kernel: sigma must be positive")
)

// Identity returns the unit impulse kernel. Convolving with it leaves any
// signal unchanged.
func Identity() []float64 {
	return []float64{1}
}

// FirstDifference returns the two-tap differencing kernel [1, -1], whose
// convolution output approximates the discrete derivative of the input.
func FirstDifference() []float64 {
	return []float64{1, -1}
}

// Delay returns an impulse kernel delayed by n samples. Convolving with it
// shifts a signal n samples later.
func Delay(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: delay %d", ErrInvalidSize, n)
	}

	out := make([]float64, n+1)
	out[n] = 1
	return out, nil
}

// Echo returns a kernel mixing the dry signal with a single delayed copy:
// a unit tap at 0 and a tap of the given level at delay samples. The level
// is clamped to [0, 1].
func Echo(delay int, level float64) ([]float64, error) {
	if delay < 1 {
		return nil, fmt.Errorf("%w: delay %d", ErrInvalidSize, delay)
	}

	out := make([]float64, delay+1)
	out[0] = 1
	out[delay] = core.Clamp(level, 0, 1)
	return out, nil
}

// MovingAverage returns an n-tap boxcar kernel with unit sum. Convolving
// with it in same mode yields the centered moving average of the input.
func MovingAverage(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d taps", ErrInvalidSize, n)
	}

	out := make([]float64, n)
	w := 1 / float64(n)
	for i := range out {
		out[i] = w
	}
	return out, nil
}

// Gaussian returns a unit-sum Gaussian kernel of length 2*radius+1 with the
// given standard deviation in samples.
func Gaussian(sigma float64, radius int) ([]float64, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}
	if radius < 1 {
		return nil, fmt.Errorf("%w: radius %d", ErrInvalidSize, radius)
	}

	out := make([]float64, 2*radius+1)
	inv := 1 / (2 * sigma * sigma)
	for i := range out {
		d := float64(i - radius)
		out[i] = math.Exp(-d * d * inv)
	}

	vecmath.ScaleBlockInPlace(out, 1/vecmath.Sum(out))
	return out, nil
}
