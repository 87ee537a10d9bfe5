package prob

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/conv"
	"github.com/cwbudde/algo-conv/dsp/core"
)

// SumDistribution returns the distribution of the sum of n independent draws
// from the given mass vector, computed by n-1 full-mode self-convolutions.
// The result has length n*(len(pmf)-1) + 1.
func SumDistribution(pmf []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if err := Validate(pmf, 0); err != nil {
		return nil, err
	}

	// Double-buffer the repeated convolutions; the spare buffer grows with
	// the result and is recycled between steps.
	out := append([]float64(nil), pmf...)
	var buf []float64
	for range n - 1 {
		buf = core.EnsureLen(buf, len(out)+len(pmf)-1)
		conv.DirectTo(buf, out, pmf)
		out, buf = buf, out
	}
	return out, nil
}

// SelfConvolution lazily produces the sequence of distributions obtained by
// repeatedly convolving a mass vector with itself in full mode. Each step is
// a pure function of the previous distribution and the fixed kernel, so the
// sequence is restartable via Reset.
type SelfConvolution struct {
	kernel  []float64
	current []float64
	step    int
}

// NewSelfConvolution creates an iterator seeded with the given mass vector.
func NewSelfConvolution(pmf []float64) (*SelfConvolution, error) {
	if err := Validate(pmf, 0); err != nil {
		return nil, err
	}

	kernel := append([]float64(nil), pmf...)
	return &SelfConvolution{
		kernel:  kernel,
		current: kernel,
	}, nil
}

// Step returns the number of convolutions performed so far.
func (s *SelfConvolution) Step() int {
	return s.step
}

// Current returns a copy of the current distribution. Before the first call
// to Next this is the seed vector, the distribution of a single draw.
func (s *SelfConvolution) Current() []float64 {
	return append([]float64(nil), s.current...)
}

// Next performs one self-convolution step and returns a copy of the new
// distribution, the distribution of a sum of Step()+1 draws.
func (s *SelfConvolution) Next() ([]float64, error) {
	next, err := conv.Direct(s.current, s.kernel)
	if err != nil {
		return nil, err
	}

	s.current = next
	s.step++
	return append([]float64(nil), next...), nil
}

// Reset restarts the sequence at the seed distribution.
func (s *SelfConvolution) Reset() {
	s.current = s.kernel
	s.step = 0
}
