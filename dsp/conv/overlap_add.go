package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-conv/dsp/core"
)

// OverlapAdd implements FFT-based linear convolution using the overlap-add
// method. The kernel spectrum and FFT plan are computed once, so the type is
// efficient when many signals are convolved with the same kernel.
//
// The input is split into non-overlapping blocks; each block is zero-padded,
// multiplied with the kernel spectrum in the frequency domain, and the
// transformed blocks are added back together with overlap.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int // blockSize + kernelLen - 1, rounded up to a power of 2

	plan *algofft.Plan[complex128]

	scratchIn  []complex128
	scratchOut []complex128
}

// NewOverlapAdd creates an overlap-add convolver for the given kernel.
// blockSize determines how input signals are segmented; pass 0 to pick an
// automatic size based on the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		// Block roughly the kernel size, but not so small that the
		// per-block FFT overhead dominates.
		blockSize = nextPowerOf2(len(kernel))
		if blockSize < 256 {
			blockSize = 256
		}
	}

	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT:  make([]complex128, fftSize),
		kernelLen:  len(kernel),
		blockSize:  blockSize,
		fftSize:    fftSize,
		plan:       plan,
		scratchIn:  make([]complex128, fftSize),
		scratchOut: make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input segmentation size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the transform size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process convolves input with the kernel and returns the full linear
// convolution result of length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outputLen := len(input) + oa.kernelLen - 1
	output := make([]float64, outputLen)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		for i := range oa.scratchIn {
			oa.scratchIn[i] = 0
		}
		for i := range blockLen {
			oa.scratchIn[i] = complex(input[start+i], 0)
		}

		if err := oa.plan.Forward(oa.scratchIn, oa.scratchIn); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.scratchOut {
			oa.scratchOut[i] = oa.scratchIn[i] * oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.scratchOut, oa.scratchOut); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// Each block contributes blockLen + kernelLen - 1 samples; the tail
		// overlaps the head of the next block's contribution.
		tail := blockLen + oa.kernelLen - 1
		for i := 0; i < tail && start+i < outputLen; i++ {
			output[start+i] += real(oa.scratchOut[i])
		}
	}

	return output, nil
}

// ProcessTo convolves input and writes into a pre-allocated output slice of
// length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	want := len(input) + oa.kernelLen - 1
	if len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	result, err := oa.Process(input)
	if err != nil {
		return err
	}

	core.CopyInto(output, result)
	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution, creating a
// temporary convolver. For repeated use with the same kernel, create an
// [OverlapAdd] once and call Process.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
