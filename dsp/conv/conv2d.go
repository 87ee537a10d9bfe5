package conv

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/grid"
	"github.com/cwbudde/algo-vecmath"
)

// Direct2D performs direct two-dimensional linear convolution of a and b.
// Returns a new grid of shape (a.Rows()+b.Rows()-1) x (a.Cols()+b.Cols()-1).
//
// Cost is O(a.Rows()*a.Cols()*b.Rows()*b.Cols()); for the kernel sizes this
// package targets a direct evaluation is exact and fast enough.
func Direct2D(a, b *grid.Grid) (*grid.Grid, error) {
	if a == nil || a.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if b == nil || b.Len() == 0 {
		return nil, ErrEmptyKernel
	}

	dst, err := grid.New(a.Rows()+b.Rows()-1, a.Cols()+b.Cols()-1)
	if err != nil {
		return nil, err
	}

	direct2DTo(dst, a, b)
	return dst, nil
}

// direct2DTo accumulates a*b into dst, which must be zeroed and have full
// output shape. Contributions arrive in row-major order over a, then
// row-major over b, so every output cell sums in a fixed order.
func direct2DTo(dst, a, b *grid.Grid) {
	bc := b.Cols()

	const simdThreshold = 4

	var temp []float64
	if bc >= simdThreshold {
		temp = make([]float64, bc)
	}

	for p := range a.Rows() {
		arow := a.Row(p)
		for q, s := range arow {
			for i := range b.Rows() {
				brow := b.Row(i)
				drow := dst.Row(p+i)[q : q+bc]

				if temp != nil {
					vecmath.ScaleBlock(temp, brow, s)
					vecmath.AddBlockInPlace(drow, temp)
				} else {
					for j, bv := range brow {
						drow[j] += s * bv
					}
				}
			}
		}
	}
}

// Convolve2D performs two-dimensional convolution and returns the portion of
// the result selected by mode. The full/same/valid length rules apply to
// rows and columns independently.
//
// ModeValid additionally requires that one operand contain the other in both
// dimensions; mixed containment (each operand larger in one dimension) fails
// with [ErrInvalidMode].
func Convolve2D(a, b *grid.Grid, mode Mode) (*grid.Grid, error) {
	if !mode.known() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	if a == nil || a.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if b == nil || b.Len() == 0 {
		return nil, ErrEmptyKernel
	}

	if mode == ModeValid {
		aContainsB := a.Rows() >= b.Rows() && a.Cols() >= b.Cols()
		bContainsA := b.Rows() >= a.Rows() && b.Cols() >= a.Cols()
		if !aContainsB && !bContainsA {
			return nil, fmt.Errorf("%w: valid mode needs one operand to contain the other, have %dx%d and %dx%d",
				ErrInvalidMode, a.Rows(), a.Cols(), b.Rows(), b.Cols())
		}
	}

	full, err := Direct2D(a, b)
	if err != nil {
		return nil, err
	}
	if mode == ModeFull {
		return full, nil
	}

	r0, rn := mode.span(a.Rows(), b.Rows())
	c0, cn := mode.span(a.Cols(), b.Cols())

	// Gather the trimmed window into a fresh flat buffer and wrap it.
	data := make([]float64, rn*cn)
	for r := range rn {
		copy(data[r*cn:(r+1)*cn], full.Row(r0+r)[c0:c0+cn])
	}
	return grid.FromSlice(rn, cn, data)
}
