package kernel

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/grid"
	"github.com/cwbudde/algo-vecmath"
)

// Box returns an n-by-n averaging kernel with unit sum, the 2-D analogue of
// [MovingAverage]. Convolving an image with it in same mode blurs uniformly.
func Box(n int) (*grid.Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, n, n)
	}

	g, err := grid.New(n, n)
	if err != nil {
		return nil, err
	}

	g.Fill(1 / float64(n*n))
	return g, nil
}

// Gaussian2D returns a unit-sum separable Gaussian kernel of shape
// (2*radius+1) x (2*radius+1), built as the outer product of the 1-D
// Gaussian with itself.
func Gaussian2D(sigma float64, radius int) (*grid.Grid, error) {
	line, err := Gaussian(sigma, radius)
	if err != nil {
		return nil, err
	}

	n := len(line)
	g, err := grid.New(n, n)
	if err != nil {
		return nil, err
	}

	for r := range n {
		vecmath.ScaleBlock(g.Row(r), line, line[r])
	}

	// The outer product of two unit-sum vectors already sums to 1; rescale
	// anyway to absorb rounding.
	vecmath.ScaleBlockInPlace(g.Data(), 1/vecmath.Sum(g.Data()))
	return g, nil
}

// Laplacian returns the 3x3 four-neighbour Laplacian kernel, a 2-D
// differencing filter that responds to edges and zero-sums on flat regions.
func Laplacian() *grid.Grid {
	g, _ := grid.FromRows([][]float64{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})
	return g
}
