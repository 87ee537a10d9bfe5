package grid

import (
	"errors"
	"fmt"
)

// Errors returned by grid constructors.
var (
	ErrInvalidShape = errors.New("grid: invalid shape")
	ErrRaggedRows   = errors.New("grid: rows have differing lengths")
	ErrSizeMismatch = errors.New("grid: data length does not match shape")
)

// Grid is a dense rows-by-cols matrix of float64 values stored in a flat
// row-major buffer. The zero value is an empty grid.
type Grid struct {
	rows int
	cols int
	data []float64
}

// New returns a zero-filled Grid with the given shape.
// Both dimensions must be positive.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromRows builds a Grid by copying a slice of equal-length rows.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidShape)
	}

	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(r), cols)
		}
	}

	g := &Grid{
		rows: len(rows),
		cols: cols,
		data: make([]float64, len(rows)*cols),
	}
	for i, r := range rows {
		copy(g.data[i*cols:(i+1)*cols], r)
	}
	return g, nil
}

// FromSlice wraps an existing row-major slice without copying.
// Mutations to the slice are visible through the Grid and vice versa.
func FromSlice(rows, cols int, data []float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrSizeMismatch, len(data), rows*cols)
	}
	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the total number of elements.
func (g *Grid) Len() int {
	return g.rows * g.cols
}

// At returns the value at row r, column c.
// Panics if the index is out of range.
func (g *Grid) At(r, c int) float64 {
	g.check(r, c)
	return g.data[r*g.cols+c]
}

// Set stores v at row r, column c.
// Panics if the index is out of range.
func (g *Grid) Set(r, c int, v float64) {
	g.check(r, c)
	g.data[r*g.cols+c] = v
}

func (g *Grid) check(r, c int) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", r, c, g.rows, g.cols))
	}
}

// Row returns row r of the grid as a view into the backing buffer.
// Panics if r is out of range.
func (g *Grid) Row(r int) []float64 {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("grid: row %d out of range %dx%d", r, g.rows, g.cols))
	}
	return g.data[r*g.cols : (r+1)*g.cols]
}

// Data returns the backing row-major slice.
func (g *Grid) Data() []float64 {
	return g.data
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// ToRows returns the grid contents as a freshly allocated slice of rows.
func (g *Grid) ToRows() [][]float64 {
	out := make([][]float64, g.rows)
	for i := range out {
		out[i] = make([]float64, g.cols)
		copy(out[i], g.Row(i))
	}
	return out
}

// Fill sets every element to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Zero sets every element to 0.
func (g *Grid) Zero() {
	g.Fill(0)
}
