// Package grid provides a dense 2-D float64 array backed by a flat,
// row-major buffer. It is the grid representation consumed by the 2-D
// convolution routines: an explicit rows-by-cols shape with bounds-checked
// indexing instead of nested slices of varying length.
package grid
