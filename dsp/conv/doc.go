// Package conv computes discrete convolution of finite signals with finite
// kernels, in one and two dimensions.
//
// Convolution combines a signal with a kernel (impulse response) by summing
// shifted, scaled copies of the kernel. The package offers two strategies:
//
//   - Direct convolution: O(N*M) time-domain evaluation, exact and best for
//     short kernels
//   - Overlap-add (OLA): FFT-based block convolution, efficient for long
//     kernels, numerically equivalent to direct within floating-point tolerance
//
// # Usage
//
// For one-shot convolution use the package functions:
//
//	result, err := conv.Convolve(signal, kernel)              // full result, auto algorithm
//	result, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//	result, err := conv.Direct(signal, kernel)                // force direct
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// Two-dimensional convolution operates on [grid.Grid] values:
//
//	out, err := conv.Convolve2D(image, kernel, conv.ModeFull)
//
// # Output modes
//
// Three output-length conventions are supported. For inputs of length n and m:
//
//   - [ModeFull]: length n+m-1, every position with nonzero overlap
//   - [ModeSame]: length max(n, m), centered on the full result; when the
//     total trim is odd the extra sample is removed from the leading side
//   - [ModeValid]: length max(n, m)-min(n, m)+1, only positions where the
//     shorter operand overlaps the longer one completely
//
// The same rules apply per dimension in 2-D. ModeValid in 2-D additionally
// requires that one operand contain the other in every dimension.
//
// # Numeric semantics
//
// All routines are pure: inputs are never modified and results are freshly
// allocated. For each output sample, contributions accumulate in increasing
// index order of the first operand, so results are bit-reproducible across
// runs. NaN and Inf values propagate per IEEE-754; a NaN anywhere in an
// overlapping window poisons that output sample. The FFT path spreads a
// non-finite value across its whole block, so use [Direct] when positional
// propagation of NaN or Inf matters.
package conv
