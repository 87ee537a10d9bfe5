// Package kernel constructs common convolution kernels: smoothing averages,
// differencing filters, delayed echoes, and Gaussian taps, in one and two
// dimensions. Averaging kernels are normalized to unit sum so they preserve
// the mean level of the signal they are applied to.
package kernel
