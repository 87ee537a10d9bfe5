// Package prob works with probability mass vectors: non-negative sequences
// summing to 1 that describe a discrete distribution over consecutive
// integer outcomes.
//
// Its core use is the convolution identity for sums of independent random
// variables: the distribution of X+Y is the convolution of the distributions
// of X and Y. Repeated self-convolution of a mass vector therefore yields the
// distribution of a sum of i.i.d. draws, which converges towards a Gaussian
// shape as the count grows:
//
//	coin := []float64{0.5, 0.5}
//	sum2, _ := prob.SumDistribution(coin, 2) // [0.25 0.5 0.25]
//
// [SelfConvolution] exposes the same process as a lazy, restartable iterator
// producing one distribution per step. Convolution of valid mass vectors
// preserves non-negativity and unit total mass up to floating-point rounding.
package prob
