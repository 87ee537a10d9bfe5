package prob

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultTolerance is the permitted deviation of the total mass from 1.
const DefaultTolerance = 1e-9

// Errors returned by mass-vector functions.
var (
	ErrEmptyMass     = errors.New("prob: empty mass vector")
	ErrNegativeMass  = errors.New("prob: negative mass")
	ErrNotNormalized = errors.New("prob: mass does not sum to 1")
	ErrZeroMass      = errors.New("prob: total mass is zero")
	ErrInvalidCount  = errors.New("prob: count must be at least 1")
)

// Validate checks that p is a probability mass vector: non-empty,
// non-negative, and summing to 1 within eps. Pass eps <= 0 to use
// [DefaultTolerance].
func Validate(p []float64, eps float64) error {
	if eps <= 0 {
		eps = DefaultTolerance
	}
	if len(p) == 0 {
		return ErrEmptyMass
	}

	for i, v := range p {
		if v < 0 {
			return fmt.Errorf("%w: p[%d] = %v", ErrNegativeMass, i, v)
		}
	}

	sum := vecmath.Sum(p)
	if diff := sum - 1; diff > eps || diff < -eps {
		return fmt.Errorf("%w: sum = %v", ErrNotNormalized, sum)
	}
	return nil
}

// IsMassFunction reports whether p is a valid probability mass vector
// within eps.
func IsMassFunction(p []float64, eps float64) bool {
	return Validate(p, eps) == nil
}

// Normalize scales a non-negative vector to unit total mass and returns a
// new slice. Fails if the input is empty, contains negative values, or sums
// to zero.
func Normalize(p []float64) ([]float64, error) {
	if len(p) == 0 {
		return nil, ErrEmptyMass
	}
	for i, v := range p {
		if v < 0 {
			return nil, fmt.Errorf("%w: p[%d] = %v", ErrNegativeMass, i, v)
		}
	}

	sum := vecmath.Sum(p)
	if sum == 0 {
		return nil, ErrZeroMass
	}

	out := make([]float64, len(p))
	vecmath.ScaleBlock(out, p, 1/sum)
	return out, nil
}

// Mean returns the expected value of a mass vector over outcomes 0..len(p)-1.
func Mean(p []float64) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyMass
	}

	mean := 0.0
	for i, v := range p {
		mean += float64(i) * v
	}
	return mean, nil
}

// Variance returns the variance of a mass vector over outcomes 0..len(p)-1.
func Variance(p []float64) (float64, error) {
	mean, err := Mean(p)
	if err != nil {
		return 0, err
	}

	variance := 0.0
	for i, v := range p {
		d := float64(i) - mean
		variance += d * d * v
	}
	return variance, nil
}
