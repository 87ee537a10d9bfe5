// Package signal generates deterministic test and demo signals: sine waves,
// seeded white noise, steps, and random walks. Generators are reproducible:
// the same configuration and seed always produce the same samples.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate used by time-based generators.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
// Defaults: 48 kHz sample rate, seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Seed returns the configured random seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates a sine wave at the given frequency and amplitude.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Step generates a unit-step signal scaled by amplitude: zero before onset,
// amplitude from onset onwards.
func (g *Generator) Step(amplitude float64, onset, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: step samples must be > 0: %d", samples)
	}
	if onset < 0 || onset > samples {
		return nil, fmt.Errorf("signal: step onset out of range: %d", onset)
	}

	out := make([]float64, samples)
	for i := onset; i < samples; i++ {
		out[i] = amplitude
	}
	return out, nil
}

// WhiteNoise generates deterministic uniform white noise in
// [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// RandomWalk generates a deterministic Gaussian random walk: the cumulative
// sum of normal increments with standard deviation sigma*sqrt(dt), where dt
// is one sample period. The walk starts at the first increment, not at 0.
func (g *Generator) RandomWalk(sigma float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: walk samples must be > 0: %d", samples)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("signal: walk sigma must be >= 0: %f", sigma)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	scale := sigma * math.Sqrt(1/g.sampleRate)

	pos := 0.0
	for i := range out {
		pos += rng.NormFloat64() * scale
		out[i] = pos
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
