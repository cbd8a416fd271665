package model

import "math/rand/v2"

// =============================================================================
// RANDOM SOURCE - Uniform [0, 1) draws
// =============================================================================

// RandomSource provides uniform random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it directly.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic PCG stream. Two sources built from
// the same seed produce the same sequence of draws.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed cycle of draws. Intended for tests that need
// to pin every draw the Market makes.
type SequenceSource struct {
	values []float64
	next   int
	draws  int
}

// NewSequenceSource cycles through values in order. With no values it always
// returns 0.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Draws reports how many values have been consumed so far.
func (s *SequenceSource) Draws() int { return s.draws }
