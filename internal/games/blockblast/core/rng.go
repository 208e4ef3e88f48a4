package core

import "math/rand"

// Source is the random capability the engine consumes.
// Float64 returns a value in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a seeded math/rand generator.
// A fixed seed reproduces the same spawn sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Intn draws an int in [0, n) from src. Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance reports whether a draw from src falls below p.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return src.Float64() < p
}

// SequenceSource replays a fixed list of values, wrapping around.
// Useful for scripted scenarios.
type SequenceSource struct {
	Values []float64
	pos    int
}

// Float64 returns the next scripted value.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
