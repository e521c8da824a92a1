// Package dice abstracts the randomness the combat engine consumes so
// tests can pin rolls. *rand.Rand satisfies Roller directly.
package dice

// Roller produces uniform random values in [0, 1).
type Roller interface {
	Float64() float64
}

// Between maps a roll onto the inclusive range [min, max]. A point range
// still consumes a draw, so roll streams stay aligned as ranges vary.
func Between(r Roller, min, max float64) float64 {
	roll := r.Float64()
	if max <= min {
		return min
	}
	return min + roll*(max-min)
}

// Fixed always returns the same value. Useful for pinning a damage roll
// or forcing a crit outcome in tests.
type Fixed float64

func (f Fixed) Float64() float64 { return float64(f) }

// Sequence replays a fixed list of rolls, wrapping when exhausted.
type Sequence struct {
	rolls []float64
	next  int
}

// NewSequence builds a roller that yields the given values in order.
func NewSequence(rolls ...float64) *Sequence {
	if len(rolls) == 0 {
		rolls = []float64{0.5}
	}
	return &Sequence{rolls: rolls}
}

func (s *Sequence) Float64() float64 {
	v := s.rolls[s.next%len(s.rolls)]
	s.next++
	return v
}
