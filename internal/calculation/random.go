package calculation

import (
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource supplies independent standard-normal draws (Wiener increments
// before scaling by sqrt(dt)). Implementations are not safe for concurrent use.
type RandomSource interface {
	NormFloat64() float64
}

// NewSource returns a replayable source: equal seeds give equal draw sequences.
func NewSource(seed int64) RandomSource {
	return NewStream(seed, 0)
}

// NewStream returns stream number `stream` of seed. Each (seed, stream) pair keys
// its own ChaCha8 generator, so streams never share state and path k of a Monte
// Carlo run does not depend on which worker simulates it.
func NewStream(seed int64, stream uint64) RandomSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[0:8], uint64(seed))
	binary.LittleEndian.PutUint64(key[8:16], stream)
	return rand.New(rand.NewChaCha8(key))
}

// SequenceSource replays a fixed list of draws, wrapping around when exhausted.
type SequenceSource struct {
	Values []float64
	drawn  int
}

// NewSequenceSource creates a source that returns values in order.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

// NormFloat64 implements RandomSource.
func (s *SequenceSource) NormFloat64() float64 {
	if len(s.Values) == 0 {
		s.drawn++
		return 0
	}
	v := s.Values[s.drawn%len(s.Values)]
	s.drawn++
	return v
}

// Drawn reports how many values have been consumed.
func (s *SequenceSource) Drawn() int { return s.drawn }
