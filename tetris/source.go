package tetris

import "math/rand/v2"

// PieceSource supplies the kinds of newly generated pieces.
type PieceSource interface {
	Next() Kind
}

// RandomSource draws kinds uniformly and independently. Consecutive identical
// kinds are possible; there is no bag.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSource) Next() Kind {
	return Kind(s.rng.IntN(KindCount))
}

// SequenceSource cycles through a fixed list of kinds.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource creates a source returning kinds in order, wrapping
// around at the end. It panics if kinds is empty or contains an invalid kind.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("tetris: empty piece sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic("tetris: invalid kind " + k.String())
		}
	}
	return &SequenceSource{kinds: append([]Kind(nil), kinds...)}
}

func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
