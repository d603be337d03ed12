package generators

import (
	"gonum.org/v1/gonum/mathext/prng"
)

type XoshiroSource struct {
	rng   *prng.Xoshiro256starstar
	draws uint64
}

func NewXoshiroSource(seed uint32) *XoshiroSource {
	return &XoshiroSource{rng: prng.NewXoshiro256starstar(uint64(seed))}
}

func (s *XoshiroSource) Bits(width int) uint64 {
	s.draws += 1
	if width <= 0 {
		return 0
	}
	// the high bits of xoshiro256** are the strongest
	return s.rng.Uint64() >> uint(MaxWidth-width)
}

func (s *XoshiroSource) Draws() uint64 {
	return s.draws
}

func (s *XoshiroSource) Kind() Kind {
	return Xoshiro
}
