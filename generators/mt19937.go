package generators

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// MT19937Source seeds the 32-bit Mersenne Twister from a single key word and
// assembles wide values least significant word first, keeping the top bits of
// the last partial word. Seeds are therefore interchangeable with CPython's
// random.seed / random.getrandbits.
type MT19937Source struct {
	rng   *prng.MT19937
	draws uint64
}

func NewMT19937Source(seed uint32) *MT19937Source {
	var rng = prng.NewMT19937()
	rng.SeedFromKeys([]uint32{seed})
	return &MT19937Source{rng: rng}
}

func (s *MT19937Source) Bits(width int) uint64 {
	s.draws += 1
	var result uint64
	for shift := uint(0); width > 0; shift += 32 {
		var word = s.rng.Uint32()
		if width < 32 {
			word >>= uint(32 - width)
		}
		result |= uint64(word) << shift
		width -= 32
	}
	return result
}

func (s *MT19937Source) Draws() uint64 {
	return s.draws
}

func (s *MT19937Source) Kind() Kind {
	return MT19937
}
