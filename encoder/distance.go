package encoder

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

type Encoding uint64

// Binary renders the encoding zero padded to width bits.
func (e Encoding) Binary(width int) string {
	var digits = strconv.FormatUint(uint64(e)&Mask(width), 2)
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

func (e Encoding) Literal(width int) string {
	return fmt.Sprintf("%d'b%s", width, e.Binary(width))
}

func Mask(width int) uint64 {
	if width >= MaxWidth {
		return math.MaxUint64
	}
	if width <= 0 {
		return 0
	}
	return uint64(1)<<uint(width) - 1
}

// Distance is the Hamming distance of the low width bits of a and b.
func Distance(a, b Encoding, width int) int {
	return bits.OnesCount64(uint64(a^b) & Mask(width))
}

// EncodingSet is indexed by state: element i is the encoding of state i.
type EncodingSet []Encoding

// Admits reports whether candidate keeps at least distance bits to every member.
func (es EncodingSet) Admits(candidate Encoding, distance, width int) bool {
	for _, member := range es {
		if Distance(candidate, member, width) < distance {
			return false
		}
	}
	return true
}

// MinDistance returns the smallest pairwise distance, or -1 for fewer than two members.
func (es EncodingSet) MinDistance(width int) int {
	var minimum = -1
	for i := 0; i < len(es); i++ {
		for j := i + 1; j < len(es); j++ {
			if d := Distance(es[i], es[j], width); minimum < 0 || d < minimum {
				minimum = d
			}
		}
	}
	return minimum
}
