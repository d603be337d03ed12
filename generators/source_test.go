package generators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMT19937Source_MatchesReferenceSequence(t *testing.T) {
	var tests = []struct {
		seed     uint32
		width    int
		expected []uint64
	}{
		{42, 32, []uint64{2746317213, 478163327, 107420369}},
		{42, 64, []uint64{2053695854357871005, 13679192365072849617}},
		{4294967295, 10, []uint64{650, 634, 208}},
	}
	for _, test := range tests {
		var source = NewMT19937Source(test.seed)
		for i, expected := range test.expected {
			assert.Equal(t, expected, source.Bits(test.width), "seed %d width %d draw %d", test.seed, test.width, i)
		}
		assert.Equal(t, uint64(len(test.expected)), source.Draws())
	}
}

func TestMT19937Source_NarrowWidthUsesTopBits(t *testing.T) {
	var wide = NewMT19937Source(42)
	var narrow = NewMT19937Source(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, wide.Bits(32)>>29, narrow.Bits(3))
	}
}

func TestSource_WidthBounds(t *testing.T) {
	for _, kind := range Kinds {
		source, err := NewSource(kind, 7)
		require.NoError(t, err)
		for width := 1; width <= MaxWidth; width++ {
			for i := 0; i < 32; i++ {
				var value = source.Bits(width)
				if width < MaxWidth {
					require.Less(t, value, uint64(1)<<uint(width), "%s width %d", kind, width)
				}
			}
		}
		assert.Equal(t, uint64(MaxWidth*32), source.Draws())
		assert.Equal(t, kind, source.Kind())
	}
}

func TestSource_Deterministic(t *testing.T) {
	for _, kind := range Kinds {
		first, err := NewSource(kind, 1234)
		require.NoError(t, err)
		second, err := NewSource(kind, 1234)
		require.NoError(t, err)
		other, err := NewSource(kind, 1235)
		require.NoError(t, err)
		var differs bool
		for i := 0; i < 256; i++ {
			var value = first.Bits(40)
			assert.Equal(t, value, second.Bits(40))
			if value != other.Bits(40) {
				differs = true
			}
		}
		assert.True(t, differs, "%s ignores its seed", kind)
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, MT19937, kind)
	kind, err = ParseKind(" Xoshiro ")
	require.NoError(t, err)
	assert.Equal(t, Xoshiro, kind)
	_, err = ParseKind("pcg")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	_, err = NewSource("pcg", 1)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func BenchmarkMT19937Source_Bits(b *testing.B) {
	var source = NewMT19937Source(42)
	var result uint64
	for i := 0; i < b.N; i++ {
		result = source.Bits(10)
	}
	b.StopTimer()
	_ = result
}
