package encoder

import (
	"errors"
	"testing"

	"github.com/fernandosanchezjr/sparsefsm/generators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func search(t testing.TB, params Params, budget Budget) (*Result, *generators.MT19937Source, error) {
	t.Helper()
	var source = generators.NewMT19937Source(params.Seed)
	var result, err = NewSearcher(params, source, budget).Search()
	return result, source, err
}

func assertValid(t *testing.T, result *Result) {
	t.Helper()
	var p = result.Params
	require.Len(t, result.Encodings, p.States)
	for i := 0; i < len(result.Encodings); i++ {
		assert.LessOrEqual(t, uint64(result.Encodings[i]), Mask(p.Width))
		for j := i + 1; j < len(result.Encodings); j++ {
			assert.GreaterOrEqual(t, Distance(result.Encodings[i], result.Encodings[j], p.Width), p.Distance,
				"pair (%d, %d) of %s", i, j, p.String())
		}
	}
}

func TestSearch_Seed42(t *testing.T) {
	var params = Params{Distance: 2, States: 4, Width: 3, Seed: 42}
	result, source, err := search(t, params, DefaultBudget)
	require.NoError(t, err)
	assertValid(t, result)
	assert.Equal(t, EncodingSet{0b101, 0b000, 0b011, 0b110}, result.Encodings)
	assert.Equal(t, params, result.Params)
	assert.Equal(t, 0, result.Restarts)
	assert.Equal(t, uint64(36), result.Draws)
	assert.Equal(t, uint64(37), source.Draws())
}

func TestSearch_ReferenceSequences(t *testing.T) {
	var tests = []struct {
		params   Params
		expected EncodingSet
		draws    uint64
	}{
		{Params{Distance: 5, States: 7, Width: 10, Seed: 1}, EncodingSet{137, 582, 821, 120, 483, 914, 351}, 283},
		{Params{Distance: 5, States: 7, Width: 10, Seed: 0}, EncodingSet{864, 394, 41, 988, 310, 209, 583}, 297},
		{
			Params{Distance: 8, States: 6, Width: 40, Seed: 12345},
			EncodingSet{804948253063, 897691841093, 884012530637, 937585518914, 1023784532583, 297184512596},
			5,
		},
		{
			Params{Distance: 12, States: 5, Width: 64, Seed: 99},
			EncodingSet{7023646418445998953, 11057699771802723582, 4247597587064290621, 2457925259611419118,
				1597091074114278392},
			4,
		},
		{Params{Distance: 1, States: 8, Width: 3, Seed: 5}, EncodingSet{4, 2, 5, 6, 7, 0, 3, 1}, 17},
	}
	for _, test := range tests {
		t.Run(test.params.String(), func(t *testing.T) {
			result, _, err := search(t, test.params, DefaultBudget)
			require.NoError(t, err)
			assertValid(t, result)
			assert.Equal(t, test.expected, result.Encodings)
			assert.Equal(t, test.draws, result.Draws)
		})
	}
}

func TestSearch_Deterministic(t *testing.T) {
	for _, kind := range generators.Kinds {
		for seed := uint32(0); seed < 16; seed++ {
			var params = Params{Distance: 3, States: 10, Width: 12, Seed: seed}
			first, err := generators.NewSource(kind, seed)
			require.NoError(t, err)
			second, err := generators.NewSource(kind, seed)
			require.NoError(t, err)
			a, err := NewSearcher(params, first, DefaultBudget).Search()
			require.NoError(t, err)
			b, err := NewSearcher(params, second, DefaultBudget).Search()
			require.NoError(t, err)
			assertValid(t, a)
			assert.Equal(t, a.Encodings, b.Encodings)
			assert.Equal(t, a.Restarts, b.Restarts)
			assert.Equal(t, a.Draws, b.Draws)
		}
	}
}

func TestSearch_CapacityFailsWithoutDrawing(t *testing.T) {
	for seed := uint32(0); seed < 4; seed++ {
		result, source, err := search(t, Params{Distance: 5, States: 9, Width: 3, Seed: seed}, DefaultBudget)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrCapacity))
		assert.Equal(t, uint64(0), source.Draws())
	}
}

func TestSearch_InvalidBudgetFailsWithoutDrawing(t *testing.T) {
	result, source, err := search(t, Params{Distance: 2, States: 4, Width: 3, Seed: 42}, Budget{})
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, uint64(0), source.Draws())
}

func TestSearch_SmallDrawBudgetRestartsThenSucceeds(t *testing.T) {
	var params = Params{Distance: 3, States: 6, Width: 6, Seed: 0}
	result, source, err := search(t, params, Budget{MaxDraws: 12, MaxRestarts: 100})
	require.NoError(t, err)
	assertValid(t, result)
	assert.Equal(t, 97, result.Restarts)
	assert.Equal(t, uint64(1173), result.Draws)
	assert.Equal(t, EncodingSet{57, 50, 28, 23, 36, 10}, result.Encodings)
	// one initial encoding, one per restart, one per candidate
	assert.Equal(t, uint64(1+97+1173), source.Draws())
}

func TestSearch_Exhausted(t *testing.T) {
	var params = Params{Distance: 2, States: 4, Width: 3, Seed: 0}
	result, source, err := search(t, params, Budget{MaxDraws: 5, MaxRestarts: 2})
	assert.Nil(t, result)
	require.True(t, errors.Is(err, ErrSearchExhausted))
	var exhausted *SearchExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, SearchExhaustedError{Distance: 2, States: 4, Width: 3, Restarts: 2}, *exhausted)
	assert.Contains(t, err.Error(), "-d 2 -m 4 -n 3")
	assert.Contains(t, err.Error(), "increasing N")
	assert.Equal(t, uint64(1+5+1+5+1), source.Draws())
}

func TestSearch_DrawBudgetIsNotResetByAcceptance(t *testing.T) {
	// Filling all eight 3-bit patterns takes 17 draws for this seed. A budget
	// refilled on every acceptance would never run dry; a shared budget of
	// seven draws per segment needs seven lucky draws in a row and gives up.
	var params = Params{Distance: 1, States: 8, Width: 3, Seed: 5}
	result, source, err := search(t, params, Budget{MaxDraws: 7, MaxRestarts: 50})
	assert.Nil(t, result)
	var exhausted *SearchExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, 50, exhausted.Restarts)
	assert.Equal(t, uint64(1+50+50*7), source.Draws())
}

func TestSearch_SingleState(t *testing.T) {
	result, source, err := search(t, Params{Distance: 9, States: 1, Width: 3, Seed: 3}, Budget{MaxDraws: 1, MaxRestarts: 1})
	require.NoError(t, err)
	assert.Len(t, result.Encodings, 1)
	assert.Equal(t, uint64(0), result.Draws)
	assert.Equal(t, uint64(1), source.Draws())
}

func TestSearcher_Reusable(t *testing.T) {
	var params = Params{Distance: 2, States: 4, Width: 3, Seed: 42}
	var searcher = NewSearcher(params, generators.NewMT19937Source(42), DefaultBudget)
	first, err := searcher.Search()
	require.NoError(t, err)
	second, err := searcher.Search()
	require.NoError(t, err)
	assertValid(t, first)
	assertValid(t, second)

	// the second search continues the stream after the 37 draws of the first
	var advanced = generators.NewMT19937Source(42)
	for i := 0; i < 37; i++ {
		advanced.Bits(3)
	}
	expected, err := NewSearcher(params, advanced, DefaultBudget).Search()
	require.NoError(t, err)
	assert.Equal(t, expected.Encodings, second.Encodings)
	assert.Equal(t, expected.Draws, second.Draws)
}

func BenchmarkSearch_Default(b *testing.B) {
	var params = Params{Distance: 5, States: 7, Width: 10}
	for i := 0; i < b.N; i++ {
		params.Seed = uint32(i)
		if _, _, err := search(b, params, DefaultBudget); err != nil {
			b.Fatal(err)
		}
	}
}
