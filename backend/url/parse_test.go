package url

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	var values = url.Values{"d": {"3"}, "bad": {"x"}}
	var result = 5
	require.NoError(t, ParseInt("missing", values, &result))
	assert.Equal(t, 5, result)
	require.NoError(t, ParseInt("d", values, &result))
	assert.Equal(t, 3, result)
	assert.Error(t, ParseInt("bad", values, &result))
}

func TestParseBool(t *testing.T) {
	var result bool
	require.NoError(t, ParseBool("refresh", url.Values{"refresh": {"true"}}, &result))
	assert.True(t, result)
}

func TestParseSeed(t *testing.T) {
	var seed uint32
	var present bool
	require.NoError(t, ParseSeed("s", url.Values{}, &seed, &present))
	assert.False(t, present)

	require.NoError(t, ParseSeed("s", url.Values{"s": {"4294967295"}}, &seed, &present))
	assert.True(t, present)
	assert.Equal(t, uint32(4294967295), seed)

	present = false
	assert.Error(t, ParseSeed("s", url.Values{"s": {"4294967296"}}, &seed, &present))
	assert.Error(t, ParseSeed("s", url.Values{"s": {"-1"}}, &seed, &present))
	assert.False(t, present)
}
