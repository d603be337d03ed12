package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount_String(t *testing.T) {
	var tests = []struct {
		count    Count
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1173, "1,173"},
		{999999, "999,999"},
		{1500000, "1.5 M"},
		{100000000, "100 M"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.count.String())
	}
}
