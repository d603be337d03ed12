package utils

import (
	"github.com/dustin/go-humanize"
)

const MaxCommaCount = 1000000

type Count uint64

func (c Count) String() string {
	if c < MaxCommaCount {
		return humanize.Comma(int64(c))
	} else {
		return humanize.SIWithDigits(float64(c), 2, "")
	}
}
