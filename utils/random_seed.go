package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
)

func RandomSeed() uint32 {
	var data [4]byte
	if _, err := rand.Read(data[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(data[:])
}

// OptionalSeed is a flag.Value that remembers whether it was set on the command line.
type OptionalSeed struct {
	Value   uint32
	Present bool
}

func (s *OptionalSeed) String() string {
	if s == nil || !s.Present {
		return ""
	}
	return strconv.FormatUint(uint64(s.Value), 10)
}

func (s *OptionalSeed) Set(value string) error {
	parsed, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return fmt.Errorf("seed must be a 32-bit unsigned integer: %v", err)
	}
	s.Value = uint32(parsed)
	s.Present = true
	return nil
}

// Resolve returns the explicit seed, or a fresh one from the system entropy source.
func (s *OptionalSeed) Resolve() uint32 {
	if s.Present {
		return s.Value
	}
	return RandomSeed()
}
