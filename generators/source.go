package generators

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	MT19937 Kind = "mt19937"
	Xoshiro Kind = "xoshiro"
)

const MaxWidth = 64

var ErrUnknownKind = errors.New("generators: unknown generator kind")

var Kinds = []Kind{MT19937, Xoshiro}

// Source draws uniformly distributed bit patterns from a seeded PRNG. A Source is
// owned by a single search and is not safe for concurrent use.
type Source interface {
	// Bits returns a value in [0, 2^width). width must be in [1, MaxWidth].
	Bits(width int) uint64
	// Draws reports how many times Bits has been called.
	Draws() uint64
	Kind() Kind
}

func ParseKind(name string) (Kind, error) {
	var kind = Kind(strings.ToLower(strings.TrimSpace(name)))
	if kind == "" {
		return MT19937, nil
	}
	for _, known := range Kinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func NewSource(kind Kind, seed uint32) (Source, error) {
	switch kind {
	case MT19937, "":
		return NewMT19937Source(seed), nil
	case Xoshiro:
		return NewXoshiroSource(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
