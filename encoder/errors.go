package encoder

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity matches *CapacityError.
	ErrCapacity = errors.New("encoder: state space too small")
	// ErrInvalidParameter matches *ParameterError.
	ErrInvalidParameter = errors.New("encoder: invalid parameter")
	// ErrSearchExhausted matches *SearchExhaustedError.
	ErrSearchExhausted = errors.New("encoder: search exhausted")
)

// CapacityError reports that 2^Width patterns cannot hold States distinct encodings.
type CapacityError struct {
	States int
	Width  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("statespace 2^%d not large enough to accommodate %d states", e.Width, e.States)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

type ParameterError struct {
	Name   string
	Value  int
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

type SearchExhaustedError struct {
	Distance int
	States   int
	Width    int
	Restarts int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf(
		"did not find a solution for -d %d -m %d -n %d after restarting %d times; "+
			"not many (or even no) solutions exist for this parameterization. "+
			"Rerun with another seed, make the state space more sparse by increasing N, "+
			"or lower the minimum Hamming distance D",
		e.Distance, e.States, e.Width, e.Restarts,
	)
}

func (e *SearchExhaustedError) Is(target error) bool {
	return target == ErrSearchExhausted
}
