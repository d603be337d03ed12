package encoder

import (
	"fmt"
)

const MaxWidth = 64

type Params struct {
	Distance int
	States   int
	Width    int
	Seed     uint32
}

func (p Params) String() string {
	return fmt.Sprintf("-d %d -m %d -n %d -s %d", p.Distance, p.States, p.Width, p.Seed)
}

// Fits reports whether 2^Width distinct patterns are enough for States encodings.
func (p Params) Fits() bool {
	if p.Width >= 63 {
		return true
	}
	return uint64(p.States) <= uint64(1)<<uint(p.Width)
}

// Validate checks the static preconditions of a search. It never touches a Source,
// so a failing parameter set consumes no randomness.
func (p Params) Validate() error {
	if p.Distance < 1 {
		return &ParameterError{Name: "distance", Value: p.Distance, Reason: "must be at least 1"}
	}
	if p.States < 1 {
		return &ParameterError{Name: "state count", Value: p.States, Reason: "must be at least 1"}
	}
	if p.Width < 1 {
		return &ParameterError{Name: "width", Value: p.Width, Reason: "must be at least 1"}
	}
	if p.Width > MaxWidth {
		return &ParameterError{Name: "width", Value: p.Width, Reason: fmt.Sprintf("must not exceed %d", MaxWidth)}
	}
	if !p.Fits() {
		return &CapacityError{States: p.States, Width: p.Width}
	}
	if p.States > 1 && p.Distance > p.Width {
		return &ParameterError{
			Name:   "distance",
			Value:  p.Distance,
			Reason: fmt.Sprintf("no two %d-bit encodings can differ in more than %d positions", p.Width, p.Width),
		}
	}
	return nil
}
