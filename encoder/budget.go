package encoder

const (
	DefaultMaxDraws    = 10000
	DefaultMaxRestarts = 10000
)

// Budget bounds a search. MaxDraws is shared by every draw of one segment, whether
// the candidate is accepted or not; MaxRestarts bounds the number of discarded segments.
type Budget struct {
	MaxDraws    int
	MaxRestarts int
}

var DefaultBudget = Budget{MaxDraws: DefaultMaxDraws, MaxRestarts: DefaultMaxRestarts}

func (b Budget) Validate() error {
	if b.MaxDraws < 1 {
		return &ParameterError{Name: "draw budget", Value: b.MaxDraws, Reason: "must be at least 1"}
	}
	if b.MaxRestarts < 1 {
		return &ParameterError{Name: "restart budget", Value: b.MaxRestarts, Reason: "must be at least 1"}
	}
	return nil
}
