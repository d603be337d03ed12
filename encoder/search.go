package encoder

import (
	"github.com/fernandosanchezjr/sparsefsm/utils"
	log "github.com/sirupsen/logrus"
	"time"
)

// Source is the only randomness a Searcher consults.
type Source interface {
	Bits(width int) uint64
}

// Result is a successful search. Params carries the seed the encodings were
// generated with, Restarts the number of discarded segments and Draws the
// candidate draws over all segments, not counting the encoding each segment
// starts from.
type Result struct {
	Params    Params
	Encodings EncodingSet
	Restarts  int
	Draws     uint64
	Elapsed   time.Duration
}

type searchState struct {
	encodings EncodingSet
	draws     int
	restarts  int
}

type Searcher struct {
	params Params
	budget Budget
	source Source
	state  searchState
	total  uint64
}

// NewSearcher binds a search to its parameters and a Source seeded with params.Seed.
func NewSearcher(params Params, source Source, budget Budget) *Searcher {
	return &Searcher{
		params: params,
		budget: budget,
		source: source,
	}
}

func (s *Searcher) draw() Encoding {
	return Encoding(s.source.Bits(s.params.Width))
}

func (s *Searcher) restart() {
	s.state.encodings = append(s.state.encodings[:0], s.draw())
	s.state.draws = 0
	s.state.restarts += 1
	log.WithFields(log.Fields{
		"restarts": s.state.restarts,
		"params":   s.params.String(),
	}).Debug("Search restarted")
}

// Search runs until States encodings are found or the restart budget is spent.
// On failure no partial set is returned.
func (s *Searcher) Search() (*Result, error) {
	if err := s.params.Validate(); err != nil {
		return nil, err
	}
	if err := s.budget.Validate(); err != nil {
		return nil, err
	}
	var startTime = time.Now()
	var distance, width = s.params.Distance, s.params.Width
	s.total = 0
	s.state = searchState{encodings: make(EncodingSet, 0, s.params.States)}
	s.state.encodings = append(s.state.encodings, s.draw())
	for len(s.state.encodings) < s.params.States {
		if s.state.draws >= s.budget.MaxDraws {
			s.restart()
		}
		if s.state.restarts >= s.budget.MaxRestarts {
			var restarts = s.state.restarts
			s.state = searchState{}
			log.WithFields(log.Fields{
				"params":   s.params.String(),
				"restarts": utils.Count(restarts),
				"draws":    utils.Count(s.total),
			}).Debug("Search exhausted")
			return nil, &SearchExhaustedError{
				Distance: distance,
				States:   s.params.States,
				Width:    width,
				Restarts: restarts,
			}
		}
		s.state.draws += 1
		s.total += 1
		var candidate = s.draw()
		if s.state.encodings.Admits(candidate, distance, width) {
			s.state.encodings = append(s.state.encodings, candidate)
		}
	}
	var result = &Result{
		Params:    s.params,
		Encodings: append(EncodingSet{}, s.state.encodings...),
		Restarts:  s.state.restarts,
		Draws:     s.total,
		Elapsed:   time.Since(startTime),
	}
	s.state = searchState{}
	log.WithFields(log.Fields{
		"params":   s.params.String(),
		"restarts": utils.Count(result.Restarts),
		"draws":    utils.Count(result.Draws),
		"elapsed":  result.Elapsed,
	}).Info("Encoding found")
	return result, nil
}
