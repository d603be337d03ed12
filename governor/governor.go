package governor

import (
	"github.com/fernandosanchezjr/sparsefsm/analytics"
	"github.com/fernandosanchezjr/sparsefsm/backend/storage"
	"github.com/fernandosanchezjr/sparsefsm/config"
	"github.com/fernandosanchezjr/sparsefsm/emitter"
	"github.com/fernandosanchezjr/sparsefsm/encoder"
	"github.com/fernandosanchezjr/sparsefsm/generators"
	"github.com/fernandosanchezjr/sparsefsm/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Request is one generation as asked for by a caller. An empty Generator selects the
// configured one.
type Request struct {
	Distance  int
	States    int
	Width     int
	Seed      utils.OptionalSeed
	Generator generators.Kind
}

func (r *Request) Params() encoder.Params {
	return encoder.Params{
		Distance: r.Distance,
		States:   r.States,
		Width:    r.Width,
		Seed:     r.Seed.Value,
	}
}

// Governor runs validated searches against the current config and archives what they find.
type Governor struct {
	Archive *storage.Archive
	mtx     sync.RWMutex
	config  *config.Config
}

func NewGovernor(cfg *config.Config, archive *storage.Archive) *Governor {
	return &Governor{config: cfg, Archive: archive}
}

func (g *Governor) Config() *config.Config {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.config
}

func (g *Governor) SetConfig(cfg *config.Config) {
	g.mtx.Lock()
	g.config = cfg
	g.mtx.Unlock()
	log.WithFields(log.Fields{
		"generator":   cfg.Generator,
		"maxDraws":    cfg.Budget.MaxDraws,
		"maxRestarts": cfg.Budget.MaxRestarts,
		"archive":     cfg.Archive,
	}).Info("Config updated")
}

func (g *Governor) resolveKind(cfg *config.Config, kind generators.Kind) (generators.Kind, error) {
	if kind != "" {
		return generators.ParseKind(string(kind))
	}
	return cfg.GeneratorKind()
}

// Run validates the request before any seed is drawn, then searches with a source
// seeded from the explicit or freshly generated seed.
func (g *Governor) Run(request Request) (*storage.Run, error) {
	var cfg = g.Config()
	var params = request.Params()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var budget = cfg.EncoderBudget()
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	kind, err := g.resolveKind(cfg, request.Generator)
	if err != nil {
		return nil, err
	}
	params.Seed = request.Seed.Resolve()
	source, err := generators.NewSource(kind, params.Seed)
	if err != nil {
		return nil, err
	}
	result, err := encoder.NewSearcher(params, source, budget).Search()
	if err != nil {
		return nil, err
	}
	var run = &storage.Run{
		Params:     result.Params,
		Generator:  kind,
		Budget:     budget,
		Encodings:  result.Encodings,
		Statistics: analytics.Collect(result.Encodings, params.Width),
		Restarts:   result.Restarts,
		Draws:      result.Draws,
		Created:    time.Now().UTC(),
	}
	if cfg.Archive && g.Archive != nil {
		if err := g.Archive.Save(run); err != nil {
			return nil, errors.Wrap(err, "archiving run")
		}
	}
	return run, nil
}

func Artifact(run *storage.Run) *emitter.Artifact {
	return &emitter.Artifact{
		Tool:       emitter.DefaultTool,
		Params:     run.Params,
		Encodings:  run.Encodings,
		Statistics: run.Statistics,
	}
}
