package charting

import (
	"bytes"
	"fmt"
	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/sparsefsm/backend/storage"
	"github.com/fernandosanchezjr/sparsefsm/emitter"
	"github.com/fernandosanchezjr/sparsefsm/encoder"
	"github.com/fernandosanchezjr/sparsefsm/generators"
	"github.com/fernandosanchezjr/sparsefsm/governor"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const SeedHeader = "X-Seed"

type Service struct {
	governor *governor.Governor
	cache    *ttlcache.Cache
	router   *httprouter.Router
}

func NewService(gov *governor.Governor) *Service {
	cs := &Service{governor: gov, cache: ttlcache.NewCache()}
	cs.router = httprouter.New()
	cs.router.GET("/encoding", cs.GetEncoding)
	cs.router.GET("/histogram", cs.GetHistogram)
	cs.router.GET("/runs", cs.GetRuns)
	cs.router.GET("/runs/:key", cs.GetRun)
	return cs
}

func (cs *Service) Handler() http.Handler {
	return cs.router
}

func (cs *Service) Start() error {
	var address = cs.governor.Config().Server.Address
	log.WithField("address", address).Info("Starting HTTP server")
	return http.ListenAndServe(address, cs.router)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, encoder.ErrInvalidParameter), errors.Is(err, encoder.ErrCapacity),
		errors.Is(err, generators.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, encoder.ErrSearchExhausted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrRunNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, request *http.Request, status int, err error) {
	log.WithFields(log.Fields{
		"path":   request.URL,
		"status": status,
		"error":  err,
	}).Warn("Request failed")
	http.Error(w, err.Error(), status)
}

// cacheKey is only meaningful for requests with an explicit seed. The budget is part
// of the key because a reload can turn a success into an exhausted search.
func (cs *Service) cacheKey(request *governor.Request) string {
	var cfg = cs.governor.Config()
	var kind = request.Generator
	if kind == "" {
		kind = generators.Kind(cfg.Generator)
	}
	return fmt.Sprintf("%s-%d-%d", storage.RunKey(request.Params(), kind),
		cfg.Budget.MaxDraws, cfg.Budget.MaxRestarts)
}

func (cs *Service) run(w http.ResponseWriter, request *http.Request) (*storage.Run, bool) {
	var cfg = cs.governor.Config()
	governorRequest, err := ParseRequest(request.URL.Query(), cfg.Defaults)
	if err != nil {
		writeError(w, request, http.StatusBadRequest, err)
		return nil, false
	}
	var key string
	if governorRequest.Seed.Present {
		key = cs.cacheKey(governorRequest)
		if cached, found := cs.cache.Get(key); found {
			return cached.(*storage.Run), true
		}
	}
	run, err := cs.governor.Run(*governorRequest)
	if err != nil {
		writeError(w, request, statusFor(err), err)
		return nil, false
	}
	if key != "" && cfg.Server.CacheTTL > 0 {
		cs.cache.SetWithTTL(key, run, cfg.Server.CacheTTL)
	}
	return run, true
}

func writeArtifact(w http.ResponseWriter, request *http.Request, run *storage.Run) {
	var buf bytes.Buffer
	if err := emitter.Render(&buf, governor.Artifact(run)); err != nil {
		writeError(w, request, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(SeedHeader, strconv.FormatUint(uint64(run.Params.Seed), 10))
	_, _ = w.Write(buf.Bytes())
}

func (cs *Service) GetEncoding(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	startTime := time.Now()
	run, ok := cs.run(w, request)
	if !ok {
		return
	}
	writeArtifact(w, request, run)
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"path":        request.URL,
		"key":         run.Key(),
	}).Info("Encoding request")
}

func (cs *Service) GetHistogram(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	startTime := time.Now()
	run, ok := cs.run(w, request)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteChart(&buf, run); err != nil {
		writeError(w, request, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(SeedHeader, strconv.FormatUint(uint64(run.Params.Seed), 10))
	_, _ = w.Write(buf.Bytes())
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"path":        request.URL,
		"key":         run.Key(),
	}).Info("Histogram request")
}

func (cs *Service) GetRuns(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	if cs.governor.Archive == nil {
		writeError(w, request, http.StatusNotFound, errors.New("archive disabled"))
		return
	}
	keys, err := cs.governor.Archive.Keys()
	if err != nil {
		writeError(w, request, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if len(keys) > 0 {
		_, _ = w.Write([]byte(strings.Join(keys, "\n") + "\n"))
	}
}

func (cs *Service) GetRun(w http.ResponseWriter, request *http.Request, params httprouter.Params) {
	if cs.governor.Archive == nil {
		writeError(w, request, http.StatusNotFound, errors.New("archive disabled"))
		return
	}
	run, err := cs.governor.Archive.Load(params.ByName("key"))
	if err != nil {
		writeError(w, request, statusFor(err), err)
		return
	}
	writeArtifact(w, request, run)
}
