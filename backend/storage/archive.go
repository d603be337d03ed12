package storage

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/fernandosanchezjr/sparsefsm/analytics"
	"github.com/fernandosanchezjr/sparsefsm/encoder"
	"github.com/fernandosanchezjr/sparsefsm/generators"
	"github.com/fernandosanchezjr/sparsefsm/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
	"time"
)

var (
	RunsBucket = []byte("runs")

	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrRunNotFound    = errors.New("storage: run not found")
)

// Run is one successful generation, enough to re-render its artifact without searching again.
type Run struct {
	Params     encoder.Params
	Generator  generators.Kind
	Budget     encoder.Budget
	Encodings  encoder.EncodingSet
	Statistics *analytics.Statistics
	Restarts   int
	Draws      uint64
	Created    time.Time
}

func RunKey(params encoder.Params, kind generators.Kind) string {
	if kind == "" {
		kind = generators.MT19937
	}
	return fmt.Sprintf("d%d-m%d-n%d-s%d-%s", params.Distance, params.States, params.Width, params.Seed, kind)
}

func (r *Run) Key() string {
	return RunKey(r.Params, r.Generator)
}

func (r *Run) Summary() string {
	var stats = r.Statistics
	return fmt.Sprintf("%s  min=%d max=%d mean=%.2f stddev=%.2f mode=%d restarts=%s draws=%s  %s",
		r.Key(), stats.Min, stats.Max, stats.Mean, stats.StdDev, stats.Mode,
		utils.Count(r.Restarts), utils.Count(r.Draws), humanize.Time(r.Created))
}

type Archive struct {
	db *bbolt.DB
}

func Open(dbPath string) (*Archive, error) {
	db, err := GetDB(dbPath)
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func getRunsBucket(tx *bbolt.Tx) (bucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		bucket, err = tx.CreateBucketIfNotExists(RunsBucket)
	} else {
		bucket = tx.Bucket(RunsBucket)
		if bucket == nil {
			err = ErrBucketNotFound
		}
	}
	return
}

func (a *Archive) Save(run *Run) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(run); err != nil {
		return errors.Wrap(err, "encoding run")
	}
	var key = run.Key()
	err := a.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getRunsBucket(tx)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), buf.Bytes())
	})
	if err != nil {
		return errors.Wrapf(err, "saving run %s", key)
	}
	log.WithField("key", key).Debug("Run archived")
	return nil
}

func decodeRun(data []byte) (*Run, error) {
	var run Run
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&run); err != nil {
		return nil, errors.Wrap(err, "decoding run")
	}
	return &run, nil
}

func (a *Archive) Load(key string) (run *Run, err error) {
	err = a.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getRunsBucket(tx)
		if err == ErrBucketNotFound {
			return ErrRunNotFound
		} else if err != nil {
			return err
		}
		var data = bucket.Get([]byte(key))
		if data == nil {
			return ErrRunNotFound
		}
		run, err = decodeRun(data)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "loading run %s", key)
	}
	return run, nil
}

// List returns every archived run in key order.
func (a *Archive) List() (runs []*Run, err error) {
	err = a.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getRunsBucket(tx)
		if err == ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}
		return bucket.ForEach(func(_, data []byte) error {
			run, err := decodeRun(data)
			if err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	return
}

func (a *Archive) Keys() (keys []string, err error) {
	err = a.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getRunsBucket(tx)
		if err == ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}
		return bucket.ForEach(func(key, _ []byte) error {
			keys = append(keys, string(key))
			return nil
		})
	})
	return
}
