package storage

import (
	"github.com/fernandosanchezjr/sparsefsm/utils"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
	"path"
	"time"
)

const (
	DBPath      = "db"
	OpenTimeout = 5 * time.Second
)

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "archive.db")
}

func GetDB(dbPath string) (*bbolt.DB, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %s", dbPath)
	}
	return db, nil
}
