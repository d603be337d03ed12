package config

import (
	"flag"
	"github.com/fernandosanchezjr/sparsefsm/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
)

var ErrNegativeCacheTTL = errors.New("config: server cacheTTL must not be negative")

var configPath = "~/.sparsefsm/config.yaml"

func init() {
	flag.StringVar(&configPath, "config", configPath, "specify config file")
}

// Path is the expanded location of the config file selected with -config.
func Path() (string, error) {
	return utils.ExpandPath(configPath)
}

func LoadConfig() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.Wrapf(err, "expanding config path %s", configPath)
	}
	return LoadFile(path)
}

// LoadFile reads a yaml config over Default(). A missing file is not an error. The result is
// not validated so that command line overrides can be applied first.
func LoadFile(path string) (*Config, error) {
	c := Default()
	var data []byte
	var err error
	if data, err = ioutil.ReadFile(path); err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("No config file, using defaults")
			return c, nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	log.WithField("path", path).Debug("Loading config")
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return c, nil
}
