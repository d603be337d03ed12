package main

import (
	"flag"
	"github.com/fernandosanchezjr/sparsefsm/backend/charting"
	"github.com/fernandosanchezjr/sparsefsm/backend/storage"
	"github.com/fernandosanchezjr/sparsefsm/config"
	"github.com/fernandosanchezjr/sparsefsm/governor"
	"github.com/fernandosanchezjr/sparsefsm/logging"
	"github.com/fernandosanchezjr/sparsefsm/utils"
	log "github.com/sirupsen/logrus"
)

var verbose bool

func init() {
	flag.BoolVar(&verbose, "verbose", verbose, "enable debug logging")
}

func reloadConfig(gov *governor.Governor) func() {
	return func() {
		cfg, err := config.LoadConfig()
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			log.WithError(err).Warn("Config reload failed, keeping current config")
			return
		}
		gov.SetConfig(cfg)
	}
}

func main() {
	flag.Parse()
	logging.SetupLogger(verbose)
	defer logging.Close()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}
	if err = cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid config")
	}
	if cfg.Server.Address == "" {
		log.Fatal("Empty server address in config")
	}
	archive, err := storage.Open(storage.GetDBPath())
	if err != nil {
		log.WithError(err).Fatal("Failed to open archive DB")
	}
	defer archive.Close()
	gov := governor.NewGovernor(cfg, archive)
	configPath, err := config.Path()
	if err != nil {
		log.WithError(err).Fatal("Failed to expand config path")
	}
	watcher, err := utils.NewFileWatcher(configPath, reloadConfig(gov))
	if err != nil {
		log.WithError(err).Warn("Config reload disabled")
	} else {
		defer watcher.Close()
	}
	cs := charting.NewService(gov)
	go func() {
		if err := cs.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()
	log.Println("Backend started")
	utils.Wait()
}
