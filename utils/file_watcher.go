package utils

import (
	"fmt"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"path/filepath"
	"time"
)

const WatcherDebounce = time.Second

func watcherLoop(filePath string, watcher *fsnotify.Watcher, f func()) {
	var lastEvent time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.WithFields(log.Fields{
				"name": event.Name,
				"op":   event.Op,
			}).Debug("File watcher")
			if filepath.Clean(event.Name) == filePath &&
				(event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create) &&
				time.Since(lastEvent) >= WatcherDebounce {
				lastEvent = time.Now()
				f()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithField("error", fmt.Sprint(err)).Error("File watcher")
		}
	}
}

// NewFileWatcher calls f whenever filePath is written or re-created. The parent
// directory is watched so editors that replace the file are still noticed.
func NewFileWatcher(filePath string, f func()) (*fsnotify.Watcher, error) {
	var watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	filePath = filepath.Clean(filePath)
	go watcherLoop(filePath, watcher, f)
	if err = watcher.Add(filepath.Dir(filePath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}
