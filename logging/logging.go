package logging

import (
	"github.com/fernandosanchezjr/sparsefsm/utils"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
)

const LogPath = "logs"

var logFile *os.File

func getLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		logrus.WithError(err).Warn("Error opening log file")
		return nil
	}
	return f
}

func exitHandler() {
	Close()
}

// Setup points the standard logger at w. Stdout is never used so that generated
// artifacts can be piped.
func Setup(w io.Writer, verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetOutput(w)
}

// SetupLogger logs to stderr and to logs/log.out under the home folder.
func SetupLogger(verbose bool) {
	logrus.RegisterExitHandler(exitHandler)
	if logFile = getLogFile(); logFile != nil {
		Setup(io.MultiWriter(os.Stderr, logFile), verbose)
	} else {
		Setup(os.Stderr, verbose)
	}
}

func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
