package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/fernandosanchezjr/sparsefsm/backend/charting"
	"github.com/fernandosanchezjr/sparsefsm/backend/storage"
	"github.com/fernandosanchezjr/sparsefsm/config"
	"github.com/fernandosanchezjr/sparsefsm/emitter"
	"github.com/fernandosanchezjr/sparsefsm/governor"
	"github.com/fernandosanchezjr/sparsefsm/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"runtime/pprof"
	"runtime/trace"
)

var cpuProfile bool
var tracing bool
var verbose bool
var archiveRun bool
var history bool
var outputPath string
var chartPath string
var generator string
var maxDraws int
var maxRestarts int
var request governor.Request

func init() {
	flag.IntVar(&request.Distance, "d", 5, "minimum Hamming distance between encodings")
	flag.IntVar(&request.States, "m", 7, "number of states")
	flag.IntVar(&request.Width, "n", 10, "encoding width in bits")
	flag.Var(&request.Seed, "s", "custom seed for RNG, generated when omitted")
	flag.StringVar(&generator, "generator", generator, "random source: mt19937 or xoshiro")
	flag.IntVar(&maxDraws, "max-draws", maxDraws, "draws per search segment before restarting")
	flag.IntVar(&maxRestarts, "max-restarts", maxRestarts, "restarts before giving up")
	flag.StringVar(&outputPath, "o", outputPath, "write the encoding to a file instead of stdout")
	flag.StringVar(&chartPath, "chart", chartPath, "write an HTML histogram chart")
	flag.BoolVar(&archiveRun, "archive", archiveRun, "store the run in the archive")
	flag.BoolVar(&history, "history", history, "list archived runs and exit")
	flag.BoolVar(&verbose, "verbose", verbose, "enable debug logging")
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
}

func setFlags() map[string]bool {
	var set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags lays the flags named in set over the loaded config.
func applyFlags(cfg *config.Config, set map[string]bool) {
	if !set["d"] {
		request.Distance = cfg.Defaults.Distance
	}
	if !set["m"] {
		request.States = cfg.Defaults.States
	}
	if !set["n"] {
		request.Width = cfg.Defaults.Width
	}
	if set["generator"] {
		cfg.Generator = generator
	}
	if set["max-draws"] {
		cfg.Budget.MaxDraws = maxDraws
	}
	if set["max-restarts"] {
		cfg.Budget.MaxRestarts = maxRestarts
	}
	if set["archive"] {
		cfg.Archive = archiveRun
	}
}

func writeFile(filePath string, write func(w io.Writer) error) error {
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filePath)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", filePath)
}

func printHistory(w io.Writer, archive *storage.Archive) error {
	runs, err := archive.List()
	if err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	for _, run := range runs {
		if _, err = fmt.Fprintln(out, run.Summary()); err != nil {
			return err
		}
	}
	return out.Flush()
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg, setFlags())
	if err = cfg.Validate(); err != nil {
		return err
	}
	var archive *storage.Archive
	if cfg.Archive || history {
		if archive, err = storage.Open(storage.GetDBPath()); err != nil {
			return err
		}
		defer archive.Close()
	}
	if history {
		return printHistory(os.Stdout, archive)
	}
	result, err := governor.NewGovernor(cfg, archive).Run(request)
	if err != nil {
		return err
	}
	var artifact = governor.Artifact(result)
	if outputPath != "" {
		err = writeFile(outputPath, func(w io.Writer) error { return emitter.Render(w, artifact) })
	} else {
		err = emitter.Render(os.Stdout, artifact)
	}
	if err != nil {
		return err
	}
	if chartPath != "" {
		return writeFile(chartPath, func(w io.Writer) error { return charting.WriteChart(w, result) })
	}
	return nil
}

func main() {
	flag.Parse()
	logging.SetupLogger(verbose)
	if cpuProfile {
		f, err := os.Create("sparsefsm.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
	}
	if tracing {
		f, err := os.Create("sparsefsm.trace")
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
	}
	var err = run()
	if tracing {
		trace.Stop()
	}
	if cpuProfile {
		pprof.StopCPUProfile()
	}
	if err != nil {
		log.Error(err)
		logging.Close()
		os.Exit(1)
	}
	logging.Close()
}
