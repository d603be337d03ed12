package charting

import (
	"fmt"
	"github.com/fernandosanchezjr/sparsefsm/backend/storage"
	"github.com/go-echarts/go-echarts/charts"
	"github.com/pkg/errors"
	"io"
)

const SeriesName = "pairs"

func ChartTitle(run *storage.Run) string {
	return fmt.Sprintf("Hamming distance histogram %s (%s)", run.Params.String(), run.Generator)
}

func ChartSubtitle(run *storage.Run) string {
	var stats = run.Statistics
	return fmt.Sprintf("%d pairs, min %d, max %d, mean %.2f, stddev %.2f, mode %d",
		stats.Pairs, stats.Min, stats.Max, stats.Mean, stats.StdDev, stats.Mode)
}

// BuildChart plots pair counts per distance 0..N.
func BuildChart(run *storage.Run) *charts.Bar {
	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.InitOpts{
			PageTitle: run.Key(),
			Width:     "100wh",
			Height:    "85vh",
		},
		charts.TitleOpts{Title: ChartTitle(run), Subtitle: ChartSubtitle(run)},
		charts.ToolboxOpts{
			Show: true,
		},
	)
	var distances = make([]int, len(run.Statistics.Histogram))
	var counts = make([]int, len(run.Statistics.Histogram))
	for distance, count := range run.Statistics.Histogram {
		distances[distance] = distance
		counts[distance] = count
	}
	barChart.AddXAxis(distances)
	barChart.AddYAxis(SeriesName, counts)
	return barChart
}

func WriteChart(w io.Writer, run *storage.Run) error {
	if err := BuildChart(run).Render(w); err != nil {
		return errors.Wrapf(err, "rendering chart for %s", run.Key())
	}
	return nil
}
