package analytics

import (
	"github.com/fernandosanchezjr/sparsefsm/encoder"
	"gonum.org/v1/gonum/stat"
)

// Histogram is indexed by Hamming distance and holds the number of pairs at that distance.
type Histogram []int

func (h Histogram) Total() int {
	var total int
	for _, count := range h {
		total += count
	}
	return total
}

// Peak is the largest bucket count.
func (h Histogram) Peak() int {
	var peak int
	for _, count := range h {
		if count > peak {
			peak = count
		}
	}
	return peak
}

// Mode is the smallest distance holding the peak count.
func (h Histogram) Mode() int {
	var peak = h.Peak()
	for distance, count := range h {
		if count == peak {
			return distance
		}
	}
	return 0
}

// Share is the percentage of pairs at distance.
func (h Histogram) Share(distance int) float64 {
	var total = h.Total()
	if total == 0 || distance < 0 || distance >= len(h) {
		return 0
	}
	return 100.0 * float64(h[distance]) / float64(total)
}

type Statistics struct {
	Width     int
	Histogram Histogram
	Pairs     int
	Min       int
	Max       int
	Mean      float64
	StdDev    float64
	Mode      int
}

// Collect measures every unordered pair of set. With fewer than two encodings
// there is nothing to measure and all extrema stay zero.
func Collect(set encoder.EncodingSet, width int) *Statistics {
	var stats = &Statistics{
		Width:     width,
		Histogram: make(Histogram, width+1),
		Min:       width,
	}
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			var distance = encoder.Distance(set[i], set[j], width)
			stats.Histogram[distance] += 1
			stats.Pairs += 1
			if distance < stats.Min {
				stats.Min = distance
			}
			if distance > stats.Max {
				stats.Max = distance
			}
		}
	}
	if stats.Pairs == 0 {
		stats.Min = 0
		return stats
	}
	var distances = make([]float64, len(stats.Histogram))
	var weights = make([]float64, len(stats.Histogram))
	for distance, count := range stats.Histogram {
		distances[distance] = float64(distance)
		weights[distance] = float64(count)
	}
	stats.Mean, stats.StdDev = stat.PopMeanStdDev(distances, weights)
	stats.Mode = stats.Histogram.Mode()
	return stats
}
