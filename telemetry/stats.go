package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RunStats is the end-of-run summary written to the run report.
type RunStats struct {
	Steps       int     `csv:"steps"`
	FinalX      float64 `csv:"final_x"`
	FinalY      float64 `csv:"final_y"`
	FinalZ      float64 `csv:"final_z"`
	HistoryLen  int     `csv:"history_len"`
	FieldLen    int     `csv:"field_len"`
	Obstacles   int     `csv:"obstacles"`
	PathLen     int     `csv:"path_len"`
	TotalEnergy float64 `csv:"total_energy"`
	ElapsedSec  float64 `csv:"elapsed_sec"`
}

// DistanceStats summarizes a window of limb-distance samples.
type DistanceStats struct {
	Mean float64
	Std  float64
	P10  float64
	P50  float64
	P90  float64
}

// SummarizeDistances computes distribution statistics over the given
// samples. Returns zeroes for an empty input.
func SummarizeDistances(values []float64) DistanceStats {
	if len(values) == 0 {
		return DistanceStats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := DistanceStats{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}
