package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/attractor/internal/storage"
)

type AxisSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type Summary struct {
	Samples int         `json:"samples"`
	X       AxisSummary `json:"x"`
	Y       AxisSummary `json:"y"`
	Z       AxisSummary `json:"z"`
}

// SummarizeAxis returns the zero summary for empty data.
func SummarizeAxis(data []float64) AxisSummary {
	if len(data) == 0 {
		return AxisSummary{}
	}
	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	return AxisSummary{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(data),
		Max:    floats.Max(data),
	}
}

// Summarize pools every sample regardless of trajectory.
func Summarize(samples []storage.Sample) Summary {
	return Summary{
		Samples: len(samples),
		X:       SummarizeAxis(storage.Axis(samples, 0)),
		Y:       SummarizeAxis(storage.Axis(samples, 1)),
		Z:       SummarizeAxis(storage.Axis(samples, 2)),
	}
}

// Metrics flattens the summary for run metadata.
func (s Summary) Metrics() map[string]float64 {
	m := map[string]float64{"samples": float64(s.Samples)}
	for name, a := range map[string]AxisSummary{"x": s.X, "y": s.Y, "z": s.Z} {
		m["mean_"+name] = a.Mean
		m["std_"+name] = a.StdDev
		m["min_"+name] = a.Min
		m["max_"+name] = a.Max
	}
	return m
}
