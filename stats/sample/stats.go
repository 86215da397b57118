// Package sample computes aggregate statistics over benchmark trial
// samples (throughput values, one per trial).
package sample

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds aggregate statistics of a sample set.
type Stats struct {
	Count  int
	Peak   float64 // maximum sample
	Min    float64
	Mean   float64
	StdDev float64 // NaN for fewer than two samples
}

// emptyStats is returned for an empty sample set.
func emptyStats() Stats {
	return Stats{
		Peak:   math.NaN(),
		Min:    math.NaN(),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
	}
}

// Calculate reduces samples into Stats. The input is not modified.
func Calculate(samples []float64) Stats {
	if len(samples) == 0 {
		return emptyStats()
	}

	return Stats{
		Count:  len(samples),
		Peak:   floats.Max(samples),
		Min:    floats.Min(samples),
		Mean:   stat.Mean(samples, nil),
		StdDev: stat.StdDev(samples, nil),
	}
}
