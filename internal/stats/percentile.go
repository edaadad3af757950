package stats

import (
	"math"
	"slices"
)

// Percentile calculates the p-th percentile (0-100) using linear interpolation
// between closest ranks. It returns NaN for empty input; values is not modified.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	p = math.Max(0, math.Min(100, p))

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	index := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	// Linear interpolation
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Median calculates the median value, averaging the two middle values for
// even-length input
func Median(values []float64) float64 {
	return Percentile(values, 50)
}
