package stats

import (
	"cmp"
	"math"
	"slices"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
// It returns NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance calculates the sample variance (N-1 denominator).
// Fewer than two values give NaN.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}

	mean := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(values)-1)
}

// StdDev calculates the sample standard deviation
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Min returns the smallest value and false when values is empty
func Min[T cmp.Ordered](values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	return slices.Min(values), true
}

// Max returns the largest value and false when values is empty
func Max[T cmp.Ordered](values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	return slices.Max(values), true
}

// Finite returns the values that are neither NaN nor infinite.
// Missing measurements are stored as NaN and must not poison a mean.
func Finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Ratio divides num by den, returning NaN when den is zero
func Ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Summary is the count, mean and sample standard deviation of a sample
type Summary struct {
	Count int
	Mean  float64
	Std   float64
}

// Summarize computes a Summary over the finite values only.
func Summarize(values []float64) Summary {
	finite := Finite(values)
	return Summary{
		Count: len(finite),
		Mean:  Mean(finite),
		Std:   StdDev(finite),
	}
}
