package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{4}, 4},
		{"several", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-2, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.values), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestStdDev_Sample(t *testing.T) {
	// 2,4,4,4,5,5,7,9: population std is 2, sample std is sqrt(32/7)
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdDev(values), 1e-12)
	assert.InDelta(t, 32.0/7.0, Variance(values), 1e-12)

	assert.True(t, math.IsNaN(StdDev([]float64{3})))
	assert.True(t, math.IsNaN(StdDev(nil)))
}

func TestMedian(t *testing.T) {
	values := []float64{5, 1, 3}
	assert.Equal(t, 3.0, Median(values))
	assert.Equal(t, []float64{5, 1, 3}, values, "input must stay untouched")

	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestPercentile(t *testing.T) {
	values := []float64{15, 20, 35, 40, 50}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 15},
		{25, 20},
		{40, 29},
		{100, 50},
		{150, 50},
		{-5, 15},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Percentile(values, tt.p), 1e-12, "p=%v", tt.p)
	}
	assert.True(t, math.IsNaN(Percentile(nil, 50)))
}

func TestMinMax(t *testing.T) {
	lo, ok := Min([]int{29, 20, 39})
	assert.True(t, ok)
	assert.Equal(t, 20, lo)

	hi, ok := Max([]int{29, 20, 39})
	assert.True(t, ok)
	assert.Equal(t, 39, hi)

	_, ok = Min([]int(nil))
	assert.False(t, ok)
	_, ok = Max([]float64{})
	assert.False(t, ok)
}

func TestSummarize_SkipsNaN(t *testing.T) {
	s := Summarize([]float64{4.5, math.NaN(), 4.9, 4.7})
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 4.7, s.Mean, 1e-12)
	assert.InDelta(t, 0.2, s.Std, 1e-12)

	empty := Summarize([]float64{math.NaN()})
	assert.Zero(t, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Std))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 10.0, Ratio(100, 10))
	assert.True(t, math.IsNaN(Ratio(5, 0)))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 4.67, Round(4.666666, 2))
	assert.Equal(t, 2.0, Round(2.004, 2))
	assert.Equal(t, -1.24, Round(-1.236, 2))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}
