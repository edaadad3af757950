package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceHaversine is the textbook formula, independent of s2.
func referenceHaversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"bangalore short hop", 12.9, 77.6, 12.92, 77.62},
		{"across town", 22.745049, 75.892471, 22.765049, 75.912471},
		{"long haul", 51.5074, -0.1278, 40.7128, -74.0060},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			want := referenceHaversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, want, got, 1e-6)
		})
	}
}

func TestHaversineKm_ShortHopMagnitude(t *testing.T) {
	got := HaversineKm(12.9, 77.6, 12.92, 77.62)
	assert.InDelta(t, 3.105, got, 0.01)
}

func TestHaversineKm_SamePoint(t *testing.T) {
	assert.Zero(t, HaversineKm(12.97, 77.59, 12.97, 77.59))
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(12.9, 77.6))
	assert.True(t, ValidCoordinate(-12.9, -77.6))
	assert.False(t, ValidCoordinate(95, 0))
	assert.False(t, ValidCoordinate(0, 181))
}
