package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0088

// HaversineKm returns the great-circle distance in kilometres between two
// points given in decimal degrees. s2.LatLng.Distance uses the haversine
// formula, which stays accurate for the short hops of a city delivery.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	return Angle(lat1, lon1, lat2, lon2) * EarthRadiusKm
}

// Angle returns the central angle in radians between two points.
func Angle(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians()
}

// ValidCoordinate reports whether lat/lon lie within the WGS84 range.
func ValidCoordinate(lat, lon float64) bool {
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}
