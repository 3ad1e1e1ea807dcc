// Package geo provides great-circle distance over a spherical Earth
// model (not ellipsoidal).
package geo

import (
	"github.com/golang/geo/s2"
)

// earthRadiusMeters is Earth's mean radius.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two
// coordinates given in decimal degrees, longitude first. Symmetric in
// its arguments and zero for identical points.
func Distance(lon1, lat1, lon2, lat2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}
