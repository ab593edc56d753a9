// Package geo provides great-circle distance and clamp helpers for the
// candidate generation engine. Distances are haversine estimates on the mean
// Earth radius; good enough for threshold filtering and minute-level travel
// models, not for navigation.
package geo

import "math"

// EarthRadiusM is the mean radius of Earth in meters.
const EarthRadiusM = 6_371_000.0

// DistanceMeters returns the great-circle distance between two coordinates
// in meters. Symmetric, and zero for coincident points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusM * c
}

// ClampInt bounds v to [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampFloat bounds v to [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
