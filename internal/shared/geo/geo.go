package geo

import "math"

// EarthRadiusM is the sphere radius used by GPX tooling for haversine distances.
const EarthRadiusM = 6378137.0

// HaversineM returns the great-circle distance between two points in metres.
func HaversineM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat1 - lat2)
	dLng := radians(lng1 - lng2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(radians(lat1))*math.Cos(radians(lat2))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusM * c
}

func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	return HaversineM(lat1, lng1, lat2, lng2) / 1000
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
