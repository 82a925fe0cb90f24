package repositories

import (
	"math"
)

const earthRadiusKm = 6371.0

func haversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// boundingBox returns the lat/lon bounds of a square that fully contains the
// circle of radiusMeters around the center. Used as a coarse SQL prefilter
// before the exact haversine check.
func boundingBox(lat, lon, radiusMeters float64) (minLat, maxLat, minLon, maxLon float64) {
	radiusKm := radiusMeters / 1000

	latDelta := (radiusKm / earthRadiusKm) * 180 / math.Pi

	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	lonDelta := latDelta / cosLat

	return lat - latDelta, lat + latDelta, lon - lonDelta, lon + lonDelta
}
