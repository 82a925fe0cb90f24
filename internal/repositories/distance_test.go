package repositories

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	d := haversineDistanceKm(44.7866, 20.4489, 44.7866, 20.4489)
	if d != 0 {
		t.Fatalf("expected zero distance for identical points, got %f", d)
	}
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.19 km on a 6371 km sphere.
	d := haversineDistanceKm(0, 0, 1, 0)
	expected := earthRadiusKm * math.Pi / 180

	if math.Abs(d-expected) > 0.01 {
		t.Fatalf("expected %.4f km, got %.4f km", expected, d)
	}
}

func TestHaversineKnownCityPair(t *testing.T) {
	// Belgrade to Novi Sad, roughly 69 km great-circle.
	d := haversineDistanceKm(44.7866, 20.4489, 45.2671, 19.8335)
	if d < 65 || d > 75 {
		t.Fatalf("expected roughly 69 km, got %.2f km", d)
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	lat, lon := 44.7866, 20.4489
	radiusMeters := 5000.0

	minLat, maxLat, minLon, maxLon := boundingBox(lat, lon, radiusMeters)

	if minLat >= lat || maxLat <= lat || minLon >= lon || maxLon <= lon {
		t.Fatalf("center must be strictly inside the box: [%f %f] [%f %f]", minLat, maxLat, minLon, maxLon)
	}

	// A point at the radius due north must still be inside the box.
	north := lat + (radiusMeters/1000/earthRadiusKm)*180/math.Pi
	if north > maxLat+1e-9 {
		t.Fatalf("point at radius due north (%f) falls outside maxLat (%f)", north, maxLat)
	}

	// The box must not be absurdly larger than the circle.
	if maxLat-minLat > 1 {
		t.Fatalf("latitude span too wide for a 5 km radius: %f degrees", maxLat-minLat)
	}
}
