package osmrouter

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestGreatCircleDistance(t *testing.T) {
	p1 := GeoPoint{
		Lon: 37.6417350769043,
		Lat: 55.751849391735284,
	}
	p2 := GeoPoint{
		Lon: 37.668514251708984,
		Lat: 55.73261980350401,
	}
	res := 2.71693096539 // kilometers
	gcd := greatCircleDistance(p1, p2)
	if Round(gcd, 0.0005) != Round(res, 0.0005) {
		t.Errorf("Great circle dist must be %f, but got %f", res, gcd)
	}
}

func Round(x, unit float64) float64 {
	if x > 0 {
		return float64(int64(x/unit+0.5)) * unit
	}
	return float64(int64(x/unit-0.5)) * unit
}

func TestSphericalLength(t *testing.T) {
	line := []GeoPoint{
		{Lon: 37.6417350769043, Lat: 55.751849391735284},
		{Lon: 37.668514251708984, Lat: 55.73261980350401},
		{Lon: 37.6417350769043, Lat: 55.751849391735284},
	}
	res := 2 * 2.71693096539
	length := getSphericalLength(line)
	if Round(length, 0.001) != Round(res, 0.001) {
		t.Errorf("Spherical length must be %f, but got %f", res, length)
	}
	if l := getSphericalLength(line[:1]); l != 0 {
		t.Errorf("Length of single point line must be 0, but got %f", l)
	}
}

func TestPlanarLength(t *testing.T) {
	line := []orb.Point{{0, 0}, {3, 4}, {3, 10}}
	if l := getLength(line); math.Abs(l-11.0) > 1e-12 {
		t.Errorf("Length must be 11, but got %f", l)
	}
	if l := getLength(nil); l != 0 {
		t.Errorf("Length of empty line must be 0, but got %f", l)
	}
}
