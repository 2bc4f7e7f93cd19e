package osmrouter

import (
	"math"

	"github.com/paulmach/orb"
)

// mercatorProject returns normalized cylindrical projection of the given point.
// X is in [-1, 0] for valid longitudes, Y decreases towards the pole.
func mercatorProject(pt GeoPoint) orb.Point {
	latRad := degreesToRadians(pt.Lat)
	return orb.Point{
		(pt.Lon - 180.0) / 360.0,
		(1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi - 1.0) / 2.0,
	}
}

// ProjectionParams maps geographic coordinates into pixel space of fixed viewport
type ProjectionParams struct {
	width     float64
	height    float64
	minCoords orb.Point
	maxCoords orb.Point
	factor    orb.Point
}

// NewProjectionParams prepares projection for the viewport of given size and declared bounding box.
// Returns LoadError for degenerate bounding box or empty viewport.
func NewProjectionParams(width, height float64, minBound, maxBound GeoPoint) (*ProjectionParams, error) {
	if width <= 0 || height <= 0 {
		return nil, loadError(nil, "viewport must have positive size, got %fx%f", width, height)
	}
	minCoords := mercatorProject(minBound)
	maxCoords := mercatorProject(maxBound)
	if !isFinitePoint(minCoords) || !isFinitePoint(maxCoords) {
		return nil, loadError(nil, "bounds [%s; %s] can't be projected", minBound, maxBound)
	}
	if maxCoords.X() == minCoords.X() || maxCoords.Y() == minCoords.Y() {
		return nil, loadError(nil, "degenerate bounds [%s; %s]", minBound, maxBound)
	}
	return &ProjectionParams{
		width:     width,
		height:    height,
		minCoords: minCoords,
		maxCoords: maxCoords,
		factor: orb.Point{
			width / (maxCoords.X() - minCoords.X()),
			height / (minCoords.Y() - maxCoords.Y()),
		},
	}, nil
}

// Width returns viewport width
func (params *ProjectionParams) Width() float64 {
	return params.width
}

// Height returns viewport height
func (params *ProjectionParams) Height() float64 {
	return params.height
}

// Project returns pixel coordinates for the given geographic point
func (params *ProjectionParams) Project(pt GeoPoint) orb.Point {
	coords := mercatorProject(pt)
	return orb.Point{
		(coords.X() - params.minCoords.X()) * params.factor.X(),
		(coords.Y() - params.maxCoords.Y()) * params.factor.Y(),
	}
}

func isFinitePoint(pt orb.Point) bool {
	for _, v := range pt {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
