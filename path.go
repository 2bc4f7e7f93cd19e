package osmrouter

import (
	"github.com/paulmach/orb"
)

// Path is a sequence of nodes from source to target (both inclusive)
type Path struct {
	Nodes []*Node
}

// Length returns length of the path in projected units
func (path Path) Length() float64 {
	return getLength(path.Points())
}

// GeoLength returns length of the path on Earth's surface (kilometers)
func (path Path) GeoLength() float64 {
	return getSphericalLength(path.GeoPoints())
}

// Points returns projected coordinates of path's nodes
func (path Path) Points() orb.LineString {
	line := make(orb.LineString, len(path.Nodes))
	for i, node := range path.Nodes {
		line[i] = node.point
	}
	return line
}

// GeoPoints returns geographic coordinates of path's nodes
func (path Path) GeoPoints() []GeoPoint {
	line := make([]GeoPoint, len(path.Nodes))
	for i, node := range path.Nodes {
		line[i] = node.geom
	}
	return line
}

// IDs returns identifiers of path's nodes
func (path Path) IDs() []NodeID {
	ids := make([]NodeID, len(path.Nodes))
	for i, node := range path.Nodes {
		ids[i] = node.id
	}
	return ids
}
