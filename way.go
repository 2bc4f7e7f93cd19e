package osmrouter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Way is an ordered sequence of routable nodes sharing single surface classification
type Way struct {
	ID      osm.WayID
	Surface SurfaceType
	nodes   []*Node
}

// Nodes returns copy of way's nodes sequence
func (way *Way) Nodes() []*Node {
	nodes := make([]*Node, len(way.nodes))
	copy(nodes, way.nodes)
	return nodes
}

// Points returns projected coordinates of way's nodes (suitable for drawing polyline)
func (way *Way) Points() orb.LineString {
	line := make(orb.LineString, len(way.nodes))
	for i, node := range way.nodes {
		line[i] = node.point
	}
	return line
}

// GeoPoints returns geographic coordinates of way's nodes
func (way *Way) GeoPoints() []GeoPoint {
	line := make([]GeoPoint, len(way.nodes))
	for i, node := range way.nodes {
		line[i] = node.geom
	}
	return line
}

// wayRaw is a highway as it has been scanned: node references are not resolved yet
type wayRaw struct {
	ID      osm.WayID
	Nodes   []osm.NodeID
	Surface SurfaceType
}
