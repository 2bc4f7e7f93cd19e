package osmrouter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// NodeID is identifier of a node inside the map. It is the OSM identifier of the node.
type NodeID = osm.NodeID

// Node is a geo-referenced point of the map.
// It is owned by Map and never mutated after the map has been built.
type Node struct {
	id    NodeID
	geom  GeoPoint
	point orb.Point
}

func newNode(id NodeID, geom GeoPoint, projection *ProjectionParams) *Node {
	return &Node{
		id:    id,
		geom:  geom,
		point: projection.Project(geom),
	}
}

// ID returns node identifier
func (node *Node) ID() NodeID {
	return node.id
}

// GeoPoint returns geographic coordinates of node
func (node *Node) GeoPoint() GeoPoint {
	return node.geom
}

// Point returns projected (pixel) coordinates of node
func (node *Node) Point() orb.Point {
	return node.point
}
