package osmrouter

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type testNode struct {
	id NodeID
	pt orb.Point
}

type testWay struct {
	surface SurfaceType
	nodes   []NodeID
}

// newSyntheticMap prepares map directly in projected space, bypassing document parsing
func newSyntheticMap(t *testing.T, nodes []testNode, ways []testWay, maxIterations int) *Map {
	t.Helper()
	m := &Map{
		nodes:        make(map[NodeID]*Node, len(nodes)),
		graph:        newGraph(),
		spatialIndex: newSpatialIndex(DEFAULT_CELL_SIZE),
	}
	for _, n := range nodes {
		m.nodes[n.id] = &Node{id: n.id, point: n.pt}
	}
	seen := make(map[NodeID]struct{})
	for i, w := range ways {
		way := &Way{ID: osm.WayID(i + 1), Surface: w.surface}
		for _, id := range w.nodes {
			node, ok := m.nodes[id]
			if !ok {
				t.Fatalf("Way %d refers to unknown node %d", i, id)
			}
			way.nodes = append(way.nodes, node)
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				m.routable = append(m.routable, node)
			}
		}
		m.ways = append(m.ways, way)
		m.graph.addWay(way)
	}
	for _, node := range m.routable {
		m.spatialIndex.insert(node)
	}
	m.finder = &pathFinder{graph: m.graph, nodes: m.nodes, maxIterations: maxIterations}
	return m
}

func mustNode(t *testing.T, m *Map, id NodeID) *Node {
	t.Helper()
	node, ok := m.Node(id)
	if !ok {
		t.Fatalf("Node %d should exist", id)
	}
	return node
}

func sameIDs(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
