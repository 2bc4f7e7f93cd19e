package osmrouter

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
)

func TestGraphWayEdges(t *testing.T) {
	nodes := []testNode{
		{1, orb.Point{0, 0}},
		{2, orb.Point{1, 0}},
		{3, orb.Point{2, 0}},
		{4, orb.Point{3, 0}},
		{5, orb.Point{3, 4}},
	}
	m := newSyntheticMap(t, nodes, []testWay{
		{SURFACE_BICYCLE, []NodeID{1, 2, 3, 4}},
	}, 0)
	// k nodes give 2(k-1) directed edges
	if n := m.Graph().EdgesNum(); n != 6 {
		t.Fatalf("Expected 6 directed edges, got %d", n)
	}
	for _, pair := range [][2]NodeID{{1, 2}, {2, 1}, {2, 3}, {3, 2}, {3, 4}, {4, 3}} {
		edge, ok := m.Graph().Edge(pair[0], pair[1])
		if !ok {
			t.Errorf("Edge %d->%d must exist", pair[0], pair[1])
			continue
		}
		if edge.Surface != SURFACE_BICYCLE {
			t.Errorf("Edge %d->%d must have bicycle surface, got '%s'", pair[0], pair[1], edge.Surface)
		}
		if edge.Weight != 1.0 {
			t.Errorf("Edge %d->%d must have weight 1, got %f", pair[0], pair[1], edge.Weight)
		}
	}
	if _, ok := m.Graph().Edge(1, 3); ok {
		t.Errorf("Non consecutive nodes must not be connected")
	}
	if len(m.Graph().Neighbors(5)) != 0 {
		t.Errorf("Node outside of any way must have no edges")
	}
}

// Later way replaces surface of the shared directed pair instead of merging masks
func TestGraphOverwriteSurface(t *testing.T) {
	nodes := []testNode{
		{1, orb.Point{0, 0}},
		{2, orb.Point{1, 0}},
		{3, orb.Point{2, 0}},
	}
	m := newSyntheticMap(t, nodes, []testWay{
		{SURFACE_BICYCLE, []NodeID{1, 2, 3}},
		{SURFACE_CAR, []NodeID{2, 1}},
	}, 0)
	if n := m.Graph().EdgesNum(); n != 4 {
		t.Fatalf("Shared pair must not produce extra edges: expected 4, got %d", n)
	}
	for _, pair := range [][2]NodeID{{1, 2}, {2, 1}} {
		edge, _ := m.Graph().Edge(pair[0], pair[1])
		if edge.Surface != SURFACE_CAR {
			t.Errorf("Edge %d->%d must be overwritten with car surface, got '%s'", pair[0], pair[1], edge.Surface)
		}
	}
	edge, _ := m.Graph().Edge(2, 3)
	if edge.Surface != SURFACE_BICYCLE {
		t.Errorf("Edge 2->3 must keep bicycle surface, got '%s'", edge.Surface)
	}
	// Neighbors order is kept on overwrite
	neighbors := m.Graph().Neighbors(2)
	if len(neighbors) != 2 || neighbors[0].Target != 1 || neighbors[1].Target != 3 {
		t.Errorf("Unexpected neighbors of node 2: %v", neighbors)
	}

	_, err := m.FindPath(context.Background(), mustNode(t, m, 1), mustNode(t, m, 3), SURFACE_BICYCLE)
	if err == nil {
		t.Errorf("Bicycle path must be lost after overwrite")
	}
}
