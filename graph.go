package osmrouter

// Edge is a directed connection to neighbor node
type Edge struct {
	Target  NodeID
	Surface SurfaceType
	// Euclidean distance between projected points of source and target
	Weight float64
}

// Graph is adjacency mapping from node to ordered list of outgoing edges.
// Undirected connectivity is represented by two directed edges.
type Graph struct {
	edges    map[NodeID][]Edge
	edgesNum int
}

func newGraph() *Graph {
	return &Graph{
		edges: make(map[NodeID][]Edge),
	}
}

// addEdge inserts directed edge.
// If the edge already exists its surface and weight are replaced (masks are not merged).
func (graph *Graph) addEdge(from, to NodeID, surface SurfaceType, weight float64) {
	neighbors := graph.edges[from]
	for i := range neighbors {
		if neighbors[i].Target == to {
			neighbors[i].Surface = surface
			neighbors[i].Weight = weight
			return
		}
	}
	graph.edges[from] = append(neighbors, Edge{
		Target:  to,
		Surface: surface,
		Weight:  weight,
	})
	graph.edgesNum++
}

// addWay adds directed edges in both directions for every consecutive pair of way's nodes
func (graph *Graph) addWay(way *Way) {
	for i := 1; i < len(way.nodes); i++ {
		source := way.nodes[i-1]
		target := way.nodes[i]
		weight := findDistance(source.point, target.point)
		graph.addEdge(source.id, target.id, way.Surface, weight)
		graph.addEdge(target.id, source.id, way.Surface, weight)
	}
}

// Neighbors returns outgoing edges of the node. Returned slice must not be modified.
func (graph *Graph) Neighbors(id NodeID) []Edge {
	return graph.edges[id]
}

// Edge returns directed edge between two nodes
func (graph *Graph) Edge(from, to NodeID) (Edge, bool) {
	for _, edge := range graph.edges[from] {
		if edge.Target == to {
			return edge, true
		}
	}
	return Edge{}, false
}

// EdgesNum returns number of directed edges
func (graph *Graph) EdgesNum() int {
	return graph.edgesNum
}

// VerticesNum returns number of nodes having at least one outgoing edge
func (graph *Graph) VerticesNum() int {
	return len(graph.edges)
}

// ForEachEdge iterates over all directed edges. Order of sources is not defined.
func (graph *Graph) ForEachEdge(fn func(from NodeID, edge Edge)) {
	for from, neighbors := range graph.edges {
		for _, edge := range neighbors {
			fn(from, edge)
		}
	}
}
