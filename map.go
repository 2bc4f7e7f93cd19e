package osmrouter

import (
	"context"
	"io"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// Map is aggregate of nodes, highways, routing graph and spatial index.
// Map is read-only once built, so its methods are safe for concurrent use.
type Map struct {
	projection   *ProjectionParams
	nodes        map[NodeID]*Node
	routable     []*Node
	ways         []*Way
	graph        *Graph
	spatialIndex *SpatialIndex
	finder       *pathFinder
}

// LoadMap builds map from file for viewport of given size.
// Both OSM XML ('.osm', '.xml') and PBF ('.pbf') files are supported.
func LoadMap(ctx context.Context, filename string, width, height float64, options ...func(*Parser)) (*Map, error) {
	parser := NewParser(options...)
	data, err := parser.readOSMFile(ctx, filename)
	if err != nil {
		return nil, err
	}
	return parser.buildMap(data, width, height)
}

// BuildMap builds map from OSM XML document for viewport of given size
func BuildMap(ctx context.Context, r io.Reader, width, height float64, options ...func(*Parser)) (*Map, error) {
	parser := NewParser(options...)
	data, err := parser.readOSM(ctx, r)
	if err != nil {
		return nil, err
	}
	return parser.buildMap(data, width, height)
}

func (parser *Parser) buildMap(data *osmDataRaw, width, height float64) (*Map, error) {
	if data.bounds == nil {
		return nil, loadError(nil, "no bounds element")
	}
	minBound := GeoPoint{Lat: data.bounds.MinLat, Lon: data.bounds.MinLon}
	maxBound := GeoPoint{Lat: data.bounds.MaxLat, Lon: data.bounds.MaxLon}
	if !minBound.isValid() || !maxBound.isValid() {
		return nil, loadError(nil, "bounds [%s; %s] are out of range", minBound, maxBound)
	}
	projection, err := NewProjectionParams(width, height, minBound, maxBound)
	if err != nil {
		return nil, err
	}

	st := time.Now()
	nodes := make(map[NodeID]*Node, len(data.nodes))
	for _, nodeRaw := range data.nodes {
		if !nodeRaw.Geom.isValid() {
			return nil, loadError(nil, "coordinates of node '%d' are out of range: %s", nodeRaw.ID, nodeRaw.Geom)
		}
		if _, ok := nodes[nodeRaw.ID]; ok {
			return nil, loadError(nil, "duplicate node '%d'", nodeRaw.ID)
		}
		nodes[nodeRaw.ID] = newNode(nodeRaw.ID, nodeRaw.Geom, projection)
	}
	parser.logger.Debug("Nodes have been projected", zap.Int("nodes", len(nodes)), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	ways := make([]*Way, 0, len(data.ways))
	routable := make([]*Node, 0)
	routableSeen := make(map[NodeID]struct{})
	for _, wayRaw := range data.ways {
		way := &Way{
			ID:      wayRaw.ID,
			Surface: wayRaw.Surface,
			nodes:   make([]*Node, 0, len(wayRaw.Nodes)),
		}
		for _, nodeID := range wayRaw.Nodes {
			node, ok := nodes[nodeID]
			if !ok {
				return nil, loadError(nil, "no such node '%d'. Way ID: '%d'", nodeID, wayRaw.ID)
			}
			way.nodes = append(way.nodes, node)
			if _, ok := routableSeen[nodeID]; !ok {
				routableSeen[nodeID] = struct{}{}
				routable = append(routable, node)
			}
		}
		if len(way.nodes) < 2 {
			parser.logger.Warn("Way has less than two nodes", zap.Int64("way_id", int64(way.ID)), zap.Int("nodes", len(way.nodes)))
		}
		ways = append(ways, way)
	}
	parser.logger.Debug("Ways have been resolved", zap.Int("ways", len(ways)), zap.Int("routable_nodes", len(routable)), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	graph := newGraph()
	for _, way := range ways {
		graph.addWay(way)
	}
	parser.logger.Debug("Graph has been prepared", zap.Int("vertices", graph.VerticesNum()), zap.Int("edges", graph.EdgesNum()), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	spatialIndex := newSpatialIndex(parser.cellSize)
	for _, node := range routable {
		spatialIndex.insert(node)
	}
	parser.logger.Debug("Spatial index has been prepared", zap.Int("cells", spatialIndex.CellsNum()), zap.Duration("elapsed", time.Since(st)))

	return &Map{
		projection:   projection,
		nodes:        nodes,
		routable:     routable,
		ways:         ways,
		graph:        graph,
		spatialIndex: spatialIndex,
		finder: &pathFinder{
			graph:         graph,
			nodes:         nodes,
			maxIterations: parser.maxIterations,
		},
	}, nil
}

// Projection returns projection parameters of the map
func (m *Map) Projection() *ProjectionParams {
	return m.projection
}

// Node returns node by its identifier
func (m *Map) Node(id NodeID) (*Node, bool) {
	node, ok := m.nodes[id]
	return node, ok
}

// NodesNum returns number of all nodes of the document
func (m *Map) NodesNum() int {
	return len(m.nodes)
}

// RoutableNodes returns nodes belonging to at least one highway, in order of first appearance
func (m *Map) RoutableNodes() []*Node {
	nodes := make([]*Node, len(m.routable))
	copy(nodes, m.routable)
	return nodes
}

// Ways returns highways of the map. Returned slice must not be modified.
func (m *Map) Ways() []*Way {
	return m.ways
}

// Graph returns routing graph
func (m *Map) Graph() *Graph {
	return m.graph
}

// SpatialIndex returns grid index of routable nodes
func (m *Map) SpatialIndex() *SpatialIndex {
	return m.spatialIndex
}

// NearestNode returns routable node closest to the given pixel point within the same grid cell.
// Returns ErrNodeNotFound (wrapped) if the cell is empty.
func (m *Map) NearestNode(pt orb.Point) (*Node, error) {
	return m.spatialIndex.Nearest(pt)
}

// FindPath returns shortest path between two nodes using only edges which surface intersects allowed mask.
// Returns ErrNoPath (wrapped) if nodes are not connected, ErrSearchLimit (wrapped) if iterations limit exceeded
// or context error if context is done.
func (m *Map) FindPath(ctx context.Context, from, to *Node, allowed SurfaceType) (Path, error) {
	return m.finder.findPath(ctx, from, to, allowed)
}
