package osmrouter

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

const (
	DEFAULT_CELL_SIZE = 100.0
)

// GridCell is integer coordinates of a cell in uniform grid
type GridCell struct {
	X, Y int
}

// SpatialIndex is uniform grid of routable nodes in projected (pixel) space
type SpatialIndex struct {
	grid     map[GridCell][]*Node
	cellSize float64
}

func newSpatialIndex(cellSize float64) *SpatialIndex {
	return &SpatialIndex{
		grid:     make(map[GridCell][]*Node),
		cellSize: cellSize,
	}
}

// CellSize returns size of the cell in projected units
func (si *SpatialIndex) CellSize() float64 {
	return si.cellSize
}

func (si *SpatialIndex) getCell(pt orb.Point) GridCell {
	return GridCell{
		X: int(math.Floor(pt.X() / si.cellSize)),
		Y: int(math.Floor(pt.Y() / si.cellSize)),
	}
}

func (si *SpatialIndex) insert(node *Node) {
	cell := si.getCell(node.point)
	si.grid[cell] = append(si.grid[cell], node)
}

// Nearest returns node closest to the given point among nodes of the same grid cell.
// Neighboring cells are not examined, so a closer node just across the cell border is never returned.
// Ties are resolved in favor of the node inserted first.
func (si *SpatialIndex) Nearest(pt orb.Point) (*Node, error) {
	cell := si.getCell(pt)
	nodes := si.grid[cell]
	if len(nodes) == 0 {
		return nil, errors.Wrapf(ErrNodeNotFound, "Cell (%d, %d)", cell.X, cell.Y)
	}
	best := nodes[0]
	bestDist := planar.DistanceSquared(best.point, pt)
	for _, node := range nodes[1:] {
		dist := planar.DistanceSquared(node.point, pt)
		if dist < bestDist {
			best = node
			bestDist = dist
		}
	}
	return best, nil
}

// CellNodes returns nodes of the given cell in insertion order. Returned slice must not be modified.
func (si *SpatialIndex) CellNodes(cell GridCell) []*Node {
	return si.grid[cell]
}

// CellsNum returns number of non-empty cells
func (si *SpatialIndex) CellsNum() int {
	return len(si.grid)
}
