package osmrouter

import (
	"container/heap"
	"context"

	"github.com/pkg/errors"
)

// pathFinder is A* search over the graph. Edge weights and heuristic are Euclidean distances
// in projected space, so the heuristic is consistent and the first extraction of target is optimal.
type pathFinder struct {
	graph         *Graph
	nodes         map[NodeID]*Node
	maxIterations int
}

// findPath returns nodes sequence from source to target (both inclusive).
// Only edges whose surface intersects allowed mask are traversed.
func (pf *pathFinder) findPath(ctx context.Context, from, to *Node, allowed SurfaceType) (Path, error) {
	if from.id == to.id {
		return Path{Nodes: []*Node{from}}, nil
	}
	bestKnownLength := map[NodeID]float64{from.id: 0}
	predecessor := make(map[NodeID]*Node)

	openSet := &priorityQueue{}
	heap.Push(openSet, &searchItem{node: from, priority: findDistance(from.point, to.point)})

	iterations := 0
	found := false
	for openSet.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Path{}, errors.Wrap(err, "Path search has been interrupted")
		}
		iterations++
		if pf.maxIterations > 0 && iterations > pf.maxIterations {
			return Path{}, errors.Wrapf(ErrSearchLimit, "Limit is %d", pf.maxIterations)
		}
		current := heap.Pop(openSet).(*searchItem)
		if current.node.id == to.id {
			found = true
			break
		}
		// Stale entries are expanded again: improvement check below filters useless relaxations
		currentLength := bestKnownLength[current.node.id]
		for _, edge := range pf.graph.Neighbors(current.node.id) {
			if !edge.Surface.Intersects(allowed) {
				continue
			}
			next, ok := pf.nodes[edge.Target]
			if !ok {
				continue
			}
			candidate := currentLength + edge.Weight
			if known, ok := bestKnownLength[next.id]; ok && candidate >= known {
				continue
			}
			bestKnownLength[next.id] = candidate
			predecessor[next.id] = current.node
			heap.Push(openSet, &searchItem{
				node:     next,
				priority: candidate + findDistance(next.point, to.point),
			})
		}
	}
	if !found {
		return Path{}, errors.Wrapf(ErrNoPath, "From '%d' to '%d' via '%s'", from.id, to.id, allowed)
	}

	nodes := []*Node{to}
	for current := to; current.id != from.id; {
		current = predecessor[current.id]
		nodes = append(nodes, current)
	}
	reversePath(nodes)
	return Path{Nodes: nodes}, nil
}

func reversePath(nodes []*Node) {
	inputLen := len(nodes)
	inputMid := inputLen / 2
	for i := 0; i < inputMid; i++ {
		j := inputLen - i - 1
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
