package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
)

// LinkDistances walks the carved links out from start by BFS and returns
// the distance to every reachable cell. Links are the only edges: two
// adjacent cells without a carved connection are not neighbors.
func LinkDistances(start *world.Cell) map[*world.Cell]int {
	distances := map[*world.Cell]int{start: 0}
	queue := []*world.Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range current.LinkedNeighbors() {
			if _, seen := distances[next]; seen {
				continue
			}
			distances[next] = distances[current] + 1
			queue = append(queue, next)
		}
	}

	return distances
}

// LinkDistance is the link-walk distance between two cells, or -1 when no
// carved path connects them.
func LinkDistance(start, target *world.Cell) int {
	if start == nil || target == nil {
		return -1
	}
	if d, ok := LinkDistances(start)[target]; ok {
		return d
	}
	return -1
}

// ReachableAvoiding returns every cell reachable from start without
// stepping on a blocked cell. Start itself is always included. Placement
// uses this to prove a key can be picked up before the obstacle it opens.
func ReachableAvoiding(start *world.Cell, blocked *mapset.Set[*world.Cell]) *mapset.Set[*world.Cell] {
	reachable := mapset.New[*world.Cell]()
	if start == nil {
		return &reachable
	}

	queue := []*world.Cell{start}
	reachable.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range current.LinkedNeighbors() {
			if reachable.Has(next) {
				continue
			}
			if blocked != nil && blocked.Has(next) {
				continue
			}
			reachable.Put(next)
			queue = append(queue, next)
		}
	}

	return &reachable
}
