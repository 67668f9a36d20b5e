package generator

import (
	"math"
	"math/rand"
	"sort"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/dungeon"
)

// edge is a candidate hallway between two rooms, identified by room IDs
// with a < b, weighted by squared center distance.
type edge struct {
	a, b   int
	weight int
}

// connectRooms carves the spanning tree of hallways that makes the floor
// one connected graph, then adds a few extra loops so deeper floors are
// not pure trees.
func connectRooms(stream *rand.Rand, grid *world.Grid, rooms []*dungeon.Room, extraChance float64) []*dungeon.Hallway {
	if len(rooms) < 2 {
		return nil
	}

	tree, rest := spanningTree(rooms)
	hallways := make([]*dungeon.Hallway, 0, len(tree))
	for _, e := range tree {
		hallways = append(hallways, carveHallway(stream, grid, rooms[e.a], rooms[e.b]))
	}

	// Extra non-tree edges, cheapest first; the stable sort keeps equal
	// weights in room insertion order.
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].weight < rest[j].weight })
	maxExtras := len(rooms) * 3 / 10
	extras := 0
	for _, e := range rest {
		if extras >= maxExtras {
			break
		}
		if !rng.Chance(stream, extraChance) {
			continue
		}
		hallways = append(hallways, carveHallway(stream, grid, rooms[e.a], rooms[e.b]))
		extras++
	}

	return hallways
}

// spanningTree runs Prim's algorithm over the complete room graph. Ties on
// weight fall to the earliest-placed room on both the pick and the parent
// update, which keeps the tree stable for a given room layout. It returns
// the tree edges and every unused candidate edge in insertion order.
func spanningTree(rooms []*dungeon.Room) (tree, rest []edge) {
	n := len(rooms)
	cost := make([]int, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := range cost {
		cost[i] = math.MaxInt
		parent[i] = -1
	}
	cost[0] = 0

	for range rooms {
		next := -1
		for j := 0; j < n; j++ {
			if inTree[j] || cost[j] == math.MaxInt {
				continue
			}
			if next == -1 || cost[j] < cost[next] {
				next = j
			}
		}
		inTree[next] = true

		if parent[next] >= 0 {
			a, b := parent[next], next
			if b < a {
				a, b = b, a
			}
			tree = append(tree, edge{a: a, b: b, weight: cost[next]})
		}

		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			if w := centerDistanceSq(rooms[next], rooms[j]); w < cost[j] {
				cost[j] = w
				parent[j] = next
			}
		}
	}

	inTreeEdge := make(map[[2]int]bool, len(tree))
	for _, e := range tree {
		inTreeEdge[[2]int{e.a, e.b}] = true
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if inTreeEdge[[2]int{i, j}] {
				continue
			}
			rest = append(rest, edge{a: i, b: j, weight: centerDistanceSq(rooms[i], rooms[j])})
		}
	}
	return tree, rest
}

// carveHallway cuts an L-shaped corridor between two room centers. The
// stream decides which axis runs first, so a given seed always bends its
// hallways the same way.
func carveHallway(stream *rand.Rand, grid *world.Grid, from, to *dungeon.Room) *dungeon.Hallway {
	start, end := from.Center(), to.Center()

	corner := world.Position{Row: start.Row, Col: end.Col}
	if !rng.CoinFlip(stream) {
		corner = world.Position{Row: end.Row, Col: start.Col}
	}

	path := lPath(start, corner, end)
	carvePath(grid, path)
	return &dungeon.Hallway{From: from.ID, To: to.ID, Path: path}
}

// lPath joins two straight runs at the corner without repeating it.
func lPath(start, corner, end world.Position) []world.Position {
	path := straightRun(start, corner)
	tail := straightRun(corner, end)
	return append(path, tail[1:]...)
}

// straightRun walks one axis-aligned segment, both endpoints included.
func straightRun(from, to world.Position) []world.Position {
	run := []world.Position{from}
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)
	for pos := from; pos != to; {
		pos.Row += dr
		pos.Col += dc
		run = append(run, pos)
	}
	return run
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// carvePath opens every cell along a path and links consecutive cells.
// These links, together with the in-room links, are the only adjacency
// movement ever follows; two corridors crossing without consecutive cells
// do not connect.
func carvePath(grid *world.Grid, path []world.Position) {
	var prev *world.Cell
	for _, pos := range path {
		cell := grid.At(pos)
		if cell == nil {
			continue
		}
		cell.Carved = true
		if prev != nil {
			grid.Link(prev, cell)
		}
		prev = cell
	}
}
