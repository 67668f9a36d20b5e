package placement

import (
	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
)

const (
	maxLockedDoors     = 5
	maxBlockedPassages = 3
)

// Locked doors consume their key; blocked passages keep their tool.
var (
	doorKeys     = []string{"iron-key", "silver-key", "golden-key", "mystic-key"}
	passageTools = []string{"crowbar", "pickaxe", "torch"}
)

type placedObstacle struct {
	cell     *world.Cell
	obstacle *entities.Obstacle
}

// placeObstacles gates hallways with locked doors and blocked passages,
// then places each one's key or tool somewhere the player can reach first.
// An obstacle whose item cannot satisfy that is quietly dropped: the floor
// simply has one gate fewer.
func (p *planner) placeObstacles() {
	candidates := p.hallwayEntranceCells()
	if len(candidates) == 0 {
		return
	}

	doors := rng.Between(p.stream, 1, maxLockedDoors)
	passages := rng.Between(p.stream, 0, maxBlockedPassages)

	var placed []placedObstacle
	for i := 0; i < doors+passages && len(candidates) > 0; i++ {
		var cell *world.Cell
		cell, candidates = p.takeRandom(candidates)

		var obstacle *entities.Obstacle
		if i < doors {
			obstacle = &entities.Obstacle{
				Kind:         entities.LockedDoor,
				UID:          p.mintUID("locked-door"),
				RequiredItem: doorKeys[p.stream.Intn(len(doorKeys))],
				ConsumesItem: true,
			}
		} else {
			obstacle = &entities.Obstacle{
				Kind:         entities.BlockedPassage,
				UID:          p.mintUID("blocked-passage"),
				RequiredItem: passageTools[p.stream.Intn(len(passageTools))],
			}
		}
		dungeon.EnsureData(cell).Obstacle = obstacle
		placed = append(placed, placedObstacle{cell: cell, obstacle: obstacle})
	}

	for _, po := range placed {
		if !p.placeGatingItem(po) {
			dungeon.Data(po.cell).Obstacle = nil
		}
	}
}

// hallwayEntranceCells lists the hallway cells that touch a room through a
// link — the doorways of the floor — in hallway carve order.
func (p *planner) hallwayEntranceCells() []*world.Cell {
	seen := make(map[*world.Cell]bool)
	var cells []*world.Cell

	for _, hallway := range p.floor.Hallways {
		for _, pos := range hallway.Path {
			cell := p.floor.Grid.At(pos)
			if cell == nil || seen[cell] {
				continue
			}
			seen[cell] = true

			if dungeon.RoomOf(cell) != nil || dungeon.Blocked(cell) || p.avoid.Has(cell) {
				continue
			}
			for _, n := range cell.LinkedNeighbors() {
				if dungeon.RoomOf(n) != nil {
					cells = append(cells, cell)
					break
				}
			}
		}
	}
	return cells
}

// placeGatingItem puts an obstacle's key or tool where the player can pick
// it up before reaching the obstacle: on a room cell that stays reachable
// with every obstacle still standing, strictly closer to the entry than
// the obstacle itself. Reports whether such a cell existed.
func (p *planner) placeGatingItem(po placedObstacle) bool {
	entry := p.floor.EntryCell()
	distances := dungeon.LinkDistances(entry)

	obstacleDist, reachable := distances[po.cell]
	if !reachable {
		return false
	}

	open := dungeon.ReachableAvoiding(entry, p.blockedCells())

	var candidates []*world.Cell
	for _, room := range p.floor.Rooms {
		for _, cell := range room.Cells(p.floor.Grid) {
			if !open.Has(cell) || distances[cell] >= obstacleDist {
				continue
			}
			if p.avoid.Has(cell) || dungeon.Occupied(cell) {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	def, ok := p.cat.Item(po.obstacle.RequiredItem)
	if !ok {
		return false
	}

	cell, _ := p.takeRandom(candidates)
	data := dungeon.EnsureData(cell)
	data.Items = append(data.Items, entities.NewItem(p.mintUID(def.ID), def))
	p.avoid.Put(cell)
	return true
}

// blockedCells collects every cell an uncleared obstacle currently blocks.
func (p *planner) blockedCells() *mapset.Set[*world.Cell] {
	blocked := mapset.New[*world.Cell]()
	p.floor.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if dungeon.Blocked(cell) {
			blocked.Put(cell)
		}
	})
	return &blocked
}
