// Package placement populates a laid-out floor with content in a fixed
// order: stairs, obstacles and the items that open them, enemies,
// inhabitants, treasure and loot tables, hazards, and on the deepest floor
// the artifact. Later steps depend on earlier ones, so the order is part
// of the floor's deterministic recipe.
package placement

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
)

// planner carries the working state of one floor's population pass. The
// avoid set collects cells whose content later steps must not disturb.
type planner struct {
	floor  *dungeon.Floor
	cat    *catalog.Catalog
	stream *rand.Rand
	floors int

	seq   int
	avoid mapset.Set[*world.Cell]
	names map[string]bool
}

// Populate fills one floor with content. The stream must be the one that
// laid the floor out, continued; every draw here is part of what makes a
// floor a pure function of seed and parameters.
func Populate(f *dungeon.Floor, cat *catalog.Catalog, stream *rand.Rand, floors int) {
	p := &planner{
		floor:  f,
		cat:    cat,
		stream: stream,
		floors: floors,
		avoid:  mapset.New[*world.Cell](),
		names:  make(map[string]bool),
	}
	p.avoid.Put(f.EntryCell())

	p.nameRooms()
	p.placeStairs()
	p.placeObstacles()
	p.placeEnemies()
	p.placeNPCs()
	p.placeTreasure()
	p.placeHazards()
	p.placeArtifact()
}

// mintUID builds a unique instance id: definition, floor, sequence.
func (p *planner) mintUID(defID string) string {
	p.seq++
	return fmt.Sprintf("%s#%d-%d", defID, p.floor.Index, p.seq)
}

// nameRooms gives every room a flavor name from its template, reusing none
// on the same floor.
func (p *planner) nameRooms() {
	for _, room := range p.floor.Rooms {
		tmpl, ok := p.cat.Template(room.Type)
		if !ok || len(tmpl.Flavor) == 0 {
			room.Name = "Unmapped Chamber"
			continue
		}
		room.Name = p.pickUnusedName(tmpl.Flavor)
	}
}

func (p *planner) pickUnusedName(flavor []string) string {
	start := p.stream.Intn(len(flavor))
	for i := 0; i < len(flavor); i++ {
		name := flavor[(start+i)%len(flavor)]
		if !p.names[name] {
			p.names[name] = true
			return name
		}
	}
	// Every flavor name taken: number the repeat.
	base := flavor[start]
	for n := 2; ; n++ {
		name := fmt.Sprintf("%s %d", base, n)
		if !p.names[name] {
			p.names[name] = true
			return name
		}
	}
}

// placeStairs marks the stair cells at their rooms' centers and pins them
// on the floor for quick transitions.
func (p *planner) placeStairs() {
	if room := p.floor.RoomByType(catalog.RoomStairsDown); room != nil {
		cell := p.floor.Grid.At(room.Center())
		dungeon.EnsureData(cell).Stairs = dungeon.StairDown
		p.floor.StairsDown = cell
		p.avoid.Put(cell)
	}
	if room := p.floor.RoomByType(catalog.RoomStairsUp); room != nil {
		cell := p.floor.Grid.At(room.Center())
		dungeon.EnsureData(cell).Stairs = dungeon.StairUp
		p.floor.StairsUp = cell
		p.avoid.Put(cell)
	}
}

// placeArtifact sets the dungeon's prize at the center of the deepest
// floor's artifact room.
func (p *planner) placeArtifact() {
	if p.floor.Index != p.floors-1 {
		return
	}
	room := p.floor.RoomByType(catalog.RoomArtifact)
	if room == nil {
		return
	}
	defs := p.cat.ItemsByCategory(catalog.CategoryArtifact)
	if len(defs) == 0 {
		return
	}

	cell := p.floor.Grid.At(room.Center())
	data := dungeon.EnsureData(cell)
	data.Items = append(data.Items, entities.NewItem(p.mintUID(defs[0].ID), defs[0]))
	p.avoid.Put(cell)
}

// freeRoomCells returns the room's cells still open for content, in
// row-major order.
func (p *planner) freeRoomCells(room *dungeon.Room) []*world.Cell {
	var free []*world.Cell
	for _, cell := range room.Cells(p.floor.Grid) {
		if p.avoid.Has(cell) || dungeon.Occupied(cell) || dungeon.Blocked(cell) {
			continue
		}
		free = append(free, cell)
	}
	return free
}

// takeRandom removes and returns a stream-drawn element of cells.
func (p *planner) takeRandom(cells []*world.Cell) (*world.Cell, []*world.Cell) {
	idx := p.stream.Intn(len(cells))
	cell := cells[idx]
	return cell, append(cells[:idx], cells[idx+1:]...)
}
