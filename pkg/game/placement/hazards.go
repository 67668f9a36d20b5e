package placement

import (
	"strings"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
)

// hazardDraw is the fixed draw order for hazard kinds.
var hazardDraw = []entities.HazardKind{
	entities.Tripwire,
	entities.GasPocket,
	entities.IcePatch,
	entities.LooseFlagstone,
	entities.ColdDraft,
	entities.WhisperingDark,
}

// placeHazards hides traps around the floor: every trap room gets one, and
// roughly one more cell per five rooms is seeded elsewhere. Hazards never
// appear on the map; room descriptions carry their hints.
func (p *planner) placeHazards() {
	for _, room := range p.floor.Rooms {
		if room.Type != catalog.RoomTrap {
			continue
		}
		free := p.freeRoomCells(room)
		if len(free) == 0 {
			continue
		}
		cell, _ := p.takeRandom(free)
		p.seedHazard(cell)
	}

	count := (len(p.floor.Rooms) + 4) / 5
	candidates := p.hazardCells()
	for i := 0; i < count && len(candidates) > 0; i++ {
		var cell *world.Cell
		cell, candidates = p.takeRandom(candidates)
		p.seedHazard(cell)
	}
}

func (p *planner) seedHazard(cell *world.Cell) {
	kind := hazardDraw[p.stream.Intn(len(hazardDraw))]
	slug := strings.ToLower(strings.ReplaceAll(entities.HazardKinds[kind].Name, " ", "-"))
	dungeon.EnsureData(cell).Hazard = entities.NewHazard(kind, p.mintUID(slug))
}

// hazardCells lists the carved cells still free of anything that matters:
// no mandatory content, no occupant, no obstacle, no existing hazard, and
// never the artifact room's center, which the last step needs.
func (p *planner) hazardCells() []*world.Cell {
	var artifactCenter *world.Cell
	if room := p.floor.RoomByType(catalog.RoomArtifact); room != nil {
		artifactCenter = p.floor.Grid.At(room.Center())
	}

	var cells []*world.Cell
	p.floor.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if cell == nil || !cell.Carved || cell == artifactCenter {
			return
		}
		if p.avoid.Has(cell) || dungeon.Occupied(cell) || dungeon.Blocked(cell) {
			return
		}
		if data := dungeon.Data(cell); data != nil && (data.Hazard != nil || len(data.Items) > 0) {
			return
		}
		cells = append(cells, cell)
	})
	return cells
}
