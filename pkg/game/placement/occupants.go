package placement

import (
	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
)

// placeEnemies fills monster rooms with 2–4 enemies and generic rooms with
// 0–2, drawn from the tier this depth calls for and scaled by floor. Each
// enemy patrols its home room and never leaves it.
func (p *planner) placeEnemies() {
	tier := catalog.TierForDepth(p.floor.Index, p.floors)
	defs := p.cat.EnemiesByTier(tier)
	if len(defs) == 0 {
		defs = p.cat.EnemiesByTier(catalog.TierCommon)
	}
	if len(defs) == 0 {
		return
	}

	for _, room := range p.floor.Rooms {
		var count int
		switch room.Type {
		case catalog.RoomMonster:
			count = rng.Between(p.stream, 2, 4)
		case catalog.RoomGeneric:
			count = rng.Between(p.stream, 0, 2)
		default:
			continue
		}

		route := room.Cells(p.floor.Grid)
		free := p.freeRoomCells(room)
		for i := 0; i < count && len(free) > 0; i++ {
			cell, rest := p.takeRandom(free)
			free = rest

			def := defs[p.stream.Intn(len(defs))]
			enemy := entities.NewEnemy(p.mintUID(def.ID), def, p.floor.Index, p.cat.Scaling())
			enemy.Home = cell.Pos()
			enemy.Cell = cell
			enemy.Route = route
			for j, rc := range route {
				if rc == cell {
					enemy.RouteIndex = j
					break
				}
			}
			dungeon.EnsureData(cell).Enemy = enemy
		}
	}
}

// placeNPCs seats one inhabitant in every npc-type room.
func (p *planner) placeNPCs() {
	defs := p.cat.NPCs()
	if len(defs) == 0 {
		return
	}

	for _, room := range p.floor.Rooms {
		if room.Type != catalog.RoomNPC {
			continue
		}
		free := p.freeRoomCells(room)
		if len(free) == 0 {
			continue
		}

		cell, _ := p.takeRandom(free)
		def := defs[p.stream.Intn(len(defs))]
		dungeon.EnsureData(cell).NPC = entities.NewNPC(p.mintUID(def.ID), def)
		p.avoid.Put(cell)
	}
}
