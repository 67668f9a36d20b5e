package placement

import (
	"math/rand"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
)

// placeTreasure stocks treasure rooms with 1–3 rarity-weighted finds and
// then makes sure every enemy on the floor has a loot table.
func (p *planner) placeTreasure() {
	pool := p.treasurePool()
	if len(pool) == 0 {
		return
	}

	for _, room := range p.floor.Rooms {
		if room.Type != catalog.RoomTreasure {
			continue
		}
		count := rng.Between(p.stream, 1, 3)
		free := p.freeRoomCells(room)
		for i := 0; i < count && len(free) > 0; i++ {
			cell, rest := p.takeRandom(free)
			free = rest

			def := drawByRarity(p.stream, pool)
			data := dungeon.EnsureData(cell)
			data.Items = append(data.Items, entities.NewItem(p.mintUID(def.ID), def))
			p.avoid.Put(cell)
		}
	}

	p.assignLootTables(pool)
}

// treasurePool is every item that can turn up as random treasure: weapons,
// armor and consumables with a positive rarity weight. Keys, tools and the
// artifact stay out; they are minted for specific places.
func (p *planner) treasurePool() []catalog.ItemDef {
	var pool []catalog.ItemDef
	for _, category := range []catalog.Category{catalog.CategoryWeapon, catalog.CategoryArmor, catalog.CategoryConsumable} {
		for _, def := range p.cat.ItemsByCategory(category) {
			if def.Rarity > 0 {
				pool = append(pool, def)
			}
		}
	}
	return pool
}

// drawByRarity picks an item with probability proportional to its rarity
// weight. Higher weight means more common.
func drawByRarity(stream *rand.Rand, pool []catalog.ItemDef) catalog.ItemDef {
	total := 0
	for _, def := range pool {
		total += def.Rarity
	}
	roll := stream.Intn(total)
	for _, def := range pool {
		roll -= def.Rarity
		if roll < 0 {
			return def
		}
	}
	return pool[len(pool)-1]
}

// assignLootTables gives a one-entry certain-drop table to every placed
// enemy whose definition supplies none, drawn uniformly from the treasure
// pool. Combat can then always pay out a kill.
func (p *planner) assignLootTables(pool []catalog.ItemDef) {
	p.floor.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		data := dungeon.Data(cell)
		if data == nil || data.Enemy == nil || len(data.Enemy.Loot) > 0 {
			return
		}
		def := pool[p.stream.Intn(len(pool))]
		data.Enemy.Loot = []catalog.Drop{{ItemID: def.ID, Chance: 1}}
	})
}
