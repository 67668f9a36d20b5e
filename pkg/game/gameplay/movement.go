package gameplay

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/state"
)

// Move walks one step along a link. Obstacles on the far cell are cleared
// in stride when the player carries the right item; occupants refuse to be
// walked through. A successful step costs the turn.
func Move(g *state.Game, dir world.Direction) error {
	if g.InCombat() {
		return invalidf("The ENEMY{%s} cuts off any retreat. ACTION{attack} or ACTION{flee}.",
			g.Encounter.Enemy.Name)
	}

	target := g.CurrentCell.Neighbor(dir)
	if target == nil {
		return invalidf("A wall blocks the way %s.", dir)
	}

	if data := dungeon.Data(target); data != nil {
		if data.Obstacle != nil {
			if err := clearObstacle(g, target, data.Obstacle); err != nil {
				return err
			}
		}
		if data.Enemy != nil && data.Enemy.Alive() {
			return invalidf("The ENEMY{%s} bars your path! ACTION{attack} it or go around.", data.Enemy.Name)
		}
		if data.NPC != nil {
			return invalidf("%s stands in your way. ACTION{talk} to them.", data.NPC.Name())
		}
	}

	stepInto(g, target)
	afterAction(g, true)
	return nil
}

// clearObstacle opens the way through a locked door or blocked passage
// using a carried item. Keys are spent; tools are kept.
func clearObstacle(g *state.Game, cell *world.Cell, obstacle *entities.Obstacle) error {
	required := obstacle.RequiredItem
	name := required
	if def, ok := g.Catalog.Item(required); ok {
		name = def.Name
	}

	item := g.Player.FindByDef(required)
	if item == nil {
		return invalidf("%s", obstacle.BlockedMessage(name))
	}

	g.Dungeon.ClearObstacle(g.FloorIndex, cell.Pos())
	logMessage(g, "%s", obstacle.ClearedMessage(item.Name()))
	if obstacle.ConsumesItem {
		g.Player.RemoveItem(item.UID)
	}
	return nil
}

// stepInto commits the move: reposition, reveal, and narrate what the new
// cell offers. Arrival in a new room is announced; quiet hazards whisper
// their hint; items and stairs advertise their verbs.
func stepInto(g *state.Game, target *world.Cell) {
	previousRoom := dungeon.RoomOf(g.CurrentCell)

	g.CurrentCell = target
	world.Reveal(g.CurrentFloor().Grid, target, world.RevealRadius)

	if room := dungeon.RoomOf(target); room != nil && room != previousRoom {
		logMessage(g, "You enter ROOM{%s}.", room.Name)
	}

	data := dungeon.Data(target)
	if data == nil {
		return
	}

	if data.Hazard != nil {
		if info := data.Hazard.Info(); info.TriggerChance == 0 {
			logMessage(g, "%s", info.Hint)
		}
	}

	if len(data.Items) > 0 {
		logMessage(g, "Something lies on the floor here. (take)")
	}

	switch data.Stairs {
	case dungeon.StairDown:
		logMessage(g, "A stairway descends into darkness. (descend)")
	case dungeon.StairUp:
		logMessage(g, "A stairway climbs toward the floor above.")
	}
}

// Descend takes the downward stairs under the player.
func Descend(g *state.Game) error {
	if g.InCombat() {
		return invalidf("Not with the ENEMY{%s} at your throat.", g.Encounter.Enemy.Name)
	}

	data := dungeon.Data(g.CurrentCell)
	if data == nil || data.Stairs != dungeon.StairDown {
		return invalidf("There is no way down from here.")
	}

	next := g.FloorIndex + 1
	if err := g.EnterFloor(next); err != nil {
		return invalidf("The stairway ends in rubble.")
	}

	logMessage(g, "You descend. Floor %d swallows the light behind you.", next+1)
	afterAction(g, true)
	return nil
}

// Ascend climbs the upward stairs under the player, surfacing at the
// previous floor's downward stairway. The first floor's entrance is sealed.
func Ascend(g *state.Game) error {
	if g.InCombat() {
		return invalidf("Not with the ENEMY{%s} at your throat.", g.Encounter.Enemy.Name)
	}

	data := dungeon.Data(g.CurrentCell)
	if data == nil || data.Stairs != dungeon.StairUp {
		return invalidf("There is no way up from here.")
	}

	if g.FloorIndex == 0 {
		return invalidf("The way out is sealed behind you. Only the artifact opens it.")
	}

	previous := g.FloorIndex - 1
	stairs := g.Dungeon.Floor(previous).StairsDown
	if stairs == nil || g.PlaceAt(previous, stairs.Pos()) != nil {
		return invalidf("The stairway ends in rubble.")
	}

	logMessage(g, "You climb back up to floor %d.", previous+1)
	afterAction(g, true)
	return nil
}
