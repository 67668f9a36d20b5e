package gameplay

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/state"
)

// StepEnemies moves every living enemy on the current floor one step.
// Enemies that can see the player inside their own room close in; the rest
// shuffle along their patrol routes. Nobody leaves their spawn room, and an
// enemy locked in the current encounter holds still.
func StepEnemies(g *state.Game) {
	floor := g.CurrentFloor()

	// Collect first: stepping an enemy rewires cell data mid-iteration.
	var enemies []*entities.Enemy
	floor.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if data := dungeon.Data(cell); data != nil && data.Enemy != nil && data.Enemy.Alive() {
			enemies = append(enemies, data.Enemy)
		}
	})

	var engaged *entities.Enemy
	if g.InCombat() {
		engaged = g.Encounter.Enemy
	}

	for _, enemy := range enemies {
		if enemy == engaged || enemy.Cell == nil {
			continue
		}
		if huntStep(g, floor, enemy) {
			continue
		}
		patrolStep(g, enemy)
	}
}

// huntStep advances the enemy toward a player it can see in its own room.
// Returns false when the player is elsewhere or out of sight, handing the
// enemy back to its patrol.
func huntStep(g *state.Game, floor *dungeon.Floor, enemy *entities.Enemy) bool {
	homeRoom := floor.RoomAt(enemy.Home)
	if homeRoom == nil || dungeon.RoomOf(g.CurrentCell) != homeRoom {
		return false
	}
	if !world.HasLineOfSight(floor.Grid, enemy.Cell.Row, enemy.Cell.Col,
		g.CurrentCell.Row, g.CurrentCell.Col) {
		return false
	}

	// Already breathing down the player's neck.
	if enemy.Cell.LinkedTo(g.CurrentCell) {
		return true
	}

	var best *world.Cell
	bestDist := 0
	for _, step := range enemy.Cell.LinkedNeighbors() {
		if step == g.CurrentCell || dungeon.Occupied(step) || dungeon.Blocked(step) {
			continue
		}
		if dungeon.RoomOf(step) != homeRoom {
			continue
		}
		dist := distanceSq(step, g.CurrentCell)
		if best == nil || dist < bestDist {
			best, bestDist = step, dist
		}
	}
	if best != nil {
		g.Dungeon.MoveEnemy(enemy, best)
	}
	return true
}

// patrolStep advances the enemy's patrol cursor and takes the step when the
// cell is free. The player's cell is never stepped onto.
func patrolStep(g *state.Game, enemy *entities.Enemy) {
	next := enemy.NextPatrolCell()
	if next == nil || next == g.CurrentCell {
		return
	}
	g.Dungeon.MoveEnemy(enemy, next)
}

func distanceSq(a, b *world.Cell) int {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return dr*dr + dc*dc
}
