package gameplay

import (
	"strings"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/combat"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/state"
)

// Take picks up from the cell underfoot: everything, or just the item a
// non-empty argument names. Lifting the artifact completes the quest.
func Take(g *state.Game, arg string) error {
	data := dungeon.Data(g.CurrentCell)
	if data == nil || len(data.Items) == 0 {
		return invalidf("There is nothing here to take.")
	}

	wanted := make([]*entities.Item, 0, len(data.Items))
	if arg == "" {
		wanted = append(wanted, data.Items...)
	} else {
		query := strings.ToLower(strings.TrimSpace(arg))
		for _, item := range data.Items {
			if strings.HasPrefix(strings.ToLower(item.Name()), query) {
				wanted = append(wanted, item)
			}
		}
		if len(wanted) == 0 {
			return invalidf("There is no %q here.", arg)
		}
	}

	for _, item := range wanted {
		taken := g.Dungeon.RemoveItem(g.FloorIndex, g.CurrentCell.Pos(), item.UID)
		if taken == nil {
			continue
		}
		g.Player.AddItem(taken)
		g.Score.ItemsCollected++
		logMessage(g, "You pick up the ITEM{%s}.", taken.Name())

		if taken.Def.Category == catalog.CategoryArtifact {
			g.GameComplete = true
			logMessage(g, "The moment you lift it, every shadow in the dungeon shudders.")
			logMessage(g, "Your quest is complete!")
			return nil
		}
	}

	afterAction(g, false)
	return nil
}

// UseItem consumes a carried consumable. In a fight it spends the combat
// round; outside one it still costs the turn.
func UseItem(g *state.Game, arg string) error {
	if arg == "" {
		return invalidf("Use what? Name something you carry.")
	}

	item := g.Player.FindItem(arg)
	if item == nil {
		return invalidf("You carry no %q.", arg)
	}
	if !item.Consumable() {
		if item.Equippable() {
			return invalidf("The ITEM{%s} is worn, not drunk. ACTION{equip} it.", item.Name())
		}
		return invalidf("The ITEM{%s} has no use you can see. Some things apply themselves.", item.Name())
	}

	applyConsumable(g, item)
	g.Player.RemoveItem(item.UID)

	if g.InCombat() {
		g.AddMessages(g.Encounter.PlayerItemUsed())
		finishEncounter(g)
	}
	afterAction(g, false)
	return nil
}

// applyConsumable runs a consumable's payload: healing, a lingering effect,
// or a timed stat buff.
func applyConsumable(g *state.Game, item *entities.Item) {
	def := item.Def
	logMessage(g, "You use the ITEM{%s}.", item.Name())

	if def.Heal > 0 {
		healed := g.Player.Heal(def.Heal)
		logMessage(g, "You recover %d health.", healed)
	}
	if !def.Effect.None() {
		g.Player.ApplyEffect(def.Effect)
		logMessage(g, "You feel it take hold.")
	}
	if def.BoostTurns > 0 {
		g.Player.AddBuff(entities.Buff{
			Attack:    def.BoostAttack,
			Defense:   def.BoostDefense,
			Speed:     def.BoostSpeed,
			Remaining: def.BoostTurns,
			Source:    def.Name,
		})
		logMessage(g, "Power courses through you for %d turns.", def.BoostTurns)
	}
}

// EquipItem readies a carried weapon or armor piece. Swapping gear
// mid-fight costs the combat round.
func EquipItem(g *state.Game, arg string) error {
	if arg == "" {
		return invalidf("Equip what? Name something you carry.")
	}

	item := g.Player.FindItem(arg)
	if item == nil {
		return invalidf("You carry no %q.", arg)
	}
	if !item.Equippable() {
		return invalidf("The ITEM{%s} is not something you can wield or wear.", item.Name())
	}

	displaced, _ := g.Player.Equip(item)
	if displaced != nil && displaced != item {
		logMessage(g, "You stow the ITEM{%s}.", displaced.Name())
	}
	logMessage(g, "You ready the ITEM{%s}.", item.Name())

	if g.InCombat() {
		g.AddMessages(g.Encounter.PlayerItemUsed())
		finishEncounter(g)
	}
	afterAction(g, false)
	return nil
}

// Talk addresses whoever stands on a neighboring tile. Their words double
// as the hint the hint command repeats.
func Talk(g *state.Game) error {
	if g.InCombat() {
		return invalidf("The ENEMY{%s} is past talking.", g.Encounter.Enemy.Name)
	}

	npc := adjacentNPC(g)
	if npc == nil {
		return invalidf("There is nobody here to talk to.")
	}

	line := npc.NextLine()
	logMessage(g, "%s says: \"%s\"", npc.Name(), line)
	g.AddHint(line)

	afterAction(g, false)
	return nil
}

// Attack strikes the enemy at hand. The first attack against a neighbor
// opens an encounter, initiative and all; further attacks spend rounds of
// the running fight.
func Attack(g *state.Game) error {
	if g.InCombat() {
		g.AddMessages(g.Encounter.PlayerAttack())
		finishEncounter(g)
		afterAction(g, false)
		return nil
	}

	cell := adjacentEnemyCell(g)
	if cell == nil {
		return invalidf("There is nothing within reach to attack.")
	}

	encounter, messages, err := combat.Begin(g.Player, dungeon.Data(cell).Enemy, g.Catalog, g.Stream)
	if err != nil {
		return invalidf("There is nothing within reach to attack.")
	}

	g.Encounter = encounter
	g.AddMessages(messages)
	finishEncounter(g)
	afterAction(g, false)
	return nil
}

// Flee attempts to break off the running fight.
func Flee(g *state.Game) error {
	if !g.InCombat() {
		return invalidf("There is nothing to flee from.")
	}

	g.AddMessages(g.Encounter.PlayerFlee())
	finishEncounter(g)
	afterAction(g, false)
	return nil
}

// finishEncounter settles a resolved encounter: a victory removes the
// enemy from the dungeon and scores the kill, a defeat ends the run, a
// disengage just closes the fight.
func finishEncounter(g *state.Game) {
	encounter := g.Encounter
	if encounter == nil || !encounter.Resolved() {
		return
	}

	switch encounter.State() {
	case combat.StateVictory:
		enemy := encounter.Enemy
		if enemy.Cell != nil {
			g.Dungeon.KillEnemy(g.FloorIndex, enemy.Cell.Pos())
		}
		g.Score.EnemiesDefeated++
		g.Score.ItemsCollected += len(encounter.Drops)
	case combat.StateDefeat:
		g.GameOver = true
	}

	g.Encounter = nil
}

// adjacentEnemyCell returns the first linked neighbor holding a living
// enemy, in direction order.
func adjacentEnemyCell(g *state.Game) *world.Cell {
	for _, dir := range world.AllDirections() {
		cell := g.CurrentCell.Neighbor(dir)
		if data := dungeon.Data(cell); data != nil && data.Enemy != nil && data.Enemy.Alive() {
			return cell
		}
	}
	return nil
}

// adjacentNPC returns the first neighbor inhabitant, in direction order.
func adjacentNPC(g *state.Game) *entities.NPC {
	for _, dir := range world.AllDirections() {
		cell := g.CurrentCell.Neighbor(dir)
		if data := dungeon.Data(cell); data != nil && data.NPC != nil {
			return data.NPC
		}
	}
	return nil
}
