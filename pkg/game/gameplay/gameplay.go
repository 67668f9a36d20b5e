// Package gameplay turns input intents into game actions: movement,
// pickups, item use, conversations, fights, stairs, and the turn
// bookkeeping that follows every action the world notices.
package gameplay

import (
	"errors"
	"fmt"
	"strings"

	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/devtools"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/renderer"
	"darkdelve/pkg/game/state"
)

// ErrInvalidAction tags an intent that cannot apply where the player
// stands: walking into walls, taking from bare floor, fleeing with nobody
// there. The text after the sentinel is shown to the player as-is.
var ErrInvalidAction = errors.New("invalid action")

// invalidf builds an ErrInvalidAction with a player-facing sentence.
func invalidf(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidAction}, a...)...)
}

// ProcessIntent executes one intent against the game, logging whatever the
// action has to say. Failed actions land in the message pane too.
func ProcessIntent(g *state.Game, intent input.Intent) {
	if g.GameComplete || g.GameOver {
		if intent.Action != input.ActionNone {
			g.QuitRequested = true
		}
		return
	}

	if err := Perform(g, intent); err != nil {
		logMessage(g, "%s", strings.TrimPrefix(err.Error(), ErrInvalidAction.Error()+": "))
	}
}

// Perform runs one intent and returns ErrInvalidAction when it cannot
// apply. Informational intents never consume a turn; world-facing ones tick
// the turn through their own paths.
func Perform(g *state.Game, intent input.Intent) error {
	switch intent.Action {
	case input.ActionNone:
		// Unknown typed commands arrive as ActionNone carrying their text.
		if intent.Arg != "" {
			return invalidf("You don't know how to %q. Try ACTION{help}.", intent.Arg)
		}
		return nil

	case input.ActionQuit:
		g.QuitRequested = true
		return nil

	case input.ActionSave:
		g.SaveRequested = true
		return nil

	case input.ActionLoad:
		g.LoadRequested = true
		return nil

	case input.ActionHelp:
		for _, line := range renderer.HelpLines() {
			g.AddMessage(line)
		}
		return nil

	case input.ActionLook:
		for _, line := range renderer.DescribeCell(g) {
			g.AddMessage(line)
		}
		return nil

	case input.ActionInventory:
		showInventory(g)
		return nil

	case input.ActionStatus:
		showStatus(g)
		return nil

	case input.ActionHint:
		showHint(g)
		return nil

	case input.ActionMap:
		showMapProgress(g)
		return nil

	case input.ActionDumpMap:
		path, err := devtools.DumpMap(g)
		if err != nil {
			return invalidf("The map would not commit to paper: %v.", err)
		}
		logMessage(g, "Map written to ITEM{%s}.", path)
		return nil

	case input.ActionMoveNorth:
		return Move(g, world.North)
	case input.ActionMoveSouth:
		return Move(g, world.South)
	case input.ActionMoveEast:
		return Move(g, world.East)
	case input.ActionMoveWest:
		return Move(g, world.West)

	case input.ActionTake:
		return Take(g, intent.Arg)
	case input.ActionUse:
		return UseItem(g, intent.Arg)
	case input.ActionEquip:
		return EquipItem(g, intent.Arg)
	case input.ActionTalk:
		return Talk(g)
	case input.ActionAttack:
		return Attack(g)
	case input.ActionFlee:
		return Flee(g)
	case input.ActionDescend:
		return Descend(g)
	case input.ActionAscend:
		return Ascend(g)
	}

	return invalidf("That means nothing here. Try ACTION{help}.")
}

// afterAction is the end-of-turn bookkeeping run after every action the
// world notices: hazards bite whoever just stepped in, enemies move, the
// player's effects and buffs tick, and death is checked last.
func afterAction(g *state.Game, moved bool) {
	g.Score.TurnsTaken++
	if g.GameOver || g.GameComplete {
		return
	}

	if moved {
		resolveHazard(g)
		if !g.Player.Alive() {
			g.GameOver = true
			logMessage(g, "Your wounds overcome you. The run ends here.")
			return
		}
	}

	StepEnemies(g)

	g.AddMessages(g.Player.TickEffects())
	g.AddMessages(g.Player.TickBuffs())

	if !g.Player.Alive() {
		g.GameOver = true
		logMessage(g, "Your wounds overcome you. The run ends here.")
	}
}

// resolveHazard rolls the hazard under the player, if one is still armed.
// One-shot hazards are spent into the mutation log; the rest keep lurking.
func resolveHazard(g *state.Game) {
	data := dungeon.Data(g.CurrentCell)
	if data == nil || data.Hazard == nil || !data.Hazard.Armed() {
		return
	}

	info := data.Hazard.Info()
	if !rng.Chance(g.Stream, info.TriggerChance) {
		return
	}

	damage := rng.Between(g.Stream, info.DamageMin, info.DamageMax)
	g.Player.TakeDamage(damage)
	g.Score.HazardsTriggered++
	logMessage(g, "%s", info.TriggerMessage)
	logMessage(g, "You take %d damage.", damage)

	if info.OneShot {
		g.Dungeon.SpendHazard(g.FloorIndex, g.CurrentCell.Pos())
	}
}

// showInventory logs the carried items with their useful verbs.
func showInventory(g *state.Game) {
	if len(g.Player.Inventory) == 0 {
		logMessage(g, "You carry nothing but your resolve.")
		return
	}
	for _, item := range g.Player.Inventory {
		verb := ""
		switch {
		case item.Equippable():
			verb = " (equip)"
			if g.Player.Weapon == item || g.Player.Armor == item {
				verb = " (equipped)"
			}
		case item.Consumable():
			verb = " (use)"
		}
		logMessage(g, "ITEM{%s}%s", item.Name(), verb)
	}
}

// showStatus logs the player's numbers and active conditions.
func showStatus(g *state.Game) {
	p := g.Player
	logMessage(g, "%s, level %d. HP %d/%d, ATK %d, DEF %d, SPD %d.",
		p.Name, p.Level, p.Health, p.MaxHealth, p.AttackValue(), p.DefenseValue(), p.SpeedValue())
	logMessage(g, "Experience %d/%d. GOLD{%d gold}. Floor %d of %d.",
		p.Experience, p.ExpToNext, p.Gold, g.FloorIndex+1, g.Dungeon.Depth())
	for _, effect := range p.Effects {
		logMessage(g, "Afflicted: %s, %d turns left.", effect.Kind, effect.Remaining)
	}
	for _, buff := range p.Buffs {
		logMessage(g, "Blessed by the %s, %d turns left.", buff.Source, buff.Remaining)
	}
}

// showMapProgress logs how much of the floor has been walked and whether
// the way down has been spotted yet.
func showMapProgress(g *state.Game) {
	floor := g.CurrentFloor()
	carved, visited := 0, 0
	floor.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if !cell.Carved {
			return
		}
		carved++
		if cell.Visited {
			visited++
		}
	})
	percent := 0
	if carved > 0 {
		percent = visited * 100 / carved
	}
	logMessage(g, "You have walked %d%% of floor %d.", percent, g.FloorIndex+1)

	switch {
	case floor.StairsDown == nil:
		logMessage(g, "There is no way further down. The artifact must be here.")
	case floor.StairsDown.Discovered:
		logMessage(g, "The downward stairway is marked ▼ on your map.")
	default:
		logMessage(g, "You have not found the way down yet.")
	}
}

// showHint repeats the latest hint an inhabitant has shared, or points the
// player at the stairs when nobody has told them anything yet.
func showHint(g *state.Game) {
	if hint := g.LastHint(); hint != "" {
		logMessage(g, "%s", hint)
		return
	}
	if g.CurrentFloor().StairsDown != nil {
		logMessage(g, "No whispers yet. Seek the ▼ stairway and press deeper.")
		return
	}
	logMessage(g, "No whispers yet. The artifact is said to rest on this very floor.")
}

// logMessage formats a markup message into the bounded log.
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatString(msg, a...))
}
