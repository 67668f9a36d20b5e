package renderer

import (
	"fmt"
	"strings"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/state"
)

// DescribeCell returns the lines the look command reports: the surroundings,
// anything on the floor, who or what waits on the neighboring tiles, hazard
// hints, and the exits.
func DescribeCell(g *state.Game) []string {
	cell := g.CurrentCell
	var lines []string

	room := dungeon.RoomOf(cell)
	if room == nil {
		lines = append(lines, "A narrow hallway, walls close on both sides.")
	} else {
		lines = append(lines, FormatString("ROOM{%s}.", room.Name))
	}

	if data := dungeon.Data(cell); data != nil {
		switch data.Stairs {
		case dungeon.StairDown:
			lines = append(lines, "A stairway descends into darkness here. (descend)")
		case dungeon.StairUp:
			lines = append(lines, "A stairway climbs toward the floor above. (ascend)")
		}

		if len(data.Items) > 0 {
			names := make([]string, 0, len(data.Items))
			for _, item := range data.Items {
				names = append(names, FormatString("ITEM{%s}", item.Name()))
			}
			lines = append(lines, fmt.Sprintf("On the floor: %s. (take)", strings.Join(names, ", ")))
		}
	}

	lines = append(lines, describeNeighbors(g, cell)...)

	if hints := hazardHints(cell); len(hints) > 0 {
		lines = append(lines, hints...)
	}

	if exits := exitList(cell); exits != "" {
		lines = append(lines, "Exits: "+exits+".")
	}

	return lines
}

// describeNeighbors reports occupants and blockers one step away, in
// direction order.
func describeNeighbors(g *state.Game, cell *world.Cell) []string {
	var lines []string
	for _, dir := range world.AllDirections() {
		neighbor := cell.Neighbor(dir)
		data := dungeon.Data(neighbor)
		if data == nil {
			continue
		}
		way := strings.ToLower(dir.String())
		if data.Enemy != nil && data.Enemy.Alive() {
			lines = append(lines, FormatString("ENEMY{%s} lurks to the %s! (attack)", data.Enemy.Name, way))
		}
		if data.NPC != nil {
			lines = append(lines, FormatString("%s waits to the %s. (talk)", data.NPC.Name(), way))
		}
		if data.Obstacle != nil {
			name := data.Obstacle.RequiredItem
			if def, ok := g.Catalog.Item(data.Obstacle.RequiredItem); ok {
				name = def.Name
			}
			lines = append(lines, FormatString("A %s blocks the way %s. It needs ITEM{%s}.",
				strings.ToLower(data.Obstacle.Info().Name), way, name))
		}
	}
	return lines
}

// hazardHints collects the hints of hazards on this cell and the linked
// ones around it. Sprung traps keep hinting; they just stop biting.
func hazardHints(cell *world.Cell) []string {
	seen := make(map[string]bool)
	var hints []string

	collect := func(c *world.Cell) {
		data := dungeon.Data(c)
		if data == nil || data.Hazard == nil {
			return
		}
		hint := data.Hazard.Info().Hint
		if hint != "" && !seen[hint] {
			seen[hint] = true
			hints = append(hints, hint)
		}
	}

	collect(cell)
	for _, n := range cell.LinkedNeighbors() {
		collect(n)
	}
	return hints
}

// exitList names the linked directions from a cell.
func exitList(cell *world.Cell) string {
	var exits []string
	for _, dir := range world.AllDirections() {
		if cell.Neighbor(dir) != nil {
			exits = append(exits, strings.ToLower(dir.String()))
		}
	}
	return strings.Join(exits, ", ")
}

// HelpLines lists the commands the prompt understands.
func HelpLines() []string {
	return []string{
		FormatString("Move with ACTION{north} ACTION{south} ACTION{east} ACTION{west}, arrows, or hjkl."),
		FormatString("ACTION{look} around, ACTION{take} what you find, ACTION{use} <item>, ACTION{equip} <item>."),
		FormatString("ACTION{attack} a neighboring enemy, ACTION{flee} a fight, ACTION{talk} to strangers."),
		FormatString("ACTION{descend} or ACTION{ascend} stairs. ACTION{inventory}, ACTION{status}, ACTION{map}, ACTION{hint}."),
		FormatString("ACTION{save} the run, ACTION{load} the last save, ACTION{quit} to give up."),
	}
}
