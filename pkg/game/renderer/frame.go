package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"darkdelve/pkg/engine/terminal"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/state"
)

// Viewport margins and minimum sizes.
const (
	ViewportMinRows    = 7
	ViewportMinCols    = 15
	ViewportSideMargin = 22 // Space for the West/East labels
	// Lines needed outside the viewport: floor line, room line, North and
	// South labels with their spacing, status and inventory bars, the
	// messages pane, and the prompt.
	ViewportTopMargin = 20
)

// Floor icons per room type (visited/unvisited pairs). Types not listed
// fall back to the plain dots; trap rooms stay plain on purpose.
var roomFloorIcons = map[catalog.RoomType][2]string{
	catalog.RoomArtifact: {"◇", "◆"},
	catalog.RoomTreasure: {"▫", "▪"},
	catalog.RoomNPC:      {"○", "●"},
}

// ViewportSize returns the map viewport dimensions for the current
// terminal, floored at the minimums and kept odd so the player centers.
func ViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.Size()

	cols = termWidth - (ViewportSideMargin * 2)
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderFrame draws one complete frame: floor and room lines, the map with
// its direction labels, status and inventory, the encounter line when a
// fight is on, the messages pane, and the prompt.
func RenderFrame(g *state.Game) {
	ColorAction.Printf("Floor %d of %d\n\n", g.FloorIndex+1, g.Dungeon.Depth())

	PrintString("%s\n\n", locationLine(g))

	printMap(g)

	printStatusBar(g)
	printInventoryBar(g)
	printEncounterBar(g)

	printMessagesPane(g)

	fmt.Printf("\n> ")
}

// locationLine names where the player stands.
func locationLine(g *state.Game) string {
	room := dungeon.RoomOf(g.CurrentCell)
	if room == nil {
		return "You are in a narrow hallway."
	}
	return fmt.Sprintf("You stand in ROOM{%s}.", room.Name)
}

// printMap renders the viewport centered on the player, with the four
// direction labels around it showing what each step offers.
func printMap(g *state.Game) {
	termWidth := terminal.Width()
	viewportRows, viewportCols := ViewportSize()

	westLabelWidth := ViewportSideMargin
	totalMapWidth := westLabelWidth + viewportCols + westLabelWidth
	centerIndent := (termWidth - totalMapWidth) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent+westLabelWidth)
	mapStartCol := centerIndent + westLabelWidth

	startRow := g.CurrentCell.Row - viewportRows/2
	startCol := g.CurrentCell.Col - viewportCols/2

	printCenteredLabel(directionLabel(g, g.CurrentCell.North, "North"), mapStartCol, viewportCols)
	fmt.Println("")

	grid := g.CurrentFloor().Grid
	for vRow := 0; vRow < viewportRows; vRow++ {
		mapRow := startRow + vRow

		if vRow == viewportRows/2 {
			txt := directionLabel(g, g.CurrentCell.West, "West")
			padding := centerIndent + westLabelWidth - len(color.ClearCode(txt))
			if padding > 0 {
				fmt.Print(strings.Repeat(" ", padding))
			}
			fmt.Print(txt)
		} else {
			fmt.Print(indent)
		}

		for vCol := 0; vCol < viewportCols; vCol++ {
			cell := grid.CellAt(mapRow, startCol+vCol)
			fmt.Print(renderCell(g, grid, cell))
		}

		if vRow == viewportRows/2 {
			fmt.Print(" " + directionLabel(g, g.CurrentCell.East, "East"))
		}

		fmt.Print("\n")
	}

	fmt.Println("")
	printCenteredLabel(directionLabel(g, g.CurrentCell.South, "South"), mapStartCol, viewportCols)
	fmt.Println("")
}

// printCenteredLabel centers a direction label over the viewport columns.
func printCenteredLabel(label string, mapStartCol, viewportCols int) {
	labelLen := len(color.ClearCode(label))
	labelIndent := mapStartCol + (viewportCols-labelLen)/2
	if labelIndent < 0 {
		labelIndent = 0
	}
	fmt.Print(strings.Repeat(" ", labelIndent))
	fmt.Println(label)
}

// directionLabel describes one step: a wall where no link exists, the
// direction action where one does, with the needed item appended when an
// obstacle waits on the far side.
func directionLabel(g *state.Game, neighbor *world.Cell, direction string) string {
	if neighbor == nil {
		return ColorSubtle.Sprintf("# Wall #")
	}

	lockedText := ""
	if data := dungeon.Data(neighbor); data != nil && data.Obstacle != nil {
		name := data.Obstacle.RequiredItem
		if def, ok := g.Catalog.Item(data.Obstacle.RequiredItem); ok {
			name = def.Name
		}
		lockedText = ColorDenied.Sprintf(" (%v)", name)
	}

	return FormatString("ACTION{%v}%v", direction, lockedText)
}

// renderCell returns the one-glyph representation of a cell. Precedence is
// the player, then living occupants, then blockers and stairs, then loose
// items, then the floor itself. Hazards draw as nothing: traps are found
// with your boots.
func renderCell(g *state.Game, grid *world.Grid, cell *world.Cell) string {
	if cell == nil {
		return IconVoid
	}

	if g.CurrentCell == cell {
		return ColorPlayer.Sprint(PlayerIcon)
	}

	if cell.Discovered {
		data := dungeon.Data(cell)
		if data != nil {
			if data.Enemy != nil && data.Enemy.Alive() {
				return ColorEnemy.Sprint(data.Enemy.Glyph)
			}
			if data.NPC != nil {
				return ColorFriendly.Sprint(data.NPC.Def.Glyph)
			}
			if data.Obstacle != nil {
				return ColorDenied.Sprint(data.Obstacle.Info().Icon)
			}
			switch data.Stairs {
			case dungeon.StairDown:
				return ColorStairs.Sprint(IconStairsDown)
			case dungeon.StairUp:
				return ColorStairs.Sprint(IconStairsUp)
			}
			if len(data.Items) > 0 {
				return itemIcon(data.Items)
			}
		}
	}

	if cell.Visited {
		return ColorCell.Sprint(floorIcon(cell, true))
	}

	if cell.Discovered {
		if cell.Carved {
			return ColorSubtle.Sprint(floorIcon(cell, false))
		}
		return ColorSubtle.Sprint(IconWall)
	}

	// Uncarved cells bordering somewhere we have seen render as walls, so
	// rooms read as chambers instead of floating dots.
	if !cell.Carved && hasAdjacentDiscovered(grid, cell) {
		return ColorSubtle.Sprint(IconWall)
	}

	return IconVoid
}

// itemIcon picks the glyph for a cell's item pile: the artifact outranks
// keys, keys outrank the generic marker.
func itemIcon(items []*entities.Item) string {
	for _, item := range items {
		if item.Def.Category == catalog.CategoryArtifact {
			return ColorGold.Sprint(IconArtifact)
		}
	}
	for _, item := range items {
		if item.IsKey() {
			return ColorStairs.Sprint(IconKey)
		}
	}
	return ColorItem.Sprint(IconItem)
}

// floorIcon returns the floor glyph for a carved cell, themed by the room
// type when the room has one.
func floorIcon(cell *world.Cell, visited bool) string {
	room := dungeon.RoomOf(cell)
	if room != nil {
		if icons, ok := roomFloorIcons[room.Type]; ok {
			if visited {
				return icons[0]
			}
			return icons[1]
		}
	}
	if visited {
		return IconVisited
	}
	return IconUnvisited
}

// hasAdjacentDiscovered reports whether any grid neighbor has been seen.
// Grid adjacency, not links: walls never carry links.
func hasAdjacentDiscovered(grid *world.Grid, cell *world.Cell) bool {
	for _, dir := range world.AllDirections() {
		if n := grid.CellRelative(cell, dir); n != nil && (n.Discovered || n.Visited) {
			return true
		}
	}
	return false
}

// printStatusBar shows the player's numbers on one line, with any active
// effects and buffs tagged after them.
func printStatusBar(g *state.Game) {
	fmt.Println()
	p := g.Player

	fmt.Print(ColorSubtle.Sprint("HP "))
	healthStyle := ColorItem
	if p.Health*4 <= p.MaxHealth {
		healthStyle = ColorDenied
	}
	fmt.Print(healthStyle.Sprintf("%d/%d", p.Health, p.MaxHealth))

	fmt.Print(ColorSubtle.Sprintf("  LVL "))
	fmt.Print(ColorAction.Sprintf("%d", p.Level))
	fmt.Print(ColorSubtle.Sprintf("  EXP "))
	fmt.Print(ColorAction.Sprintf("%d/%d", p.Experience, p.ExpToNext))
	fmt.Print(ColorSubtle.Sprintf("  GOLD "))
	fmt.Print(ColorGold.Sprintf("%d", p.Gold))
	fmt.Print(ColorSubtle.Sprintf("  ATK/DEF/SPD "))
	fmt.Print(ColorAction.Sprintf("%d/%d/%d", p.AttackValue(), p.DefenseValue(), p.SpeedValue()))

	for _, effect := range p.Effects {
		fmt.Print(" " + ColorDenied.Sprintf("[%s %d]", effect.Kind, effect.Remaining))
	}
	for _, buff := range p.Buffs {
		fmt.Print(" " + ColorAction.Sprintf("[%s %d]", buff.Source, buff.Remaining))
	}
	fmt.Println()

	weapon, armor := "(bare hands)", "(unarmored)"
	if p.Weapon != nil {
		weapon = p.Weapon.Name()
	}
	if p.Armor != nil {
		armor = p.Armor.Name()
	}
	fmt.Print(ColorSubtle.Sprint("Weapon: "))
	fmt.Print(ColorItem.Sprint(weapon))
	fmt.Print(ColorSubtle.Sprint("  Armor: "))
	fmt.Println(ColorItem.Sprint(armor))
}

// printInventoryBar lists carried items on one line.
func printInventoryBar(g *state.Game) {
	fmt.Print(ColorSubtle.Sprint("Inventory: "))
	if len(g.Player.Inventory) == 0 {
		fmt.Println(ColorSubtle.Sprint("(empty)"))
		return
	}
	names := make([]string, 0, len(g.Player.Inventory))
	for _, item := range g.Player.Inventory {
		names = append(names, ColorItem.Sprint(item.Name()))
	}
	fmt.Println(strings.Join(names, ColorSubtle.Sprint(", ")))
}

// printEncounterBar shows the opposing side while a fight is on.
func printEncounterBar(g *state.Game) {
	if !g.InCombat() {
		return
	}
	enemy := g.Encounter.Enemy
	fmt.Print(ColorEnemy.Sprintf("%s %s ", IconEncounter, enemy.Name))
	fmt.Print(ColorDenied.Sprintf("%d/%d HP", enemy.Health, enemy.MaxHealth))
	fmt.Println(ColorSubtle.Sprint("  (attack, use <item>, flee)"))
}

// printMessagesPane renders the bounded message log between rules.
func printMessagesPane(g *state.Game) {
	width := terminal.Width()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-len(label))

	fmt.Println()
	fmt.Println(ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(ColorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(ColorSubtle.Sprint(strings.Repeat("─", width)))
}

// RenderVictory draws the completion screen once the artifact is claimed.
func RenderVictory(g *state.Game) {
	fmt.Println()
	ColorGold.Println("  ✶ THE ANCIENT ARTIFACT IS YOURS ✶")
	fmt.Println()
	printRunSummary(g)
	fmt.Println()
	fmt.Println(ColorSubtle.Sprint("  Press any key to exit."))
}

// RenderGameOver draws the death screen.
func RenderGameOver(g *state.Game) {
	fmt.Println()
	ColorDenied.Println("  YOU HAVE DIED")
	fmt.Println()
	printRunSummary(g)
	fmt.Println()
	fmt.Println(ColorSubtle.Sprint("  Press any key to exit."))
}

func printRunSummary(g *state.Game) {
	PrintString("  Seed %d, floor %d of %d reached.\n", g.Seed, g.Score.DeepestFloor, g.Dungeon.Depth())
	PrintString("  %d enemies defeated, %d items collected, %d traps sprung.\n",
		g.Score.EnemiesDefeated, g.Score.ItemsCollected, g.Score.HazardsTriggered)
	PrintString("  %d turns taken. Final level %d with GOLD{%d gold}.\n",
		g.Score.TurnsTaken, g.Player.Level, g.Player.Gold)
}
