// Package devtools holds developer aids that live outside normal play.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/state"
)

// cellSymbol picks the single-character symbol for a cell, everything
// visible. Precedence follows what matters most when reading a dump:
// stairs, occupants, obstacles, hazards, items, bare floor.
func cellSymbol(cell *world.Cell) rune {
	if cell == nil || !cell.Carved {
		return '#'
	}
	data := dungeon.Data(cell)
	if data == nil {
		return '.'
	}
	switch {
	case data.Stairs == dungeon.StairUp:
		return '<'
	case data.Stairs == dungeon.StairDown:
		return '>'
	case data.Enemy != nil:
		return 'E'
	case data.NPC != nil:
		return 'N'
	case data.Obstacle != nil:
		return 'D'
	case data.Hazard != nil && data.Hazard.Armed():
		return '!'
	case len(data.Items) > 0:
		return 'i'
	default:
		return '.'
	}
}

// writeFloorGrid writes one floor's grid to f. With discoveredOnly set,
// cells the player has not seen print as '#'.
func writeFloorGrid(f *os.File, g *state.Game, floor *dungeon.Floor, discoveredOnly bool) {
	onFloor := g.FloorIndex == floor.Index
	for row := 0; row < floor.Grid.Rows(); row++ {
		for col := 0; col < floor.Grid.Cols(); col++ {
			cell := floor.Grid.CellAt(row, col)
			if onFloor && g.CurrentCell != nil && cell == g.CurrentCell {
				fmt.Fprint(f, "@")
				continue
			}
			if discoveredOnly && (cell == nil || !cell.Discovered) {
				fmt.Fprint(f, "#")
				continue
			}
			fmt.Fprintf(f, "%c", cellSymbol(cell))
		}
		fmt.Fprintln(f)
	}
}

// DumpMap writes the whole dungeon to a text file in the system temp
// directory and returns the path. Every floor shows in full, hazards and
// all; this is the debugging view, not the in-game map. Format is human-
// and tool-readable: sections, key: value lines, consistent structure.
func DumpMap(g *state.Game) (string, error) {
	if g.Dungeon == nil {
		return "", fmt.Errorf("no dungeon")
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("darkdelve-map-%d.txt", g.Seed))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== DUNGEON DUMP (layout, placement, history) ===")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", g.Seed)
	fmt.Fprintf(f, "session: %s\n", g.SessionID)
	fmt.Fprintf(f, "floors: %d\n", g.Dungeon.Depth())
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(f, "player_floor: %d\n", g.FloorIndex)
	if g.CurrentCell != nil {
		fmt.Fprintf(f, "player_cell: %d,%d\n", g.CurrentCell.Row, g.CurrentCell.Col)
	}
	fmt.Fprintf(f, "turns_taken: %d\n", g.Score.TurnsTaken)
	fmt.Fprintf(f, "mutations: %d\n", len(g.Dungeon.Mutations))
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, ". = floor  # = rock or undiscovered  < = stairs up  > = stairs down  D = obstacle  E = enemy  N = inhabitant  ! = armed hazard  i = items  @ = player")
	fmt.Fprintln(f)

	for fi := 0; fi < g.Dungeon.Depth(); fi++ {
		writeFloorSections(f, g, g.Dungeon.Floor(fi))
	}

	fmt.Fprintln(f, "--- History (mutation log, replay order) ---")
	if len(g.Dungeon.Mutations) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for i, rec := range g.Dungeon.Mutations {
		fmt.Fprintf(f, "  %d: kind: %s floor: %d row: %d col: %d id: %q\n",
			i, rec.Kind, rec.Floor, rec.Row, rec.Col, rec.ID)
	}
	fmt.Fprintln(f)

	fmt.Fprintln(f, "=== END DUNGEON DUMP ===")

	if err := f.Sync(); err != nil {
		return path, err
	}
	return path, nil
}

func writeFloorSections(f *os.File, g *state.Game, floor *dungeon.Floor) {
	fmt.Fprintf(f, "=== Floor %d ===\n", floor.Index+1)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Map (discovered cells only) ---")
	writeFloorGrid(f, g, floor, true)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Map (full layout) ---")
	writeFloorGrid(f, g, floor, false)
	fmt.Fprintln(f)

	fmt.Fprintf(f, "entry_cell: %d,%d\n", floor.Entry.Row, floor.Entry.Col)
	if floor.StairsUp != nil {
		fmt.Fprintf(f, "stairs_up: %d,%d\n", floor.StairsUp.Row, floor.StairsUp.Col)
	}
	if floor.StairsDown != nil {
		fmt.Fprintf(f, "stairs_down: %d,%d\n", floor.StairsDown.Row, floor.StairsDown.Col)
	}
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Rooms:")
	for _, room := range floor.Rooms {
		fmt.Fprintf(f, "  id: %d type: %s name: %q bounds: %dx%d at %d,%d\n",
			room.ID, room.Type, room.Name,
			room.Bounds.Height, room.Bounds.Width, room.Bounds.Row, room.Bounds.Col)
	}
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Items:")
	floor.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		data := dungeon.Data(cell)
		if data == nil {
			return
		}
		for _, item := range data.Items {
			fmt.Fprintf(f, "  row: %d col: %d name: %q uid: %q\n", row, col, item.Def.Name, item.UID)
		}
	})
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Enemies:")
	floor.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		data := dungeon.Data(cell)
		if data == nil || data.Enemy == nil {
			return
		}
		e := data.Enemy
		fmt.Fprintf(f, "  row: %d col: %d name: %q tier: %v health: %d/%d home: %d,%d\n",
			row, col, e.Name, e.Tier, e.Health, e.MaxHealth, e.Home.Row, e.Home.Col)
	})
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Inhabitants:")
	floor.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		data := dungeon.Data(cell)
		if data == nil || data.NPC == nil {
			return
		}
		n := data.NPC
		fmt.Fprintf(f, "  row: %d col: %d name: %q lines: %d\n", row, col, n.Def.Name, len(n.Def.Dialogue))
	})
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Obstacles:")
	floor.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		data := dungeon.Data(cell)
		if data == nil || data.Obstacle == nil {
			return
		}
		o := data.Obstacle
		fmt.Fprintf(f, "  row: %d col: %d name: %q requires: %q consumes: %v\n",
			row, col, o.Info().Name, o.RequiredItem, o.ConsumesItem)
	})
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Hazards:")
	floor.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		data := dungeon.Data(cell)
		if data == nil || data.Hazard == nil {
			return
		}
		h := data.Hazard
		info := h.Info()
		fmt.Fprintf(f, "  row: %d col: %d name: %q chance: %v damage: %d-%d armed: %v\n",
			row, col, info.Name, info.TriggerChance, info.DamageMin, info.DamageMax, h.Armed())
	})
	fmt.Fprintln(f)
}
