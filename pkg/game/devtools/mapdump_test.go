package devtools

import (
	"os"
	"strings"
	"testing"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
)

func newTestGame(t *testing.T, seed int64) *state.Game {
	t.Helper()
	opts := generator.Options{
		Floors:             2,
		Rows:               24,
		Cols:               24,
		MinSpacing:         1,
		RoomsMin:           4,
		RoomsMax:           6,
		ExtraHallwayChance: 0.15,
	}
	g, err := state.NewGame("Surveyor", seed, opts, catalog.New())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestDumpMap_WritesEveryFloor(t *testing.T) {
	g := newTestGame(t, 23)

	path, err := DumpMap(g)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	if !strings.HasPrefix(path, os.TempDir()) {
		t.Errorf("dump should land in the temp directory, got %q", path)
	}
	if !strings.Contains(path, "darkdelve-map-23") {
		t.Errorf("dump name should carry the seed, got %q", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(raw)

	for _, want := range []string{
		"=== DUNGEON DUMP",
		"seed: 23",
		"=== Floor 1 ===",
		"=== Floor 2 ===",
		"Rooms:",
		"Hazards:",
		"=== END DUNGEON DUMP ===",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	if !strings.Contains(text, "@") {
		t.Error("dump should mark the player")
	}
	if !strings.Contains(text, ">") {
		t.Error("a two-floor dungeon should show downward stairs")
	}
}

func TestDumpMap_RecordsHistory(t *testing.T) {
	g := newTestGame(t, 23)

	path, err := DumpMap(g)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "(none)") {
		t.Error("a fresh dungeon should dump an empty history")
	}

	// Lift the first item found so the log gains a record.
	var floorIndex int
	var cellPos world.Position
	var uid string
	for fi := 0; fi < g.Dungeon.Depth() && uid == ""; fi++ {
		g.Dungeon.Floor(fi).Grid.ForEachCell(func(row, col int, cell *world.Cell) {
			if uid != "" {
				return
			}
			if data := dungeon.Data(cell); data != nil && len(data.Items) > 0 {
				floorIndex, cellPos, uid = fi, cell.Pos(), data.Items[0].UID
			}
		})
	}
	if uid == "" {
		t.Fatal("generated dungeon should hold at least one item")
	}
	if g.Dungeon.RemoveItem(floorIndex, cellPos, uid) == nil {
		t.Fatal("probed item should lift")
	}

	path, err = DumpMap(g)
	if err != nil {
		t.Fatalf("second dump: %v", err)
	}
	raw, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "kind: item_taken") {
		t.Error("history section should list the taken item")
	}
}
