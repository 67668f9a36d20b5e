package save

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
)

func testOptions() generator.Options {
	return generator.Options{
		Floors:             2,
		Rows:               24,
		Cols:               24,
		MinSpacing:         1,
		RoomsMin:           4,
		RoomsMax:           6,
		ExtraHallwayChance: 0.15,
	}
}

func newLiveGame(t *testing.T) *state.Game {
	t.Helper()
	g, err := state.NewGame("Saver", 11, testOptions(), catalog.New())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

// findArtifact probes the dungeon for the placed artifact. The deepest
// floor always holds one.
func findArtifact(t *testing.T, d *dungeon.Dungeon) (int, *world.Cell, *entities.Item) {
	t.Helper()
	var floor int
	var cell *world.Cell
	var item *entities.Item
	for fi := 0; fi < d.Depth(); fi++ {
		d.Floor(fi).Grid.ForEachCell(func(_, _ int, c *world.Cell) {
			if item != nil {
				return
			}
			data := dungeon.Data(c)
			if data == nil {
				return
			}
			for _, it := range data.Items {
				if it.Def.Category == catalog.CategoryArtifact {
					floor, cell, item = fi, c, it
					return
				}
			}
		})
	}
	if item == nil {
		t.Fatal("generated dungeon should hold the artifact")
	}
	return floor, cell, item
}

// findEnemy probes for any placed enemy. Enemy counts are stream-drawn, so
// callers must tolerate an empty result.
func findEnemy(d *dungeon.Dungeon) (int, *world.Cell) {
	for fi := 0; fi < d.Depth(); fi++ {
		var cell *world.Cell
		d.Floor(fi).Grid.ForEachCell(func(_, _ int, c *world.Cell) {
			if cell == nil && dungeon.Data(c) != nil && dungeon.Data(c).Enemy != nil {
				cell = c
			}
		})
		if cell != nil {
			return fi, cell
		}
	}
	return 0, nil
}

func hasArtifact(cell *world.Cell) bool {
	data := dungeon.Data(cell)
	if data == nil {
		return false
	}
	for _, it := range data.Items {
		if it.Def.Category == catalog.CategoryArtifact {
			return true
		}
	}
	return false
}

func TestSaveLoad_RoundTripRestoresTheRun(t *testing.T) {
	g := newLiveGame(t)

	// Play a little history into the session.
	sword := entities.NewItem("rusty-sword#save-1", mustItem(t, g.Catalog, "rusty-sword"))
	g.Player.AddItem(sword)
	if _, ok := g.Player.Equip(sword); !ok {
		t.Fatal("equip failed")
	}
	g.Player.TakeDamage(30)
	g.Player.AddGold(47)
	g.Player.GainExperience(30)
	g.Player.AddBuff(entities.Buff{Attack: 5, Remaining: 3, Source: "Strength Tonic"})
	g.Player.ApplyEffect(catalog.Effect{Kind: catalog.EffectPoison, Duration: 4})
	g.AddHint("The crown lies deeper.")

	artFloor, artCell, artifact := findArtifact(t, g.Dungeon)
	if taken := g.Dungeon.RemoveItem(artFloor, artCell.Pos(), artifact.UID); taken == nil {
		t.Fatal("artifact should lift off its cell")
	}
	g.Player.AddItem(artifact)

	enemyFloor, enemyCell := findEnemy(g.Dungeon)
	if enemyCell != nil {
		if g.Dungeon.KillEnemy(enemyFloor, enemyCell.Pos()) == nil {
			t.Fatal("expected the probed enemy to die")
		}
	}

	if err := g.EnterFloor(1); err != nil {
		t.Fatalf("enter floor: %v", err)
	}

	path := filepath.Join(t.TempDir(), "runs", "save.json")
	if err := Save(g, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored, err := Load(path, catalog.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if restored.Seed != g.Seed || restored.SessionID != g.SessionID {
		t.Errorf("identity should survive: seed %d/%d, session %q/%q",
			restored.Seed, g.Seed, restored.SessionID, g.SessionID)
	}
	if restored.FloorIndex != 1 || restored.CurrentCell.Pos() != g.CurrentCell.Pos() {
		t.Errorf("position should survive: floor %d at %v", restored.FloorIndex, restored.CurrentCell.Pos())
	}
	if restored.Score != g.Score {
		t.Errorf("score should survive: %+v vs %+v", restored.Score, g.Score)
	}
	if restored.LastHint() != "The crown lies deeper." {
		t.Errorf("hints should survive, got %q", restored.LastHint())
	}

	rp, gp := restored.Player, g.Player
	if rp.Health != gp.Health || rp.Gold != gp.Gold || rp.Experience != gp.Experience || rp.Level != gp.Level {
		t.Errorf("player numbers should survive: %d/%d gold %d/%d exp %d/%d",
			rp.Health, gp.Health, rp.Gold, gp.Gold, rp.Experience, gp.Experience)
	}
	if len(rp.Buffs) != 1 || rp.Buffs[0].Remaining != 3 {
		t.Errorf("buffs should survive, got %+v", rp.Buffs)
	}
	if len(rp.Effects) != 1 || rp.Effects[0].Kind != catalog.EffectPoison {
		t.Errorf("status effects should survive, got %+v", rp.Effects)
	}

	if len(rp.Inventory) != len(gp.Inventory) {
		t.Fatalf("inventory should survive: %d items vs %d", len(rp.Inventory), len(gp.Inventory))
	}
	for i := range rp.Inventory {
		if rp.Inventory[i].UID != gp.Inventory[i].UID {
			t.Errorf("inventory order should survive: %q vs %q", rp.Inventory[i].UID, gp.Inventory[i].UID)
		}
	}

	// Equipment must point back into the restored inventory, not at copies.
	if rp.Weapon == nil || rp.Weapon.UID != sword.UID {
		t.Fatalf("the sword should be back in hand, got %v", rp.Weapon)
	}
	var carried *entities.Item
	for _, item := range rp.Inventory {
		if item.UID == sword.UID {
			carried = item
		}
	}
	if rp.Weapon != carried {
		t.Error("the weapon slot must alias the carried instance")
	}

	// The replayed world reflects the history.
	restoredArtCell := restored.Dungeon.Floor(artFloor).CellAt(artCell.Pos())
	if hasArtifact(restoredArtCell) {
		t.Error("the taken artifact must not regenerate")
	}
	if enemyCell != nil {
		if dungeon.Data(restored.Dungeon.Floor(enemyFloor).CellAt(enemyCell.Pos())).Enemy != nil {
			t.Error("the killed enemy must not regenerate")
		}
	}
	if len(restored.Dungeon.Mutations) != len(g.Dungeon.Mutations) {
		t.Errorf("the replayed log should match: %d records vs %d",
			len(restored.Dungeon.Mutations), len(g.Dungeon.Mutations))
	}
}

func TestLoad_RejectsForeignVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	raw := []byte(`{"metadata":{"version":99,"seed":1,"floors":1}}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path, catalog.New())
	if !errors.Is(err, ErrVersion) {
		t.Errorf("expected ErrVersion, got %v", err)
	}
}

func TestLoad_RejectsTamperedHistory(t *testing.T) {
	g := newLiveGame(t)
	g.Dungeon.Mutations = append(g.Dungeon.Mutations, dungeon.MutationRecord{
		Kind: dungeon.MutationEnemyKilled, Floor: 0, Row: 1, Col: 1, ID: "dragon#9-9",
	})

	path := filepath.Join(t.TempDir(), "save.json")
	if err := Save(g, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := Load(path, catalog.New())
	if !errors.Is(err, dungeon.ErrReplayMismatch) {
		t.Errorf("expected ErrReplayMismatch, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), catalog.New())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the underlying not-exist error, got %v", err)
	}
}

func mustItem(t *testing.T, cat *catalog.Catalog, id string) catalog.ItemDef {
	t.Helper()
	def, ok := cat.Item(id)
	if !ok {
		t.Fatalf("catalog has no item %q", id)
	}
	return def
}
