package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_BuiltinsOnly(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := c.Item("rusty-sword"); !ok {
		t.Error("rusty-sword missing from built-ins")
	}
	if _, ok := c.Enemy("goblin"); !ok {
		t.Error("goblin missing from built-ins")
	}
	if _, ok := c.Template(RoomStart); !ok {
		t.Error("start room template missing")
	}
	if len(c.NPCs()) == 0 {
		t.Error("no built-in NPCs")
	}
	if got := c.Scaling(); got != DefaultScaling {
		t.Errorf("scaling = %+v, want defaults %+v", got, DefaultScaling)
	}
}

func TestLoad_BuiltinLootResolves(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, tier := range []Tier{TierCommon, TierElite, TierBoss} {
		for _, def := range c.EnemiesByTier(tier) {
			for _, drop := range def.Loot {
				if _, ok := c.Item(drop.ItemID); !ok {
					t.Errorf("enemy %s drops unknown item %s", def.ID, drop.ItemID)
				}
			}
		}
	}
}

func TestItemsByCategory_SortedAndFiltered(t *testing.T) {
	c, _ := Load("")

	weapons := c.ItemsByCategory(CategoryWeapon)
	if len(weapons) == 0 {
		t.Fatal("no weapons in catalog")
	}
	for i, def := range weapons {
		if def.Category != CategoryWeapon {
			t.Errorf("non-weapon %s in weapon list", def.ID)
		}
		if i > 0 && weapons[i-1].ID >= def.ID {
			t.Errorf("weapon list unsorted: %s before %s", weapons[i-1].ID, def.ID)
		}
	}
}

func TestLookupByName_CaseInsensitive(t *testing.T) {
	c, _ := Load("")

	if def, ok := c.ItemByName("  healing POTION "); !ok || def.ID != "healing-potion" {
		t.Errorf("ItemByName(healing POTION) = %+v, %v", def, ok)
	}
	if def, ok := c.EnemyByName("GOBLIN"); !ok || def.ID != "goblin" {
		t.Errorf("EnemyByName(GOBLIN) = %+v, %v", def, ok)
	}
	if _, ok := c.ItemByName("no such thing"); ok {
		t.Error("ItemByName matched a nonexistent item")
	}
}

func TestTierForDepth(t *testing.T) {
	cases := []struct {
		depth, floors int
		want          Tier
	}{
		{0, 5, TierCommon},
		{1, 5, TierCommon},
		{2, 5, TierElite},
		{3, 5, TierElite},
		{4, 5, TierBoss},
		{0, 1, TierCommon},
		{1, 2, TierBoss},
	}
	for _, tc := range cases {
		if got := TierForDepth(tc.depth, tc.floors); got != tc.want {
			t.Errorf("TierForDepth(%d, %d) = %s, want %s", tc.depth, tc.floors, got, tc.want)
		}
	}
}

func TestLoad_OverlayReplacesAndExtends(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "items.json"), `[
		{"id": "rusty-sword", "name": "Rustier Sword", "category": "weapon", "attack": 2, "value": 3, "rarity": 5},
		{"id": "moon-blade", "name": "Moon Blade", "category": "weapon", "attack": 11, "value": 90, "rarity": 1}
	]`)
	writeFile(t, filepath.Join(dir, "enemies.json"), `{
		"scaling": {"health_per_floor": 12, "attack_per_floor": 3, "defense_per_floor": 2},
		"enemies": [
			{"id": "mire-troll", "name": "Mire Troll", "glyph": "T", "tier": "elite",
			 "health": 60, "attack": 13, "defense": 5, "speed": 7,
			 "loot": [{"item_id": "moon-blade", "chance": 0.2}]}
		]
	}`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if def, _ := c.Item("rusty-sword"); def.Name != "Rustier Sword" || def.Attack != 2 {
		t.Errorf("overlay did not replace rusty-sword: %+v", def)
	}
	if _, ok := c.Item("moon-blade"); !ok {
		t.Error("overlay did not add moon-blade")
	}
	if _, ok := c.Enemy("mire-troll"); !ok {
		t.Error("overlay did not add mire-troll")
	}
	if got := c.Scaling(); got.HealthPerFloor != 12 || got.AttackPerFloor != 3 {
		t.Errorf("overlay scaling not applied: %+v", got)
	}
	// Untouched built-ins survive.
	if _, ok := c.Enemy("goblin"); !ok {
		t.Error("goblin lost during overlay")
	}
}

func TestLoad_DanglingLootFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "enemies.json"), `{
		"enemies": [
			{"id": "bad-wolf", "name": "Bad Wolf", "glyph": "w", "tier": "common",
			 "health": 10, "attack": 3, "defense": 0, "speed": 9,
			 "loot": [{"item_id": "does-not-exist", "chance": 0.5}]}
		]
	}`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load accepted a dangling loot item id")
	}
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("error = %v, want ErrUnknownItem", err)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "items.json"), `{not json`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted malformed items.json")
	}
}

func TestLoad_MissingDirFilesAreOptional(t *testing.T) {
	if _, err := Load(t.TempDir()); err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
