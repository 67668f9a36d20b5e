package entities

import (
	"testing"

	"darkdelve/pkg/game/catalog"
)

func carriedItem(t *testing.T, p *Player, defID string) *Item {
	t.Helper()
	def, ok := catalog.New().Item(defID)
	if !ok {
		t.Fatalf("catalog has no item %q", defID)
	}
	item := NewItem(defID+"#test", def)
	p.AddItem(item)
	return item
}

func TestPlayer_StartingStats(t *testing.T) {
	p := NewPlayer("Adventurer")

	if p.MaxHealth != 100 || p.Health != 100 {
		t.Errorf("expected 100 health, got %d/%d", p.Health, p.MaxHealth)
	}
	if p.Attack != 10 || p.Defense != 5 || p.Speed != 10 {
		t.Errorf("unexpected base stats: atk %d def %d spd %d", p.Attack, p.Defense, p.Speed)
	}
	if p.Level != 1 || p.ExpToNext != 100 {
		t.Errorf("expected level 1 with 100 to next, got level %d with %d", p.Level, p.ExpToNext)
	}
}

func TestPlayer_LevelUpCurve(t *testing.T) {
	p := NewPlayer("Adventurer")
	p.Health = 40

	messages := p.GainExperience(100)

	if p.Level != 2 {
		t.Fatalf("expected level 2, got %d", p.Level)
	}
	if p.ExpToNext != 150 {
		t.Errorf("expected next threshold 150, got %d", p.ExpToNext)
	}
	if p.MaxHealth != 120 || p.Attack != 13 || p.Defense != 7 {
		t.Errorf("unexpected post-level stats: hp %d atk %d def %d", p.MaxHealth, p.Attack, p.Defense)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("levelling should restore full health, got %d/%d", p.Health, p.MaxHealth)
	}
	if len(messages) != 2 {
		t.Errorf("expected gain and level messages, got %v", messages)
	}
}

func TestPlayer_MultipleLevelsFromOneAward(t *testing.T) {
	p := NewPlayer("Adventurer")

	p.GainExperience(250)

	if p.Level != 3 {
		t.Errorf("expected 250 exp to reach level 3 (100 then 150), got level %d", p.Level)
	}
	if p.Experience != 0 {
		t.Errorf("expected no experience left over, got %d", p.Experience)
	}
}

func TestPlayer_EquipmentContributesToCombatValues(t *testing.T) {
	p := NewPlayer("Adventurer")
	axe := carriedItem(t, p, "war-axe")
	mail := carriedItem(t, p, "chainmail")

	if _, ok := p.Equip(axe); !ok {
		t.Fatal("could not equip weapon")
	}
	if _, ok := p.Equip(mail); !ok {
		t.Fatal("could not equip armor")
	}

	if got := p.AttackValue(); got != p.Attack+axe.Def.Attack {
		t.Errorf("expected attack %d, got %d", p.Attack+axe.Def.Attack, got)
	}
	if got := p.DefenseValue(); got != p.Defense+mail.Def.Defense {
		t.Errorf("expected defense %d, got %d", p.Defense+mail.Def.Defense, got)
	}
}

func TestPlayer_EquipReplacesAndReturnsPrevious(t *testing.T) {
	p := NewPlayer("Adventurer")
	rusty := carriedItem(t, p, "rusty-sword")
	shortsword := carriedItem(t, p, "shortsword")

	p.Equip(rusty)
	previous, ok := p.Equip(shortsword)

	if !ok || previous != rusty {
		t.Errorf("expected the rusty sword back, got %v", previous)
	}
	if p.Weapon != shortsword {
		t.Error("shortsword should be equipped")
	}
}

func TestPlayer_EquipRejectsConsumables(t *testing.T) {
	p := NewPlayer("Adventurer")
	potion := carriedItem(t, p, "healing-potion")

	if _, ok := p.Equip(potion); ok {
		t.Error("consumables must not be equippable")
	}
}

func TestPlayer_RemoveItemUnequips(t *testing.T) {
	p := NewPlayer("Adventurer")
	sword := carriedItem(t, p, "steel-sword")
	p.Equip(sword)

	removed := p.RemoveItem(sword.UID)

	if removed != sword {
		t.Fatal("expected the sword back from removal")
	}
	if p.Weapon != nil {
		t.Error("removing an equipped item should unequip it")
	}
	if len(p.Inventory) != 0 {
		t.Errorf("inventory should be empty, has %d items", len(p.Inventory))
	}
}

func TestPlayer_FindItem(t *testing.T) {
	p := NewPlayer("Adventurer")
	potion := carriedItem(t, p, "healing-potion")
	carriedItem(t, p, "shortsword")

	t.Run("by exact name", func(t *testing.T) {
		if got := p.FindItem("Healing Potion"); got != potion {
			t.Errorf("expected the potion, got %v", got)
		}
	})

	t.Run("by prefix", func(t *testing.T) {
		if got := p.FindItem("heal"); got != potion {
			t.Errorf("expected the potion, got %v", got)
		}
	})

	t.Run("by definition id", func(t *testing.T) {
		if got := p.FindItem("healing-potion"); got != potion {
			t.Errorf("expected the potion, got %v", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if got := p.FindItem("banana"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestPlayer_BuffsTickAndExpire(t *testing.T) {
	p := NewPlayer("Adventurer")
	p.AddBuff(Buff{Attack: 5, Remaining: 2, Source: "Strength Tonic"})

	if got := p.AttackValue(); got != 15 {
		t.Errorf("expected buffed attack 15, got %d", got)
	}

	p.TickBuffs()
	messages := p.TickBuffs()

	if len(p.Buffs) != 0 {
		t.Errorf("expected buff expired, got %v", p.Buffs)
	}
	if len(messages) != 1 {
		t.Errorf("expected one expiry message, got %v", messages)
	}
	if got := p.AttackValue(); got != 10 {
		t.Errorf("expected attack back to 10, got %d", got)
	}
}

func TestEnemy_ScalingByDepth(t *testing.T) {
	cat := catalog.New()
	def, ok := cat.Enemy("goblin")
	if !ok {
		t.Fatal("catalog has no goblin")
	}

	base := NewEnemy("goblin#0-1", def, 0, cat.Scaling())
	deep := NewEnemy("goblin#3-1", def, 3, cat.Scaling())

	if deep.MaxHealth != base.MaxHealth+30 {
		t.Errorf("expected +30 health three floors down, got %d vs %d", deep.MaxHealth, base.MaxHealth)
	}
	if deep.Attack != base.Attack+6 {
		t.Errorf("expected +6 attack three floors down, got %d vs %d", deep.Attack, base.Attack)
	}
	if deep.Defense != base.Defense+3 {
		t.Errorf("expected +3 defense three floors down, got %d vs %d", deep.Defense, base.Defense)
	}
	if deep.Speed != base.Speed {
		t.Errorf("speed should not scale, got %d vs %d", deep.Speed, base.Speed)
	}
}

func TestEnemy_ExperienceFallback(t *testing.T) {
	cat := catalog.New()
	def, ok := cat.Enemy("rot-grub")
	if !ok {
		t.Fatal("catalog has no rot-grub")
	}
	if def.Experience != 0 {
		t.Fatalf("rot-grub should have no defined experience, has %d", def.Experience)
	}

	e := NewEnemy("rot-grub#0-1", def, 0, cat.Scaling())
	if got := e.ExperienceReward(); got != e.MaxHealth/2 {
		t.Errorf("expected fallback of half max health (%d), got %d", e.MaxHealth/2, got)
	}
}
