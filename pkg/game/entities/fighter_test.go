package entities

import (
	"strings"
	"testing"

	"darkdelve/pkg/game/catalog"
)

func newTestFighter(t *testing.T, health int) *Fighter {
	t.Helper()
	return &Fighter{
		Name:      "Test Subject",
		MaxHealth: health,
		Health:    health,
		Attack:    10,
		Defense:   5,
		Speed:     10,
	}
}

func TestFighter_TakeDamageClampsAtZero(t *testing.T) {
	f := newTestFighter(t, 10)
	f.TakeDamage(25)

	if f.Health != 0 {
		t.Errorf("expected health 0, got %d", f.Health)
	}
	if f.Alive() {
		t.Error("fighter at zero health should not be alive")
	}
}

func TestFighter_HealClampsAtMax(t *testing.T) {
	f := newTestFighter(t, 100)
	f.Health = 90

	healed := f.Heal(50)
	if healed != 10 {
		t.Errorf("expected 10 healed, got %d", healed)
	}
	if f.Health != 100 {
		t.Errorf("expected health 100, got %d", f.Health)
	}
}

func TestFighter_BurnTicksAndExpires(t *testing.T) {
	f := newTestFighter(t, 100)
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectBurn, Duration: 2})

	messages := f.TickEffects()
	if f.Health != 90 {
		t.Errorf("expected burn to deal 10 (a tenth of max health), health is %d", f.Health)
	}
	if len(messages) != 1 || !strings.Contains(messages[0], "burn") {
		t.Errorf("expected one burn message, got %v", messages)
	}

	messages = f.TickEffects()
	if f.Health != 80 {
		t.Errorf("expected second burn tick, health is %d", f.Health)
	}
	foundExpiry := false
	for _, m := range messages {
		if strings.Contains(m, "wears off") {
			foundExpiry = true
		}
	}
	if !foundExpiry {
		t.Errorf("expected expiry message on final tick, got %v", messages)
	}
	if len(f.Effects) != 0 {
		t.Errorf("expected effects cleared, got %v", f.Effects)
	}
}

func TestFighter_PoisonUsesSmallerFraction(t *testing.T) {
	f := newTestFighter(t, 100)
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectPoison, Duration: 1})

	f.TickEffects()
	if f.Health != 95 {
		t.Errorf("expected poison to deal 5 (a twentieth of max health), health is %d", f.Health)
	}
}

func TestFighter_DotDamageFloorsAtOne(t *testing.T) {
	f := newTestFighter(t, 5)
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectPoison, Duration: 1})

	f.TickEffects()
	if f.Health != 4 {
		t.Errorf("expected minimum 1 poison damage on a 5 health fighter, health is %d", f.Health)
	}
}

func TestFighter_ChillAndShockReduceStats(t *testing.T) {
	f := newTestFighter(t, 100)
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectChill, Duration: 3})
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectShock, Duration: 3})

	if got := f.EffectiveAttack(); got != 8 {
		t.Errorf("expected chilled attack 8, got %d", got)
	}
	if got := f.EffectiveDefense(); got != 3 {
		t.Errorf("expected shocked defense 3, got %d", got)
	}
	if f.Attack != 10 || f.Defense != 5 {
		t.Error("base stats must not change while debuffed")
	}

	for i := 0; i < 3; i++ {
		f.TickEffects()
	}
	if f.EffectiveAttack() != 10 || f.EffectiveDefense() != 5 {
		t.Error("stats should recover once the debuffs expire")
	}
}

func TestFighter_StatPenaltiesFloorAtZero(t *testing.T) {
	f := newTestFighter(t, 10)
	f.Attack = 1
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectChill, Duration: 2, Magnitude: 5})

	if got := f.EffectiveAttack(); got != 0 {
		t.Errorf("expected attack floored at 0, got %d", got)
	}
}

func TestFighter_StunDetectedBeforeTick(t *testing.T) {
	f := newTestFighter(t, 100)
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectStun, Duration: 1})

	if !f.Stunned() {
		t.Fatal("expected fighter stunned")
	}
	f.TickEffects()
	if f.Stunned() {
		t.Error("stun should expire after its single turn")
	}
}

func TestFighter_ReapplyRefreshesDuration(t *testing.T) {
	f := newTestFighter(t, 100)
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectBurn, Duration: 3})
	f.TickEffects()
	f.TickEffects()

	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectBurn, Duration: 3})
	if len(f.Effects) != 1 {
		t.Fatalf("expected a single burn entry, got %d", len(f.Effects))
	}
	if f.Effects[0].Remaining != 3 {
		t.Errorf("expected refreshed duration 3, got %d", f.Effects[0].Remaining)
	}
}

func TestFighter_RegenHealsUpToMax(t *testing.T) {
	f := newTestFighter(t, 100)
	f.Health = 97
	f.ApplyEffect(catalog.Effect{Kind: catalog.EffectRegen, Duration: 2})

	f.TickEffects()
	if f.Health != 100 {
		t.Errorf("expected regen clamped at max health, got %d", f.Health)
	}
}
