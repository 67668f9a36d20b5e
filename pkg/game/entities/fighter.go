// Package entities contains the things that live in the dungeon: the player,
// enemies, items, obstacles, hazards and inhabitants. These wrap catalog
// definitions with per-instance state on top of the generic engine primitives.
package entities

import (
	"fmt"

	"darkdelve/pkg/game/catalog"
)

// Fighter carries the stats and active effects shared by the player and
// enemies. Combat math reads the Effective* values so chill and shock
// debuffs apply without mutating the base stats.
type Fighter struct {
	Name      string         `json:"name"`
	MaxHealth int            `json:"max_health"`
	Health    int            `json:"health"`
	Attack    int            `json:"attack"`
	Defense   int            `json:"defense"`
	Speed     int            `json:"speed"`
	Effects   []StatusEffect `json:"effects,omitempty"`
}

func (f *Fighter) Alive() bool {
	return f.Health > 0
}

// TakeDamage subtracts health, clamping at zero.
func (f *Fighter) TakeDamage(amount int) {
	f.Health -= amount
	if f.Health < 0 {
		f.Health = 0
	}
}

// Heal restores health, clamping at max.
func (f *Fighter) Heal(amount int) int {
	healed := amount
	if f.Health+healed > f.MaxHealth {
		healed = f.MaxHealth - f.Health
	}
	f.Health += healed
	return healed
}

// ApplyEffect adds a status effect, or refreshes the timer if the same kind
// is already active. A zero-kind effect is ignored.
func (f *Fighter) ApplyEffect(effect catalog.Effect) {
	if effect.Kind == "" || effect.Duration <= 0 {
		return
	}

	for i := range f.Effects {
		if f.Effects[i].Kind == effect.Kind {
			if effect.Duration > f.Effects[i].Remaining {
				f.Effects[i].Remaining = effect.Duration
			}
			if effect.Magnitude > 0 {
				f.Effects[i].Magnitude = effect.Magnitude
			}
			return
		}
	}

	f.Effects = append(f.Effects, StatusEffect{
		Kind:      effect.Kind,
		Remaining: effect.Duration,
		Magnitude: effect.Magnitude,
	})
}

// Stunned reports whether a stun is active. The stunned side loses its next
// turn; the check happens before effects tick so a fresh stun always costs
// at least one turn.
func (f *Fighter) Stunned() bool {
	for _, e := range f.Effects {
		if e.Kind == catalog.EffectStun {
			return true
		}
	}
	return false
}

// EffectiveAttack is the base attack less any chill penalty, floored at zero.
func (f *Fighter) EffectiveAttack() int {
	attack := f.Attack
	for _, e := range f.Effects {
		if e.Kind == catalog.EffectChill {
			attack -= chillPenalty(e.Magnitude)
		}
	}
	if attack < 0 {
		attack = 0
	}
	return attack
}

// EffectiveDefense is the base defense less any shock penalty, floored at zero.
func (f *Fighter) EffectiveDefense() int {
	defense := f.Defense
	for _, e := range f.Effects {
		if e.Kind == catalog.EffectShock {
			defense -= shockPenalty(e.Magnitude)
		}
	}
	if defense < 0 {
		defense = 0
	}
	return defense
}

func chillPenalty(magnitude int) int {
	if magnitude > 0 {
		return magnitude
	}
	return 2
}

func shockPenalty(magnitude int) int {
	if magnitude > 0 {
		return magnitude
	}
	return 2
}

// TickEffects applies one turn of every active effect, decrements the
// timers, and drops whatever expired. It returns the messages the tick
// produced, in the order the effects were applied.
func (f *Fighter) TickEffects() []string {
	if len(f.Effects) == 0 {
		return nil
	}

	var messages []string
	kept := f.Effects[:0]

	for _, e := range f.Effects {
		switch e.Kind {
		case catalog.EffectBurn:
			damage := burnDamage(e.Magnitude, f.MaxHealth)
			f.TakeDamage(damage)
			messages = append(messages, fmt.Sprintf("%s takes %d burn damage.", f.Name, damage))
		case catalog.EffectPoison:
			damage := poisonDamage(e.Magnitude, f.MaxHealth)
			f.TakeDamage(damage)
			messages = append(messages, fmt.Sprintf("%s takes %d poison damage.", f.Name, damage))
		case catalog.EffectRegen:
			healed := f.Heal(regenHealing(e.Magnitude, f.MaxHealth))
			if healed > 0 {
				messages = append(messages, fmt.Sprintf("%s regenerates %d health.", f.Name, healed))
			}
		}

		e.Remaining--
		if e.Remaining > 0 {
			kept = append(kept, e)
		} else {
			messages = append(messages, expiryMessage(f.Name, e.Kind))
		}
	}

	f.Effects = kept
	if len(f.Effects) == 0 {
		f.Effects = nil
	}
	return messages
}
