package entities

import (
	"fmt"

	"darkdelve/pkg/game/catalog"
)

// StatusEffect is one active effect on a combatant: what it is, how many
// turns remain, and its magnitude. Effects tick down by one at the end of
// every turn-consuming action and vanish at zero.
type StatusEffect struct {
	Kind      catalog.EffectKind `json:"kind"`
	Remaining int                `json:"remaining"`
	Magnitude int                `json:"magnitude"`
}

// Buff is a temporary stat bonus from a consumable. Like status effects,
// buffs tick down at the end of every turn-consuming action.
type Buff struct {
	Attack    int    `json:"attack,omitempty"`
	Defense   int    `json:"defense,omitempty"`
	Speed     int    `json:"speed,omitempty"`
	Remaining int    `json:"remaining"`
	Source    string `json:"source"`
}

// burnDamage and poisonDamage derive per-turn damage when a definition left
// the magnitude at zero: a tenth of max health burning, a twentieth poisoned.
func burnDamage(magnitude, maxHealth int) int {
	if magnitude > 0 {
		return magnitude
	}
	return atLeastOne(maxHealth / 10)
}

func poisonDamage(magnitude, maxHealth int) int {
	if magnitude > 0 {
		return magnitude
	}
	return atLeastOne(maxHealth / 20)
}

func regenHealing(magnitude, maxHealth int) int {
	if magnitude > 0 {
		return magnitude
	}
	return atLeastOne(maxHealth / 20)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// effectNoun is the short name used in tick messages.
func effectNoun(kind catalog.EffectKind) string {
	switch kind {
	case catalog.EffectBurn:
		return "burn"
	case catalog.EffectPoison:
		return "poison"
	case catalog.EffectChill:
		return "chill"
	case catalog.EffectShock:
		return "shock"
	case catalog.EffectStun:
		return "stun"
	case catalog.EffectRegen:
		return "regeneration"
	default:
		return string(kind)
	}
}

func expiryMessage(name string, kind catalog.EffectKind) string {
	return fmt.Sprintf("The %s on %s wears off.", effectNoun(kind), name)
}
