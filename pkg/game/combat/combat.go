// Package combat resolves one encounter between the player and an enemy:
// initiative, alternating turns, the damage floor, weapon and enemy status
// effects, and the payout on a kill. An encounter is transient — created
// when an attack intent finds a living enemy, driven by player actions, and
// discarded once resolved.
package combat

import (
	"errors"
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/entities"
)

// ErrCombatImpossible rejects an attack with no living enemy behind it. The
// caller reports it and changes nothing.
var ErrCombatImpossible = errors.New("no living enemy to fight")

// State is the encounter's position in its lifecycle. Between method calls
// an encounter rests in PlayerTurn or one of the resolved states; the other
// states pass during Begin and the turn methods.
type State int

const (
	StateIdle State = iota
	StateInitiative
	StatePlayerTurn
	StateEnemyTurn
	StateVictory
	StateDefeat
	StateDisengaged
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitiative:
		return "initiative"
	case StatePlayerTurn:
		return "player-turn"
	case StateEnemyTurn:
		return "enemy-turn"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateDisengaged:
		return "disengaged"
	default:
		return "unknown"
	}
}

// Side names a combatant for initiative reporting.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Encounter is one fight run to completion. The stream is the session
// stream: initiative ties, flee rolls, loot rolls and gold fallbacks all
// consume it in action order, so identical seeds and action logs fight
// identical battles.
type Encounter struct {
	Player *entities.Player
	Enemy  *entities.Enemy

	// First records who won initiative.
	First Side
	Round int

	// Drops collects the items paid out on victory; the caller moves them
	// into the inventory and the score.
	Drops []*entities.Item

	state  State
	cat    *catalog.Catalog
	stream *rand.Rand
}

// Begin opens an encounter: initiative is compared, and when the enemy is
// faster it takes its opening swing before control returns to the caller.
// The returned messages narrate everything up to the first player turn.
func Begin(player *entities.Player, enemy *entities.Enemy, cat *catalog.Catalog, stream *rand.Rand) (*Encounter, []string, error) {
	if enemy == nil || !enemy.Alive() {
		return nil, nil, ErrCombatImpossible
	}

	e := &Encounter{
		Player: player,
		Enemy:  enemy,
		state:  StateIdle,
		cat:    cat,
		stream: stream,
	}

	e.state = StateInitiative
	playerSpeed := player.SpeedValue()
	enemySpeed := enemy.SpeedValue()
	switch {
	case playerSpeed > enemySpeed:
		e.First = SidePlayer
	case enemySpeed > playerSpeed:
		e.First = SideEnemy
	default:
		// Exact tie: a coin decides.
		if rng.CoinFlip(e.stream) {
			e.First = SidePlayer
		} else {
			e.First = SideEnemy
		}
	}

	messages := []string{fmt.Sprintf("You square off against the %s!", enemy.Name)}
	if e.First == SidePlayer {
		e.state = StatePlayerTurn
		messages = append(messages, "You are quicker. You act first.")
	} else {
		messages = append(messages, fmt.Sprintf("The %s is quicker. It acts first!", enemy.Name))
		messages = append(messages, e.enemyTurn()...)
	}
	return e, messages, nil
}

// State returns the encounter's current state.
func (e *Encounter) State() State {
	return e.state
}

// Resolved reports whether the encounter has reached a terminal state.
func (e *Encounter) Resolved() bool {
	switch e.state {
	case StateVictory, StateDefeat, StateDisengaged:
		return true
	default:
		return false
	}
}

// PlayerAttack spends the player's turn on a strike. A stunned player loses
// the turn instead; either way the enemy responds unless the fight ended.
func (e *Encounter) PlayerAttack() []string {
	if e.state != StatePlayerTurn {
		return nil
	}
	e.Round++

	if e.Player.Stunned() {
		messages := []string{"You are stunned and cannot act!"}
		return append(messages, e.enemyTurn()...)
	}

	damage := Damage(e.Player.AttackValue(), e.Enemy.EffectiveDefense())
	e.Enemy.TakeDamage(damage)
	messages := []string{fmt.Sprintf("You hit the %s for %d damage.", e.Enemy.Name, damage)}

	if e.Player.Weapon != nil && !e.Player.Weapon.Def.Effect.None() {
		effect := e.Player.Weapon.Def.Effect
		e.Enemy.ApplyEffect(effect)
		messages = append(messages, fmt.Sprintf("The %s is %s!", e.Enemy.Name, afflictionName(effect.Kind)))
	}

	if !e.Enemy.Alive() {
		return append(messages, e.victory()...)
	}
	return append(messages, e.enemyTurn()...)
}

// PlayerItemUsed spends the player's turn on an item the caller has already
// applied. The enemy responds.
func (e *Encounter) PlayerItemUsed() []string {
	if e.state != StatePlayerTurn {
		return nil
	}
	e.Round++
	return e.enemyTurn()
}

// PlayerFlee attempts to disengage. Matching or beating the enemy's speed
// always works; slower players escape on a coin flip, and a failed attempt
// hands the enemy a free swing.
func (e *Encounter) PlayerFlee() []string {
	if e.state != StatePlayerTurn {
		return nil
	}
	e.Round++

	if e.Player.Stunned() {
		messages := []string{"You are stunned and cannot flee!"}
		return append(messages, e.enemyTurn()...)
	}

	escaped := e.Player.SpeedValue() >= e.Enemy.SpeedValue() || rng.CoinFlip(e.stream)
	if escaped {
		e.state = StateDisengaged
		return []string{fmt.Sprintf("You break away from the %s.", e.Enemy.Name)}
	}

	messages := []string{fmt.Sprintf("The %s cuts off your escape!", e.Enemy.Name)}
	return append(messages, e.enemyTurn()...)
}

// enemyTurn runs the enemy's side of the round: its effects tick first
// (burn and poison can finish it), a stun costs it the turn, and otherwise
// it strikes back. Ends in PlayerTurn unless someone fell.
func (e *Encounter) enemyTurn() []string {
	e.state = StateEnemyTurn

	stunned := e.Enemy.Stunned()
	messages := e.Enemy.TickEffects()
	if !e.Enemy.Alive() {
		return append(messages, e.victory()...)
	}
	if stunned {
		messages = append(messages, fmt.Sprintf("The %s is stunned and cannot act!", e.Enemy.Name))
		e.state = StatePlayerTurn
		return messages
	}

	damage := Damage(e.Enemy.EffectiveAttack(), e.Player.DefenseValue())
	e.Player.TakeDamage(damage)
	messages = append(messages, fmt.Sprintf("The %s hits you for %d damage.", e.Enemy.Name, damage))

	if !e.Enemy.Special.None() {
		e.Player.ApplyEffect(e.Enemy.Special)
		messages = append(messages, fmt.Sprintf("You are %s!", afflictionName(e.Enemy.Special.Kind)))
	}

	if !e.Player.Alive() {
		e.state = StateDefeat
		return append(messages, "You fall. The dungeon claims another.")
	}

	e.state = StatePlayerTurn
	return messages
}

// victory pays out the kill: experience with its half-max-health fallback,
// gold with its 5–20 roll fallback, and the loot table. Drops are minted
// here and left on the encounter for the caller to collect.
func (e *Encounter) victory() []string {
	e.state = StateVictory

	messages := []string{fmt.Sprintf("The %s is slain!", e.Enemy.Name)}
	messages = append(messages, e.Player.GainExperience(e.Enemy.ExperienceReward())...)

	gold := e.Enemy.Gold
	if gold <= 0 {
		gold = rng.Between(e.stream, 5, 20)
	}
	e.Player.AddGold(gold)
	messages = append(messages, fmt.Sprintf("You loot %d gold.", gold))

	for i, drop := range e.rollLoot() {
		item := entities.NewItem(fmt.Sprintf("%s-drop%d", e.Enemy.UID, i+1), drop)
		e.Drops = append(e.Drops, item)
		e.Player.AddItem(item)
		messages = append(messages, fmt.Sprintf("The %s drops a %s.", e.Enemy.Name, item.Name()))
	}
	return messages
}

// rollLoot checks every table entry's independent chance. When the whole
// table misses, one entry drawn uniformly drops anyway, so a kill is never
// entirely empty-handed.
func (e *Encounter) rollLoot() []catalog.ItemDef {
	if len(e.Enemy.Loot) == 0 {
		return nil
	}

	var defs []catalog.ItemDef
	for _, drop := range e.Enemy.Loot {
		if !rng.Chance(e.stream, drop.Chance) {
			continue
		}
		if def, ok := e.cat.Item(drop.ItemID); ok {
			defs = append(defs, def)
		}
	}
	if len(defs) == 0 {
		fallback := e.Enemy.Loot[e.stream.Intn(len(e.Enemy.Loot))]
		if def, ok := e.cat.Item(fallback.ItemID); ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// Damage is the core damage formula: attack less defense, never below one.
// The floor is what guarantees every fight terminates.
func Damage(attack, defense int) int {
	damage := attack - defense
	if damage < 1 {
		damage = 1
	}
	return damage
}

// afflictionName is the past-participle form used in hit messages.
func afflictionName(kind catalog.EffectKind) string {
	switch kind {
	case catalog.EffectBurn:
		return "set ablaze"
	case catalog.EffectPoison:
		return "poisoned"
	case catalog.EffectChill:
		return "chilled"
	case catalog.EffectShock:
		return "shocked"
	case catalog.EffectStun:
		return "stunned"
	default:
		return string(kind)
	}
}
