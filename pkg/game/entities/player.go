package entities

import (
	"fmt"
	"strings"

	"darkdelve/pkg/game/catalog"
)

const (
	playerBaseHealth  = 100
	playerBaseAttack  = 10
	playerBaseDefense = 5
	playerBaseSpeed   = 10

	firstLevelThreshold = 100

	levelHealthGain  = 20
	levelAttackGain  = 3
	levelDefenseGain = 2
)

// Player is the adventurer: fighter stats plus progression, inventory and
// equipment. Equipment contributes to combat values without touching the
// base stats, so unequipping is a pointer swap.
type Player struct {
	Fighter

	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	ExpToNext  int    `json:"exp_to_next"`
	Gold       int    `json:"gold"`

	Inventory []*Item `json:"inventory"`
	Weapon    *Item   `json:"weapon,omitempty"`
	Armor     *Item   `json:"armor,omitempty"`
	Buffs     []Buff  `json:"buffs,omitempty"`
}

func NewPlayer(name string) *Player {
	return &Player{
		Fighter: Fighter{
			Name:      name,
			MaxHealth: playerBaseHealth,
			Health:    playerBaseHealth,
			Attack:    playerBaseAttack,
			Defense:   playerBaseDefense,
			Speed:     playerBaseSpeed,
		},
		Level:     1,
		ExpToNext: firstLevelThreshold,
	}
}

// AttackValue is the attack used in combat: effective base plus weapon and
// active buffs.
func (p *Player) AttackValue() int {
	attack := p.EffectiveAttack()
	if p.Weapon != nil {
		attack += p.Weapon.Def.Attack
	}
	for _, b := range p.Buffs {
		attack += b.Attack
	}
	if attack < 0 {
		attack = 0
	}
	return attack
}

// DefenseValue is the defense used in combat: effective base plus armor and
// active buffs.
func (p *Player) DefenseValue() int {
	defense := p.EffectiveDefense()
	if p.Armor != nil {
		defense += p.Armor.Def.Defense
	}
	for _, b := range p.Buffs {
		defense += b.Defense
	}
	if defense < 0 {
		defense = 0
	}
	return defense
}

// SpeedValue is the speed used for initiative: base plus equipment and buffs.
func (p *Player) SpeedValue() int {
	speed := p.Speed
	if p.Weapon != nil {
		speed += p.Weapon.Def.Speed
	}
	if p.Armor != nil {
		speed += p.Armor.Def.Speed
	}
	for _, b := range p.Buffs {
		speed += b.Speed
	}
	if speed < 0 {
		speed = 0
	}
	return speed
}

// GainExperience awards experience and handles any level-ups it triggers.
// Each level costs half again as much as the last; levelling restores the
// player to full health.
func (p *Player) GainExperience(amount int) []string {
	if amount <= 0 {
		return nil
	}

	p.Experience += amount
	messages := []string{fmt.Sprintf("You gain %d experience.", amount)}

	for p.Experience >= p.ExpToNext {
		p.Experience -= p.ExpToNext
		p.ExpToNext = p.ExpToNext * 3 / 2
		p.Level++

		p.MaxHealth += levelHealthGain
		p.Attack += levelAttackGain
		p.Defense += levelDefenseGain
		p.Health = p.MaxHealth

		messages = append(messages, fmt.Sprintf("You reach level %d! Health, attack and defense rise.", p.Level))
	}

	return messages
}

func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

func (p *Player) AddItem(item *Item) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItem takes an item out of the inventory by UID. Removing an
// equipped item also unequips it.
func (p *Player) RemoveItem(uid string) *Item {
	for i, item := range p.Inventory {
		if item.UID != uid {
			continue
		}
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		if p.Weapon != nil && p.Weapon.UID == uid {
			p.Weapon = nil
		}
		if p.Armor != nil && p.Armor.UID == uid {
			p.Armor = nil
		}
		return item
	}
	return nil
}

// FindItem resolves an inventory query: a UID, an exact name, or an
// unambiguous name prefix, all case-insensitive.
func (p *Player) FindItem(query string) *Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	for _, item := range p.Inventory {
		if strings.ToLower(item.UID) == query || strings.ToLower(item.Def.ID) == query {
			return item
		}
	}
	for _, item := range p.Inventory {
		if strings.ToLower(item.Name()) == query {
			return item
		}
	}

	var match *Item
	for _, item := range p.Inventory {
		if strings.HasPrefix(strings.ToLower(item.Name()), query) {
			if match != nil && match.Def.ID != item.Def.ID {
				return nil
			}
			if match == nil {
				match = item
			}
		}
	}
	return match
}

// FindByDef returns the first carried instance of a definition, used for
// key checks against obstacles.
func (p *Player) FindByDef(defID string) *Item {
	for _, item := range p.Inventory {
		if item.Def.ID == defID {
			return item
		}
	}
	return nil
}

// Equip slots a weapon or armor piece and returns whatever it displaced.
// The item must already be in the inventory.
func (p *Player) Equip(item *Item) (*Item, bool) {
	switch item.Def.Category {
	case catalog.CategoryWeapon:
		previous := p.Weapon
		p.Weapon = item
		return previous, true
	case catalog.CategoryArmor:
		previous := p.Armor
		p.Armor = item
		return previous, true
	default:
		return nil, false
	}
}

func (p *Player) AddBuff(buff Buff) {
	if buff.Remaining > 0 {
		p.Buffs = append(p.Buffs, buff)
	}
}

// TickBuffs decrements buff timers and reports what expired.
func (p *Player) TickBuffs() []string {
	if len(p.Buffs) == 0 {
		return nil
	}

	var messages []string
	kept := p.Buffs[:0]
	for _, b := range p.Buffs {
		b.Remaining--
		if b.Remaining > 0 {
			kept = append(kept, b)
		} else {
			messages = append(messages, fmt.Sprintf("The effect of the %s fades.", b.Source))
		}
	}
	p.Buffs = kept
	if len(p.Buffs) == 0 {
		p.Buffs = nil
	}
	return messages
}
