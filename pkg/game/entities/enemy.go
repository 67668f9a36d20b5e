package entities

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
)

// Enemy is a placed monster: scaled fighter stats, reward data, and the
// cells it wanders while the player is elsewhere. Enemies never leave the
// room they were spawned in.
type Enemy struct {
	Fighter

	UID   string       `json:"uid"`
	DefID string       `json:"def_id"`
	Glyph string       `json:"glyph"`
	Tier  catalog.Tier `json:"tier"`

	Experience int            `json:"experience"`
	Gold       int            `json:"gold"`
	Loot       []catalog.Drop `json:"loot,omitempty"`
	Special    catalog.Effect `json:"special,omitempty"`

	// Home is the placement position. Kills are logged against it, because
	// a freshly regenerated dungeon has the enemy standing there, not
	// wherever it had patrolled to.
	Home       world.Position `json:"-"`
	Cell       *world.Cell    `json:"-"`
	Route      []*world.Cell  `json:"-"`
	RouteIndex int            `json:"-"`
}

// NewEnemy instantiates a definition at a floor depth, applying the
// per-floor scaling so a goblin three floors down outclasses its cousin on
// floor one. Depth is zero-based.
func NewEnemy(uid string, def catalog.EnemyDef, depth int, scaling catalog.ScalingParams) *Enemy {
	health := def.Health + depth*scaling.HealthPerFloor
	return &Enemy{
		Fighter: Fighter{
			Name:      def.Name,
			MaxHealth: health,
			Health:    health,
			Attack:    def.Attack + depth*scaling.AttackPerFloor,
			Defense:   def.Defense + depth*scaling.DefensePerFloor,
			Speed:     def.Speed,
		},
		UID:        uid,
		DefID:      def.ID,
		Glyph:      def.Glyph,
		Tier:       def.Tier,
		Experience: def.Experience,
		Gold:       def.Gold,
		Loot:       def.Loot,
		Special:    def.Special,
	}
}

// ExperienceReward is the experience for killing this enemy: the defined
// value, or half its max health when the definition left it unset.
func (e *Enemy) ExperienceReward() int {
	if e.Experience > 0 {
		return e.Experience
	}
	return atLeastOne(e.MaxHealth / 2)
}

// SpeedValue mirrors the player accessor so initiative reads both sides
// the same way.
func (e *Enemy) SpeedValue() int {
	return e.Speed
}

// NextPatrolCell advances the patrol cursor and returns the cell the enemy
// wants next. Enemies without a route stay put.
func (e *Enemy) NextPatrolCell() *world.Cell {
	if len(e.Route) == 0 {
		return nil
	}
	e.RouteIndex = (e.RouteIndex + 1) % len(e.Route)
	return e.Route[e.RouteIndex]
}
