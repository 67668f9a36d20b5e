// Package catalog holds the immutable content definitions the game is built
// from: items, enemies, room templates, and NPCs. A catalog is assembled once
// at startup — built-in definitions first, optionally overlaid by JSON files
// from a data directory — validated, and then only read. Generation, placement,
// and combat all receive the same catalog by reference and never mutate it.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for definition lookups and load-time validation.
var (
	ErrUnknownItem  = errors.New("unknown item")
	ErrUnknownEnemy = errors.New("unknown enemy")
)

// Catalog is the sealed set of content definitions.
type Catalog struct {
	items   map[string]ItemDef
	enemies map[string]EnemyDef
	rooms   map[RoomType]RoomTemplate
	npcs    map[string]NPCDef
	scaling ScalingParams
}

// New builds a catalog from the built-in definitions only.
func New() *Catalog {
	c := &Catalog{
		items:   make(map[string]ItemDef, len(builtinItems)),
		enemies: make(map[string]EnemyDef, len(builtinEnemies)),
		rooms:   make(map[RoomType]RoomTemplate, len(builtinRoomTemplates)),
		npcs:    make(map[string]NPCDef, len(builtinNPCs)),
		scaling: DefaultScaling,
	}
	for _, def := range builtinItems {
		c.items[def.ID] = def
	}
	for _, def := range builtinEnemies {
		c.enemies[def.ID] = def
	}
	for _, tmpl := range builtinRoomTemplates {
		c.rooms[tmpl.Type] = tmpl
	}
	for _, def := range builtinNPCs {
		c.npcs[def.ID] = def
	}
	return c
}

// Load builds a catalog from the built-ins plus the JSON definition files in
// dir (empty dir means built-ins only), then validates every cross-reference.
// Loaded definitions replace built-ins with the same id and add new ids.
func Load(dir string) (*Catalog, error) {
	c := New()
	if dir != "" {
		if err := c.overlayDir(dir); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Item returns the item definition for id.
func (c *Catalog) Item(id string) (ItemDef, bool) {
	def, ok := c.items[id]
	return def, ok
}

// ItemByName finds an item by display name, case-insensitively.
func (c *Catalog) ItemByName(name string) (ItemDef, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, id := range sortedKeys(c.items) {
		if strings.ToLower(c.items[id].Name) == name {
			return c.items[id], true
		}
	}
	return ItemDef{}, false
}

// ItemsByCategory returns the items of one category, sorted by id so that
// consumers drawing from the list stay deterministic.
func (c *Catalog) ItemsByCategory(cat Category) []ItemDef {
	var out []ItemDef
	for _, id := range sortedKeys(c.items) {
		if c.items[id].Category == cat {
			out = append(out, c.items[id])
		}
	}
	return out
}

// Enemy returns the enemy definition for id.
func (c *Catalog) Enemy(id string) (EnemyDef, bool) {
	def, ok := c.enemies[id]
	return def, ok
}

// EnemyByName finds an enemy by display name, case-insensitively.
func (c *Catalog) EnemyByName(name string) (EnemyDef, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, id := range sortedKeys(c.enemies) {
		if strings.ToLower(c.enemies[id].Name) == name {
			return c.enemies[id], true
		}
	}
	return EnemyDef{}, false
}

// EnemiesByTier returns the enemies of one tier, sorted by id.
func (c *Catalog) EnemiesByTier(tier Tier) []EnemyDef {
	var out []EnemyDef
	for _, id := range sortedKeys(c.enemies) {
		if c.enemies[id].Tier == tier {
			out = append(out, c.enemies[id])
		}
	}
	return out
}

// Template returns the room template for a room type.
func (c *Catalog) Template(rt RoomType) (RoomTemplate, bool) {
	tmpl, ok := c.rooms[rt]
	return tmpl, ok
}

// SpawnableRoomTypes returns the room types with a positive spawn weight, in
// fixed order.
func (c *Catalog) SpawnableRoomTypes() []RoomType {
	var out []RoomType
	for _, rt := range AllRoomTypes {
		if tmpl, ok := c.rooms[rt]; ok && tmpl.Weight > 0 {
			out = append(out, rt)
		}
	}
	return out
}

// NPC returns the NPC definition for id.
func (c *Catalog) NPC(id string) (NPCDef, bool) {
	def, ok := c.npcs[id]
	return def, ok
}

// NPCs returns every NPC definition, sorted by id.
func (c *Catalog) NPCs() []NPCDef {
	out := make([]NPCDef, 0, len(c.npcs))
	for _, id := range sortedKeys(c.npcs) {
		out = append(out, c.npcs[id])
	}
	return out
}

// Scaling returns the per-floor enemy stat scaling parameters.
func (c *Catalog) Scaling() ScalingParams {
	return c.scaling
}

// validate checks every cross-reference in the sealed definitions. Dangling
// ids fail here, at load, rather than mid-session.
func (c *Catalog) validate() error {
	for _, id := range sortedKeys(c.enemies) {
		def := c.enemies[id]
		for _, drop := range def.Loot {
			if _, ok := c.items[drop.ItemID]; !ok {
				return fmt.Errorf("enemy %q loot references %q: %w", id, drop.ItemID, ErrUnknownItem)
			}
			if drop.Chance < 0 || drop.Chance > 1 {
				return fmt.Errorf("enemy %q loot %q: chance %v outside [0,1]", id, drop.ItemID, drop.Chance)
			}
		}
	}
	for _, rt := range AllRoomTypes {
		tmpl, ok := c.rooms[rt]
		if !ok {
			return fmt.Errorf("no room template for type %q", rt)
		}
		if tmpl.MinSize < 2 || tmpl.MaxSize > 8 || tmpl.MinSize > tmpl.MaxSize {
			return fmt.Errorf("room template %q: size bounds %d..%d outside 2..8", rt, tmpl.MinSize, tmpl.MaxSize)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
