package catalog

import "fmt"

// Tier groups enemies by menace. Shallow floors draw from the common tier,
// mid floors from elite, and the deepest floor mixes in the boss tier.
type Tier string

const (
	TierCommon Tier = "common"
	TierElite  Tier = "elite"
	TierBoss   Tier = "boss"
)

// TierForDepth returns the enemy tier for a floor depth in a dungeon of the
// given total floor count.
func TierForDepth(depth, floors int) Tier {
	if floors > 1 && depth >= floors-1 {
		return TierBoss
	}
	if depth >= floors/2 && floors > 2 {
		return TierElite
	}
	return TierCommon
}

// Drop is one loot table entry: an independent chance for one item.
type Drop struct {
	ItemID string  `json:"item_id"`
	Chance float64 `json:"chance"`
}

// ScalingParams are the per-floor stat increments applied to enemies at
// placement. The defaults apply when loaded definitions omit scaling.
type ScalingParams struct {
	HealthPerFloor  int `json:"health_per_floor"`
	AttackPerFloor  int `json:"attack_per_floor"`
	DefensePerFloor int `json:"defense_per_floor"`
}

// DefaultScaling is the built-in scaling curve.
var DefaultScaling = ScalingParams{HealthPerFloor: 10, AttackPerFloor: 2, DefensePerFloor: 1}

// EnemyDef is one enemy definition. Zero Experience or Gold means "use the
// built-in fallback" (half of maximum health, or a 5–20 gold roll). A nil
// loot table gets a fallback table assigned at placement. Special is the
// status effect the enemy's attacks inflict, if any.
type EnemyDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Tier  Tier   `json:"tier"`

	Health  int `json:"health"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`

	Experience int    `json:"experience,omitempty"`
	Gold       int    `json:"gold,omitempty"`
	Loot       []Drop `json:"loot,omitempty"`

	Special Effect `json:"special,omitempty"`
}

var knownTiers = map[Tier]bool{TierCommon: true, TierElite: true, TierBoss: true}

// mustEnemy validates a built-in enemy definition at init time.
func mustEnemy(def EnemyDef) EnemyDef {
	if def.ID == "" || def.Name == "" || def.Glyph == "" {
		panic(fmt.Sprintf("catalog: enemy %+v missing id, name, or glyph", def))
	}
	if !knownTiers[def.Tier] {
		panic(fmt.Sprintf("catalog: enemy %q has unknown tier %q", def.ID, def.Tier))
	}
	if def.Health <= 0 || def.Attack <= 0 {
		panic(fmt.Sprintf("catalog: enemy %q needs positive health and attack", def.ID))
	}
	return def
}

var builtinEnemies = []EnemyDef{
	// Common tier
	mustEnemy(EnemyDef{ID: "giant-rat", Name: "Giant Rat", Glyph: "r", Tier: TierCommon,
		Health: 20, Attack: 6, Defense: 1, Speed: 12, Experience: 10,
		Loot: []Drop{{ItemID: "minor-potion", Chance: 0.3}}}),
	mustEnemy(EnemyDef{ID: "cave-bat", Name: "Cave Bat", Glyph: "b", Tier: TierCommon,
		Health: 16, Attack: 5, Defense: 0, Speed: 14, Experience: 8,
		Loot: []Drop{{ItemID: "minor-potion", Chance: 0.2}}}),
	mustEnemy(EnemyDef{ID: "goblin", Name: "Goblin", Glyph: "g", Tier: TierCommon,
		Health: 25, Attack: 8, Defense: 2, Speed: 10, Experience: 15, Gold: 12,
		Loot: []Drop{{ItemID: "rusty-sword", Chance: 0.25}, {ItemID: "minor-potion", Chance: 0.4}}}),
	mustEnemy(EnemyDef{ID: "skeleton", Name: "Skeleton", Glyph: "s", Tier: TierCommon,
		Health: 30, Attack: 9, Defense: 3, Speed: 8, Experience: 20,
		Loot: []Drop{{ItemID: "shortsword", Chance: 0.2}, {ItemID: "padded-vest", Chance: 0.2}}}),
	// No rewards and no loot: exercises every fallback path.
	mustEnemy(EnemyDef{ID: "rot-grub", Name: "Rot Grub", Glyph: "w", Tier: TierCommon,
		Health: 12, Attack: 4, Defense: 0, Speed: 6}),

	// Elite tier
	mustEnemy(EnemyDef{ID: "orc-warrior", Name: "Orc Warrior", Glyph: "O", Tier: TierElite,
		Health: 45, Attack: 12, Defense: 4, Speed: 9, Experience: 35, Gold: 25,
		Loot: []Drop{{ItemID: "iron-mace", Chance: 0.3}, {ItemID: "leather-armor", Chance: 0.3}, {ItemID: "healing-potion", Chance: 0.5}}}),
	mustEnemy(EnemyDef{ID: "ghoul", Name: "Ghoul", Glyph: "G", Tier: TierElite,
		Health: 40, Attack: 11, Defense: 3, Speed: 11, Experience: 30,
		Special: Effect{Kind: EffectPoison, Duration: 4},
		Loot:    []Drop{{ItemID: "venom-dagger", Chance: 0.1}, {ItemID: "healing-potion", Chance: 0.4}}}),
	mustEnemy(EnemyDef{ID: "crypt-spider", Name: "Crypt Spider", Glyph: "S", Tier: TierElite,
		Health: 38, Attack: 10, Defense: 2, Speed: 13, Experience: 30,
		Special: Effect{Kind: EffectStun, Duration: 1},
		Loot:    []Drop{{ItemID: "swiftness-philter", Chance: 0.25}}}),
	mustEnemy(EnemyDef{ID: "cursed-knight", Name: "Cursed Knight", Glyph: "K", Tier: TierElite,
		Health: 55, Attack: 13, Defense: 6, Speed: 8, Experience: 45, Gold: 40,
		Special: Effect{Kind: EffectShock, Duration: 3, Magnitude: 2},
		Loot:    []Drop{{ItemID: "chainmail", Chance: 0.25}, {ItemID: "war-axe", Chance: 0.25}}}),

	// Boss tier
	mustEnemy(EnemyDef{ID: "bone-tyrant", Name: "Bone Tyrant", Glyph: "B", Tier: TierBoss,
		Health: 90, Attack: 16, Defense: 8, Speed: 7, Experience: 100, Gold: 80,
		Special: Effect{Kind: EffectStun, Duration: 1},
		Loot:    []Drop{{ItemID: "heavy-maul", Chance: 0.5}, {ItemID: "grand-elixir", Chance: 0.75}}}),
	mustEnemy(EnemyDef{ID: "shadow-wyrm", Name: "Shadow Wyrm", Glyph: "W", Tier: TierBoss,
		Health: 110, Attack: 18, Defense: 6, Speed: 10, Experience: 120, Gold: 100,
		Special: Effect{Kind: EffectBurn, Duration: 3},
		Loot:    []Drop{{ItemID: "flaming-sword", Chance: 0.5}, {ItemID: "plate-armor", Chance: 0.5}}}),
}
