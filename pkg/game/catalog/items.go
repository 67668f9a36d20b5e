package catalog

import "fmt"

// Category classifies an item.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryConsumable Category = "consumable"
	CategoryKey        Category = "key"
	CategoryTrigger    Category = "trigger"
	CategoryArtifact   Category = "artifact"
)

// EffectKind names a status effect an item or enemy attack can inflict.
type EffectKind string

const (
	EffectBurn   EffectKind = "burn"
	EffectPoison EffectKind = "poison"
	EffectChill  EffectKind = "chill"
	EffectShock  EffectKind = "shock"
	EffectStun   EffectKind = "stun"
	EffectRegen  EffectKind = "regen"
)

// Effect describes a status effect: what it is, how many turns it lasts, and
// its magnitude. Magnitude 0 on damage-over-time kinds means "derive from the
// victim's maximum health" (burn: a tenth, poison: a twentieth, regen: a
// twentieth healed).
type Effect struct {
	Kind      EffectKind `json:"kind"`
	Duration  int        `json:"duration"`
	Magnitude int        `json:"magnitude"`
}

// None reports whether the effect slot is empty.
func (e Effect) None() bool {
	return e.Kind == ""
}

// ItemDef is one item definition. Attack/Defense/Speed are equipment bonuses;
// Heal and the Boost fields are consumable payloads; Effect rides on weapons
// (applied to the struck enemy) and on consumables (applied to the drinker,
// e.g. regen). Rarity is the spawn weight in treasure placement — zero keeps
// an item out of random treasure entirely (keys, triggers, the artifact).
type ItemDef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	Attack  int `json:"attack,omitempty"`
	Defense int `json:"defense,omitempty"`
	Speed   int `json:"speed,omitempty"`

	Heal         int `json:"heal,omitempty"`
	BoostAttack  int `json:"boost_attack,omitempty"`
	BoostDefense int `json:"boost_defense,omitempty"`
	BoostSpeed   int `json:"boost_speed,omitempty"`
	BoostTurns   int `json:"boost_turns,omitempty"`

	Effect Effect `json:"effect,omitempty"`

	Value  int `json:"value"`
	Rarity int `json:"rarity"`
}

var knownCategories = map[Category]bool{
	CategoryWeapon:     true,
	CategoryArmor:      true,
	CategoryConsumable: true,
	CategoryKey:        true,
	CategoryTrigger:    true,
	CategoryArtifact:   true,
}

// mustItem validates a built-in item definition at init time.
func mustItem(def ItemDef) ItemDef {
	if def.ID == "" || def.Name == "" {
		panic(fmt.Sprintf("catalog: item %+v missing id or name", def))
	}
	if !knownCategories[def.Category] {
		panic(fmt.Sprintf("catalog: item %q has unknown category %q", def.ID, def.Category))
	}
	if !def.Effect.None() && def.Effect.Duration <= 0 {
		panic(fmt.Sprintf("catalog: item %q effect %q needs a positive duration", def.ID, def.Effect.Kind))
	}
	return def
}

var builtinItems = []ItemDef{
	// Weapons
	mustItem(ItemDef{ID: "rusty-sword", Name: "Rusty Sword", Category: CategoryWeapon, Attack: 3, Value: 5, Rarity: 5}),
	mustItem(ItemDef{ID: "shortsword", Name: "Shortsword", Category: CategoryWeapon, Attack: 5, Value: 12, Rarity: 4}),
	mustItem(ItemDef{ID: "iron-mace", Name: "Iron Mace", Category: CategoryWeapon, Attack: 7, Value: 20, Rarity: 3}),
	mustItem(ItemDef{ID: "war-axe", Name: "War Axe", Category: CategoryWeapon, Attack: 9, Value: 35, Rarity: 2}),
	mustItem(ItemDef{ID: "flaming-sword", Name: "Flaming Sword", Category: CategoryWeapon, Attack: 8, Value: 60, Rarity: 1,
		Effect: Effect{Kind: EffectBurn, Duration: 3}}),
	mustItem(ItemDef{ID: "venom-dagger", Name: "Venom Dagger", Category: CategoryWeapon, Attack: 6, Speed: 2, Value: 55, Rarity: 1,
		Effect: Effect{Kind: EffectPoison, Duration: 4}}),
	mustItem(ItemDef{ID: "frost-blade", Name: "Frost Blade", Category: CategoryWeapon, Attack: 7, Value: 55, Rarity: 1,
		Effect: Effect{Kind: EffectChill, Duration: 3, Magnitude: 2}}),
	mustItem(ItemDef{ID: "storm-spear", Name: "Storm Spear", Category: CategoryWeapon, Attack: 8, Value: 60, Rarity: 1,
		Effect: Effect{Kind: EffectShock, Duration: 3, Magnitude: 2}}),
	mustItem(ItemDef{ID: "heavy-maul", Name: "Heavy Maul", Category: CategoryWeapon, Attack: 10, Speed: -2, Value: 80, Rarity: 1,
		Effect: Effect{Kind: EffectStun, Duration: 1}}),

	// Armor
	mustItem(ItemDef{ID: "padded-vest", Name: "Padded Vest", Category: CategoryArmor, Defense: 2, Value: 8, Rarity: 5}),
	mustItem(ItemDef{ID: "leather-armor", Name: "Leather Armor", Category: CategoryArmor, Defense: 3, Value: 15, Rarity: 4}),
	mustItem(ItemDef{ID: "chainmail", Name: "Chainmail", Category: CategoryArmor, Defense: 5, Value: 30, Rarity: 2}),
	mustItem(ItemDef{ID: "plate-armor", Name: "Plate Armor", Category: CategoryArmor, Defense: 7, Speed: -2, Value: 60, Rarity: 1}),

	// Consumables
	mustItem(ItemDef{ID: "minor-potion", Name: "Minor Potion", Category: CategoryConsumable, Heal: 20, Value: 10, Rarity: 5}),
	mustItem(ItemDef{ID: "healing-potion", Name: "Healing Potion", Category: CategoryConsumable, Heal: 50, Value: 25, Rarity: 3}),
	mustItem(ItemDef{ID: "grand-elixir", Name: "Grand Elixir", Category: CategoryConsumable, Heal: 100, Value: 60, Rarity: 1}),
	mustItem(ItemDef{ID: "troll-blood", Name: "Troll Blood", Category: CategoryConsumable, Value: 40, Rarity: 2,
		Effect: Effect{Kind: EffectRegen, Duration: 5}}),
	mustItem(ItemDef{ID: "strength-tonic", Name: "Strength Tonic", Category: CategoryConsumable, Value: 30, Rarity: 2,
		BoostAttack: 5, BoostTurns: 3}),
	mustItem(ItemDef{ID: "stoneskin-draught", Name: "Stoneskin Draught", Category: CategoryConsumable, Value: 30, Rarity: 2,
		BoostDefense: 5, BoostTurns: 3}),
	mustItem(ItemDef{ID: "swiftness-philter", Name: "Swiftness Philter", Category: CategoryConsumable, Value: 30, Rarity: 2,
		BoostSpeed: 5, BoostTurns: 3}),

	// Keys and triggers are minted for specific obstacles, never random loot.
	mustItem(ItemDef{ID: "iron-key", Name: "Iron Key", Category: CategoryKey}),
	mustItem(ItemDef{ID: "silver-key", Name: "Silver Key", Category: CategoryKey}),
	mustItem(ItemDef{ID: "golden-key", Name: "Golden Key", Category: CategoryKey}),
	mustItem(ItemDef{ID: "mystic-key", Name: "Mystic Key", Category: CategoryKey}),
	mustItem(ItemDef{ID: "crowbar", Name: "Crowbar", Category: CategoryTrigger}),
	mustItem(ItemDef{ID: "pickaxe", Name: "Pickaxe", Category: CategoryTrigger}),
	mustItem(ItemDef{ID: "torch", Name: "Torch", Category: CategoryTrigger}),

	mustItem(ItemDef{ID: "ancient-artifact", Name: "Ancient Artifact", Category: CategoryArtifact, Value: 1000}),
}
