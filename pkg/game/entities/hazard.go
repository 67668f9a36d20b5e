package entities

type HazardKind int

const (
	Tripwire HazardKind = iota
	GasPocket
	IcePatch
	LooseFlagstone
	ColdDraft
	WhisperingDark
)

// HazardInfo describes a hazard kind: how it reads in a room description,
// what it says when sprung, and how hard it bites. A zero TriggerChance
// marks pure atmosphere.
type HazardInfo struct {
	Name           string
	Hint           string
	TriggerMessage string
	TriggerChance  float64
	DamageMin      int
	DamageMax      int
	OneShot        bool
}

// HazardKinds maps hazard kinds to their display and trigger information.
var HazardKinds = map[HazardKind]HazardInfo{
	Tripwire: {
		Name:           "Tripwire",
		Hint:           "A thin wire glints near the floor.",
		TriggerMessage: "Your boot catches a tripwire and a dart snaps out of the wall!",
		TriggerChance:  0.8,
		DamageMin:      5,
		DamageMax:      15,
		OneShot:        true,
	},
	GasPocket: {
		Name:           "Gas Pocket",
		Hint:           "The air here smells faintly of rotten eggs.",
		TriggerMessage: "You disturb a pocket of foul gas and double over coughing!",
		TriggerChance:  0.6,
		DamageMin:      3,
		DamageMax:      8,
	},
	IcePatch: {
		Name:           "Ice Patch",
		Hint:           "Frost creeps across the flagstones.",
		TriggerMessage: "Your feet shoot out from under you on a patch of ice!",
		TriggerChance:  0.3,
		DamageMin:      1,
		DamageMax:      2,
	},
	LooseFlagstone: {
		Name:           "Loose Flagstone",
		Hint:           "One of the flagstones sits slightly proud of the rest.",
		TriggerMessage: "A flagstone tilts underfoot and you stumble hard!",
		TriggerChance:  0.2,
		DamageMin:      1,
		DamageMax:      3,
		OneShot:        true,
	},
	ColdDraft: {
		Name: "Cold Draft",
		Hint: "A cold draft raises the hair on your arms.",
	},
	WhisperingDark: {
		Name: "Whispering Dark",
		Hint: "You could swear the darkness here is whispering.",
	},
}

// Hazard is a hidden trap seeded into a cell. It never appears on the map;
// the room description carries its hint. A spent one-shot hazard stops
// triggering but keeps its hint.
type Hazard struct {
	Kind  HazardKind `json:"kind"`
	UID   string     `json:"uid"`
	Spent bool       `json:"spent"`
}

func NewHazard(kind HazardKind, uid string) *Hazard {
	return &Hazard{Kind: kind, UID: uid}
}

func (h *Hazard) Info() HazardInfo {
	return HazardKinds[h.Kind]
}

// Armed reports whether the hazard can still trigger.
func (h *Hazard) Armed() bool {
	return !h.Spent && h.Info().TriggerChance > 0
}
