package catalog

import "fmt"

// RoomType tags a room with its role on the floor.
type RoomType string

const (
	RoomStart      RoomType = "start"
	RoomStairsUp   RoomType = "stairs-up"
	RoomStairsDown RoomType = "stairs-down"
	RoomArtifact   RoomType = "artifact"
	RoomTreasure   RoomType = "treasure"
	RoomMonster    RoomType = "monster"
	RoomNPC        RoomType = "npc"
	RoomTrap       RoomType = "trap"
	RoomGeneric    RoomType = "generic"
)

// AllRoomTypes lists every room type in fixed order, for deterministic
// iteration over templates.
var AllRoomTypes = []RoomType{
	RoomStart, RoomStairsUp, RoomStairsDown, RoomArtifact,
	RoomTreasure, RoomMonster, RoomNPC, RoomTrap, RoomGeneric,
}

// RoomTemplate describes how rooms of one type are generated: dimension
// bounds (each side drawn independently from MinSize..MaxSize), the spawn
// weight for thematic assignment (zero for mandatory-only types), and flavor
// names for descriptions.
type RoomTemplate struct {
	Type    RoomType `json:"type"`
	MinSize int      `json:"min_size"`
	MaxSize int      `json:"max_size"`
	Weight  int      `json:"weight"`
	Flavor  []string `json:"flavor,omitempty"`
}

// mustTemplate validates a built-in room template at init time.
func mustTemplate(tmpl RoomTemplate) RoomTemplate {
	if tmpl.Type == "" {
		panic("catalog: room template missing type")
	}
	if tmpl.MinSize < 2 || tmpl.MaxSize > 8 || tmpl.MinSize > tmpl.MaxSize {
		panic(fmt.Sprintf("catalog: room template %q size bounds %d..%d outside 2..8", tmpl.Type, tmpl.MinSize, tmpl.MaxSize))
	}
	return tmpl
}

var builtinRoomTemplates = []RoomTemplate{
	mustTemplate(RoomTemplate{Type: RoomStart, MinSize: 4, MaxSize: 6,
		Flavor: []string{"Entrance Hall", "Broken Gatehouse"}}),
	mustTemplate(RoomTemplate{Type: RoomStairsUp, MinSize: 3, MaxSize: 4,
		Flavor: []string{"Upper Landing", "Winding Stairwell"}}),
	mustTemplate(RoomTemplate{Type: RoomStairsDown, MinSize: 3, MaxSize: 4,
		Flavor: []string{"Lower Landing", "Sunken Stairwell"}}),
	mustTemplate(RoomTemplate{Type: RoomArtifact, MinSize: 5, MaxSize: 7,
		Flavor: []string{"Inner Sanctum", "Vault of the Old Kings"}}),
	mustTemplate(RoomTemplate{Type: RoomTreasure, MinSize: 2, MaxSize: 4, Weight: 3,
		Flavor: []string{"Looted Vault", "Forgotten Storeroom", "Collapsed Treasury"}}),
	mustTemplate(RoomTemplate{Type: RoomMonster, MinSize: 3, MaxSize: 5, Weight: 4,
		Flavor: []string{"Bone-Strewn Den", "Ruined Barracks", "Feeding Ground"}}),
	mustTemplate(RoomTemplate{Type: RoomNPC, MinSize: 2, MaxSize: 4, Weight: 1,
		Flavor: []string{"Hermit's Corner", "Abandoned Shrine"}}),
	mustTemplate(RoomTemplate{Type: RoomTrap, MinSize: 2, MaxSize: 4, Weight: 2,
		Flavor: []string{"Crumbling Gallery", "Spiked Antechamber"}}),
	mustTemplate(RoomTemplate{Type: RoomGeneric, MinSize: 2, MaxSize: 6, Weight: 5,
		Flavor: []string{"Dusty Chamber", "Cold Cellar", "Fallen Library", "Empty Mess Hall"}}),
}
