package catalog

import "fmt"

// NPCDef is one non-player character: a name, a map glyph, and the dialogue
// lines they cycle through when talked to.
type NPCDef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Glyph    string   `json:"glyph"`
	Dialogue []string `json:"dialogue"`
}

// mustNPC validates a built-in NPC definition at init time.
func mustNPC(def NPCDef) NPCDef {
	if def.ID == "" || def.Name == "" || def.Glyph == "" {
		panic(fmt.Sprintf("catalog: npc %+v missing id, name, or glyph", def))
	}
	if len(def.Dialogue) == 0 {
		panic(fmt.Sprintf("catalog: npc %q has no dialogue", def.ID))
	}
	return def
}

var builtinNPCs = []NPCDef{
	mustNPC(NPCDef{ID: "old-hermit", Name: "Old Hermit", Glyph: "☺",
		Dialogue: []string{
			"Keys turn up closer to the entrance than the doors they open. Always have.",
			"I heard something heavy dragging itself around the lower floors.",
			"Watch where you step. Not every flagstone wants your weight.",
		}}),
	mustNPC(NPCDef{ID: "ghost-scribe", Name: "Ghost Scribe", Glyph: "☺",
		Dialogue: []string{
			"I catalogued the vault once. The crown is still down there, on the deepest floor.",
			"The stairs always survive. Everything else the keep has eaten.",
		}}),
	mustNPC(NPCDef{ID: "lost-miner", Name: "Lost Miner", Glyph: "☺",
		Dialogue: []string{
			"Dropped my pickaxe somewhere. If a rockfall blocks your way, you'll want one.",
			"Five floors I counted, before the lamps gave out.",
		}}),
}
