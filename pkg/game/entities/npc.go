package entities

import "darkdelve/pkg/game/catalog"

// NPC is a placed inhabitant. Talking to one cycles through its dialogue
// lines in order and wraps around.
type NPC struct {
	Def  catalog.NPCDef `json:"def"`
	UID  string         `json:"uid"`
	line int
}

func NewNPC(uid string, def catalog.NPCDef) *NPC {
	return &NPC{Def: def, UID: uid}
}

func (n *NPC) Name() string {
	return n.Def.Name
}

// NextLine returns the next dialogue line, wrapping to the start after the
// last one.
func (n *NPC) NextLine() string {
	if len(n.Def.Dialogue) == 0 {
		return n.Def.Name + " has nothing to say."
	}
	line := n.Def.Dialogue[n.line%len(n.Def.Dialogue)]
	n.line++
	return line
}
