package entities

import "fmt"

type ObstacleKind int

const (
	LockedDoor ObstacleKind = iota
	BlockedPassage
)

// ObstacleInfo is the display and messaging data for an obstacle kind.
type ObstacleInfo struct {
	Name          string
	Icon          string
	BlockedFormat string
	ClearedFormat string
}

var ObstacleKinds = map[ObstacleKind]ObstacleInfo{
	LockedDoor: {
		Name:          "Locked Door",
		Icon:          "▣",
		BlockedFormat: "A locked door bars the way. It needs the %s.",
		ClearedFormat: "The %s turns in the lock and the door swings open.",
	},
	BlockedPassage: {
		Name:          "Blocked Passage",
		Icon:          "▨",
		BlockedFormat: "Rubble chokes the passage. A %s might shift it.",
		ClearedFormat: "You work the %s into the rubble and clear a path.",
	},
}

// Obstacle blocks movement through its cell until cleared with the right
// item. Clearing consumes keys but not tools.
type Obstacle struct {
	Kind         ObstacleKind `json:"kind"`
	UID          string       `json:"uid"`
	RequiredItem string       `json:"required_item"`
	ConsumesItem bool         `json:"consumes_item"`
}

func (o *Obstacle) Info() ObstacleInfo {
	return ObstacleKinds[o.Kind]
}

// BlockedMessage names the item the obstacle wants.
func (o *Obstacle) BlockedMessage(itemName string) string {
	return fmt.Sprintf(o.Info().BlockedFormat, itemName)
}

// ClearedMessage narrates a successful clear with the item used.
func (o *Obstacle) ClearedMessage(itemName string) string {
	return fmt.Sprintf(o.Info().ClearedFormat, itemName)
}
