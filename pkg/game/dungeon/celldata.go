package dungeon

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/entities"
)

type StairKind int

const (
	StairNone StairKind = iota
	StairUp
	StairDown
)

// CellData is the payload hung off a carved cell: which room it belongs to
// (nil in hallways) and whatever occupies it. A cell holds at most one
// enemy, inhabitant, obstacle or hazard, but any number of items.
type CellData struct {
	Room     *Room
	Items    []*entities.Item
	Enemy    *entities.Enemy
	NPC      *entities.NPC
	Obstacle *entities.Obstacle
	Hazard   *entities.Hazard
	Stairs   StairKind
}

// Data returns the cell's payload, or nil for nil cells and cells that
// never had one. Callers that only read should use this.
func Data(cell *world.Cell) *CellData {
	if cell == nil || cell.GameData == nil {
		return nil
	}
	data, ok := cell.GameData.(*CellData)
	if !ok {
		return nil
	}
	return data
}

// EnsureData returns the cell's payload, creating it on first use.
func EnsureData(cell *world.Cell) *CellData {
	if data := Data(cell); data != nil {
		return data
	}
	data := &CellData{}
	cell.GameData = data
	return data
}

// RoomOf returns the room a cell belongs to, or nil for hallway cells.
func RoomOf(cell *world.Cell) *Room {
	if data := Data(cell); data != nil {
		return data.Room
	}
	return nil
}

// Blocked reports whether an uncleared obstacle occupies the cell.
func Blocked(cell *world.Cell) bool {
	data := Data(cell)
	return data != nil && data.Obstacle != nil
}

// Occupied reports whether an enemy or inhabitant already stands on the
// cell. Placement uses this to keep occupants one per cell.
func Occupied(cell *world.Cell) bool {
	data := Data(cell)
	if data == nil {
		return false
	}
	return data.Enemy != nil || data.NPC != nil
}
