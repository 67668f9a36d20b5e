package dungeon

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
)

// Floor is one generated level: the carved grid, the rooms and hallways
// that shaped it, and the cells that matter for moving between floors.
// Entry is where the player appears on arrival.
type Floor struct {
	Index    int
	Grid     *world.Grid
	Rooms    []*Room
	Hallways []*Hallway

	Entry      world.Position
	StairsUp   *world.Cell
	StairsDown *world.Cell
}

// Room returns the room with the given ID, or nil.
func (f *Floor) Room(id int) *Room {
	for _, room := range f.Rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

// RoomByType returns the first room of the given type in placement order,
// or nil.
func (f *Floor) RoomByType(rt catalog.RoomType) *Room {
	for _, room := range f.Rooms {
		if room.Type == rt {
			return room
		}
	}
	return nil
}

// CellAt returns the cell at a position, or nil out of bounds.
func (f *Floor) CellAt(pos world.Position) *world.Cell {
	return f.Grid.At(pos)
}

// RoomAt returns the room covering a position, or nil for hallways and
// uncarved cells.
func (f *Floor) RoomAt(pos world.Position) *Room {
	return RoomOf(f.Grid.At(pos))
}

// EntryCell is the cell the player appears on when arriving on this floor.
func (f *Floor) EntryCell() *world.Cell {
	return f.Grid.At(f.Entry)
}
