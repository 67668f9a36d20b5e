package dungeon

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
)

// Room is one placed room: an ID in placement order, its assigned type, a
// flavor name, and its footprint. The ID doubles as the tie-break key when
// hallway edges have equal weight.
type Room struct {
	ID     int              `json:"id"`
	Type   catalog.RoomType `json:"type"`
	Name   string           `json:"name"`
	Bounds Rect             `json:"bounds"`
}

func (r *Room) Center() world.Position {
	return r.Bounds.Center()
}

func (r *Room) Contains(pos world.Position) bool {
	return r.Bounds.Contains(pos.Row, pos.Col)
}

// Cells returns the room's carved cells in row-major order.
func (r *Room) Cells(grid *world.Grid) []*world.Cell {
	cells := make([]*world.Cell, 0, r.Bounds.Height*r.Bounds.Width)
	for row := r.Bounds.Row; row <= r.Bounds.Bottom(); row++ {
		for col := r.Bounds.Col; col <= r.Bounds.Right(); col++ {
			if cell := grid.CellAt(row, col); cell != nil && cell.Carved {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// Hallway records one carved connection between two rooms. Path holds the
// carved positions in walk order, end cells included.
type Hallway struct {
	From int              `json:"from"`
	To   int              `json:"to"`
	Path []world.Position `json:"path"`
}
