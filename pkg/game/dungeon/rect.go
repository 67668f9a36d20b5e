// Package dungeon holds the generated world model: floors of rooms and
// hallways carved into a grid, the per-cell contents, and the mutation log
// that makes a run reproducible from its seed.
package dungeon

import "darkdelve/pkg/engine/world"

// Rect is a room footprint in grid coordinates. Row/Col is the top-left
// corner; Height and Width are in cells.
type Rect struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Height int `json:"height"`
	Width  int `json:"width"`
}

func (r Rect) Bottom() int {
	return r.Row + r.Height - 1
}

func (r Rect) Right() int {
	return r.Col + r.Width - 1
}

func (r Rect) Center() world.Position {
	return world.Position{Row: r.Row + r.Height/2, Col: r.Col + r.Width/2}
}

func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row <= r.Bottom() && col >= r.Col && col <= r.Right()
}

// Expand grows the rect by margin cells on every side. Used for spacing
// checks: two rooms honor a minimum spacing when one, expanded by it, still
// misses the other.
func (r Rect) Expand(margin int) Rect {
	return Rect{
		Row:    r.Row - margin,
		Col:    r.Col - margin,
		Height: r.Height + 2*margin,
		Width:  r.Width + 2*margin,
	}
}

func (r Rect) Intersects(other Rect) bool {
	if r.Row > other.Bottom() || other.Row > r.Bottom() {
		return false
	}
	if r.Col > other.Right() || other.Col > r.Right() {
		return false
	}
	return true
}
