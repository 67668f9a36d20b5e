// Package world provides generic 2D grid primitives for tile-based games.
// Cells are traversable only along explicit directional links; links are
// established by whatever carves the map, never implied by raw adjacency.
package world

// Position identifies a cell by grid coordinates.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is a single tile in the grid.
//
// The North/East/South/West pointers are traversal links, not geometry: a nil
// link means movement that way is impossible even when a grid neighbor exists
// at those coordinates. Carved marks the cell as walkable floor.
type Cell struct {
	Row int
	Col int

	North *Cell
	East  *Cell
	South *Cell
	West  *Cell

	// Carved is true once map generation has turned this cell into floor.
	Carved bool

	// Discovered cells render on the map; Visited cells have been stood on.
	Discovered bool
	Visited    bool

	// GameData holds game-specific cell content. The engine never inspects
	// it; games cast it to their own payload type.
	GameData interface{}
}

// NewCell creates an unlinked, uncarved cell at the given position.
func NewCell(row, col int) *Cell {
	return &Cell{Row: row, Col: col}
}

// Pos returns the cell's grid position.
func (c *Cell) Pos() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// Neighbor returns the linked cell in the given direction, or nil.
func (c *Cell) Neighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

func (c *Cell) setNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// LinkedNeighbors returns the linked cells in N, E, S, W order.
func (c *Cell) LinkedNeighbors() []*Cell {
	var neighbors []*Cell
	for _, dir := range AllDirections() {
		if n := c.Neighbor(dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// LinkedTo reports whether a traversal link exists from c to other.
func (c *Cell) LinkedTo(other *Cell) bool {
	if c == nil || other == nil {
		return false
	}
	return c.North == other || c.East == other || c.South == other || c.West == other
}
