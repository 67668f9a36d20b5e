package world

// Grid is a rectangular field of cells with encapsulated storage.
// It creates every cell up front but no links; callers carve floor and
// establish links as they generate the map.
type Grid struct {
	cells map[int]map[int]*Cell
	rows  int
	cols  int
}

// NewGrid creates a grid of unlinked cells with the given dimensions.
// Panics on non-positive dimensions: grid size is a construction-time
// parameter, not runtime input.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("world: grid dimensions must be positive")
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make(map[int]map[int]*Cell, rows),
	}
	for row := 0; row < rows; row++ {
		g.cells[row] = make(map[int]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col)
		}
	}
	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether the position lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// InPlayableArea reports whether the position lies inside the one-cell
// perimeter wall that frames every map.
func (g *Grid) InPlayableArea(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// CellAt returns the cell at the given position, or nil when out of bounds.
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.InBounds(row, col) || g.cells == nil {
		return nil
	}
	return g.cells[row][col]
}

// At returns the cell for a Position, or nil when out of bounds.
func (g *Grid) At(pos Position) *Cell {
	return g.CellAt(pos.Row, pos.Col)
}

// CellRelative returns the grid neighbor of c one step in dir, regardless of
// links. Generation uses this; gameplay must traverse links instead.
func (g *Grid) CellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowDelta, colDelta := dir.Delta()
	return g.CellAt(c.Row+rowDelta, c.Col+colDelta)
}

// Link establishes a bidirectional traversal link between two cells that are
// grid-adjacent. Returns false (and links nothing) otherwise.
func (g *Grid) Link(a, b *Cell) bool {
	if a == nil || b == nil {
		return false
	}
	for _, dir := range AllDirections() {
		if g.CellRelative(a, dir) == b {
			a.setNeighbor(dir, b)
			b.setNeighbor(dir.Opposite(), a)
			return true
		}
	}
	return false
}

// ForEachCell visits every cell in row-major order.
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if cell := g.cells[row][col]; cell != nil {
				fn(row, col, cell)
			}
		}
	}
}

// Validate checks structural soundness and returns a description of the
// first problem found, or an empty string when the grid is valid. Links must
// be symmetric, joined cells must be grid-adjacent, and only carved cells may
// carry links.
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "grid has invalid dimensions"
	}

	problem := ""
	g.ForEachCell(func(row, col int, cell *Cell) {
		if problem != "" {
			return
		}
		for _, dir := range AllDirections() {
			n := cell.Neighbor(dir)
			if n == nil {
				continue
			}
			if !cell.Carved || !n.Carved {
				problem = "link attached to uncarved cell"
				return
			}
			if g.CellRelative(cell, dir) != n {
				problem = "link joins non-adjacent cells"
				return
			}
			if n.Neighbor(dir.Opposite()) != cell {
				problem = "asymmetric link"
				return
			}
		}
	})
	return problem
}
