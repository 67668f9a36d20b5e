package world

// RevealRadius is the default sight radius (Chebyshev distance) used when
// revealing the map around a cell.
const RevealRadius = 4

// VisibleFrom returns the cells visible from center within radius. The
// visible area is a Chebyshev diamond filtered by Bresenham line of sight;
// uncarved cells block vision.
func VisibleFrom(grid *Grid, center *Cell, radius int) []*Cell {
	if grid == nil || center == nil {
		return nil
	}

	visible := make(map[*Cell]bool)
	visible[center] = true

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if chebyshev(dr, dc) > radius {
				continue
			}
			cell := grid.CellAt(center.Row+dr, center.Col+dc)
			if cell == nil {
				continue
			}
			if HasLineOfSight(grid, center.Row, center.Col, cell.Row, cell.Col) {
				visible[cell] = true
			}
		}
	}

	result := make([]*Cell, 0, len(visible))
	for cell := range visible {
		result = append(result, cell)
	}
	return result
}

// Reveal marks every cell visible from center as discovered, and carved
// cells among them as visited.
func Reveal(grid *Grid, center *Cell, radius int) {
	for _, cell := range VisibleFrom(grid, center, radius) {
		cell.Discovered = true
		if cell.Carved {
			cell.Visited = true
		}
	}
}

// HasLineOfSight reports whether an unbroken run of carved cells connects
// (r0,c0) to (r1,c1) along a Bresenham line. The endpoints themselves do not
// block.
func HasLineOfSight(grid *Grid, r0, c0, r1, c1 int) bool {
	dr := r1 - r0
	dc := c1 - c0
	if dr == 0 && dc == 0 {
		return true
	}

	absDr := abs(dr)
	absDc := abs(dc)

	var stepR, stepC int
	if dr > 0 {
		stepR = 1
	} else if dr < 0 {
		stepR = -1
	}
	if dc > 0 {
		stepC = 1
	} else if dc < 0 {
		stepC = -1
	}

	r, c := r0, c0
	if absDr >= absDc {
		err := 2*absDc - absDr
		for r != r1 {
			r += stepR
			if err > 0 {
				c += stepC
				err -= 2 * absDr
			}
			err += 2 * absDc

			cell := grid.CellAt(r, c)
			if cell == nil || (!cell.Carved && !(r == r1 && c == c1)) {
				return false
			}
		}
	} else {
		err := 2*absDr - absDc
		for c != c1 {
			c += stepC
			if err > 0 {
				r += stepR
				err -= 2 * absDc
			}
			err += 2 * absDr

			cell := grid.CellAt(r, c)
			if cell == nil || (!cell.Carved && !(r == r1 && c == c1)) {
				return false
			}
		}
	}
	return true
}

func chebyshev(dr, dc int) int {
	a, b := abs(dr), abs(dc)
	if a > b {
		return a
	}
	return b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
