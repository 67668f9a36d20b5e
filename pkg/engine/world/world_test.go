package world

import "testing"

// carvedGrid returns a grid with every cell carved and linked to its grid
// neighbors, so traversal and vision behave like an open field.
func carvedGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	g.ForEachCell(func(row, col int, cell *Cell) {
		cell.Carved = true
	})
	g.ForEachCell(func(row, col int, cell *Cell) {
		if east := g.CellRelative(cell, East); east != nil {
			g.Link(cell, east)
		}
		if south := g.CellRelative(cell, South); south != nil {
			g.Link(cell, south)
		}
	})
	return g
}

func TestNewGrid_PanicsOnBadDimensions(t *testing.T) {
	cases := []struct {
		rows, cols int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
	}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d, %d) did not panic", tc.rows, tc.cols)
				}
			}()
			NewGrid(tc.rows, tc.cols)
		}()
	}
}

func TestGrid_BoundsAndPlayableArea(t *testing.T) {
	g := NewGrid(6, 8)

	if !g.InBounds(0, 0) || !g.InBounds(5, 7) {
		t.Fatal("corner cells should be in bounds")
	}
	if g.InBounds(-1, 0) || g.InBounds(6, 0) || g.InBounds(0, 8) {
		t.Fatal("out-of-range positions reported in bounds")
	}

	// The playable area excludes the one-cell perimeter wall.
	if g.InPlayableArea(0, 3) || g.InPlayableArea(5, 3) || g.InPlayableArea(3, 0) || g.InPlayableArea(3, 7) {
		t.Fatal("perimeter cells reported playable")
	}
	if !g.InPlayableArea(1, 1) || !g.InPlayableArea(4, 6) {
		t.Fatal("interior cells reported unplayable")
	}

	if g.CellAt(2, 3) == nil {
		t.Fatal("CellAt returned nil for an in-bounds position")
	}
	if g.CellAt(9, 9) != nil {
		t.Fatal("CellAt returned a cell for an out-of-bounds position")
	}
	if got := g.At(Position{Row: 2, Col: 3}); got != g.CellAt(2, 3) {
		t.Fatal("At and CellAt disagree for the same position")
	}
}

func TestLink_JoinsOnlyGridNeighbors(t *testing.T) {
	g := NewGrid(5, 5)
	a := g.CellAt(2, 2)
	east := g.CellAt(2, 3)
	diagonal := g.CellAt(3, 3)
	far := g.CellAt(0, 0)

	if !g.Link(a, east) {
		t.Fatal("Link refused grid-adjacent cells")
	}
	if a.East != east || east.West != a {
		t.Fatal("Link did not join both directions")
	}
	if !a.LinkedTo(east) || !east.LinkedTo(a) {
		t.Fatal("LinkedTo does not see the new link")
	}

	if g.Link(a, diagonal) {
		t.Fatal("Link accepted diagonal cells")
	}
	if g.Link(a, far) {
		t.Fatal("Link accepted distant cells")
	}
	if g.Link(a, nil) {
		t.Fatal("Link accepted a nil cell")
	}
	if a.LinkedTo(diagonal) || a.LinkedTo(far) {
		t.Fatal("refused links left traversal state behind")
	}
}

func TestCellRelative_IgnoresLinks(t *testing.T) {
	g := NewGrid(4, 4)
	c := g.CellAt(1, 1)

	// No links exist, yet the geometric neighbor is still returned.
	if got := g.CellRelative(c, South); got != g.CellAt(2, 1) {
		t.Fatalf("CellRelative south = %v, want cell at 2,1", got)
	}
	if c.Neighbor(South) != nil {
		t.Fatal("Neighbor should be nil without a link")
	}

	edge := g.CellAt(0, 0)
	if g.CellRelative(edge, North) != nil || g.CellRelative(edge, West) != nil {
		t.Fatal("CellRelative walked off the grid")
	}
	if g.CellRelative(nil, North) != nil {
		t.Fatal("CellRelative accepted a nil cell")
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, dir := range AllDirections() {
		if got := dir.Opposite().Opposite(); got != dir {
			t.Errorf("%s: double opposite = %s", dir, got)
		}
		dr, dc := dir.Delta()
		or, oc := dir.Opposite().Delta()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%s: deltas do not cancel with opposite", dir)
		}
	}
	if North.Opposite() != South || East.Opposite() != West {
		t.Fatal("cardinal opposites wrong")
	}
}

func TestParseDirection_NamesAndAbbreviations(t *testing.T) {
	cases := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"north", North, true},
		{"N", North, true},
		{" east ", East, true},
		{"s", South, true},
		{"West", West, true},
		{"up", North, false},
		{"", North, false},
	}
	for _, tc := range cases {
		got, ok := ParseDirection(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestValidate_FlagsBrokenLinks(t *testing.T) {
	if got := carvedGrid(5, 5).Validate(); got != "" {
		t.Fatalf("clean grid reported problem: %q", got)
	}

	uncarved := NewGrid(5, 5)
	uncarved.CellAt(1, 1).East = uncarved.CellAt(1, 2)
	uncarved.CellAt(1, 2).West = uncarved.CellAt(1, 1)
	if uncarved.Validate() == "" {
		t.Fatal("link between uncarved cells passed validation")
	}

	skewed := carvedGrid(5, 5)
	skewed.CellAt(1, 1).East = skewed.CellAt(3, 3)
	if skewed.Validate() == "" {
		t.Fatal("link between non-adjacent cells passed validation")
	}

	oneway := carvedGrid(5, 5)
	oneway.CellAt(2, 2).East = oneway.CellAt(2, 3)
	oneway.CellAt(2, 3).West = nil
	if oneway.Validate() == "" {
		t.Fatal("asymmetric link passed validation")
	}
}

func TestHasLineOfSight_UncarvedCellsBlock(t *testing.T) {
	g := NewGrid(5, 9)
	for col := 1; col <= 7; col++ {
		g.CellAt(2, col).Carved = true
	}

	if !HasLineOfSight(g, 2, 1, 2, 7) {
		t.Fatal("no sight along an open corridor")
	}
	if !HasLineOfSight(g, 2, 3, 2, 3) {
		t.Fatal("a cell cannot see itself")
	}

	// Endpoints never block, so an adjacent wall is still visible.
	if !HasLineOfSight(g, 2, 1, 2, 0) {
		t.Fatal("adjacent uncarved endpoint blocked sight")
	}

	g.CellAt(2, 4).Carved = false
	if HasLineOfSight(g, 2, 1, 2, 7) {
		t.Fatal("sight passed through an uncarved cell")
	}
}

func TestReveal_MarksChebyshevNeighborhood(t *testing.T) {
	g := carvedGrid(9, 9)
	center := g.CellAt(4, 4)

	Reveal(g, center, 2)

	if !center.Discovered || !center.Visited {
		t.Fatal("center cell not revealed")
	}
	near := g.CellAt(3, 6) // Chebyshev distance 2
	if !near.Discovered || !near.Visited {
		t.Fatal("carved cell within radius not revealed")
	}
	beyond := g.CellAt(4, 7) // Chebyshev distance 3
	if beyond.Discovered || beyond.Visited {
		t.Fatal("cell beyond radius was revealed")
	}

	// Walls at the edge of sight are discovered but never visited.
	walled := carvedGrid(9, 9)
	wall := walled.CellAt(4, 6)
	wall.Carved = false
	Reveal(walled, walled.CellAt(4, 4), 2)
	if !wall.Discovered {
		t.Fatal("visible wall not discovered")
	}
	if wall.Visited {
		t.Fatal("uncarved cell marked visited")
	}
}
