package world

import "strings"

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the cardinal directions in N, E, S, W order.
// Iteration order is fixed so that anything walking neighbors stays
// deterministic.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets one step in this direction.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection matches a direction name or single-letter abbreviation.
// Returns the direction and true on a match.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "east", "e":
		return East, true
	case "south", "s":
		return South, true
	case "west", "w":
		return West, true
	default:
		return North, false
	}
}
