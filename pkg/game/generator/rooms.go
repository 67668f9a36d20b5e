// Package generator turns a seed and floor index into a laid-out floor:
// non-overlapping rooms, a spanning tree of hallways with a few extra
// loops, and the cell links that movement will follow. The same seed and
// parameters always reproduce the same floor.
package generator

import (
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
)

const (
	// roomAttempts bounds the resampling per room before the floor settles
	// for one room fewer. Generation must terminate on a crowded grid.
	roomAttempts = 25

	// maxRoomsPerFloor caps the depth-widened room count.
	maxRoomsPerFloor = 18
)

// drawRoomCount picks the number of rooms to aim for. Deeper floors widen
// the configured range, so the keep grows more sprawling on the way down.
func drawRoomCount(stream *rand.Rand, lo, hi, index int) int {
	lo += index / 2
	hi += index
	if hi > maxRoomsPerFloor {
		hi = maxRoomsPerFloor
	}
	if lo > hi {
		lo = hi
	}
	return rng.Between(stream, lo, hi)
}

// placeRooms samples rooms until the target count is met or the grid runs
// out of space, then assigns the mandatory room types. Every accepted room
// honors the minimum spacing against all earlier ones.
func placeRooms(stream *rand.Rand, grid *world.Grid, cat *catalog.Catalog, opts Options, index int) ([]*dungeon.Room, error) {
	target := drawRoomCount(stream, opts.RoomsMin, opts.RoomsMax, index)

	var rooms []*dungeon.Room
	for len(rooms) < target {
		rt := drawRoomType(stream, cat)
		tmpl, ok := cat.Template(rt)
		if !ok {
			return nil, fmt.Errorf("%w: no template for room type %q", ErrConfiguration, rt)
		}

		bounds, ok := sampleBounds(stream, grid, tmpl, rooms, opts.MinSpacing)
		if !ok {
			// Crowded grid: settle for one room fewer and keep going.
			target--
			continue
		}
		rooms = append(rooms, &dungeon.Room{ID: len(rooms), Type: rt, Bounds: bounds})
	}

	if err := assignMandatoryTypes(rooms, index, opts.Floors); err != nil {
		return nil, err
	}
	return rooms, nil
}

// sampleBounds tries up to roomAttempts placements of a room drawn from the
// template's dimension bounds. Dimensions are redrawn each attempt, so a
// failing large room can still land as a smaller one.
func sampleBounds(stream *rand.Rand, grid *world.Grid, tmpl catalog.RoomTemplate, placed []*dungeon.Room, spacing int) (dungeon.Rect, bool) {
	for attempt := 0; attempt < roomAttempts; attempt++ {
		height := rng.Between(stream, tmpl.MinSize, tmpl.MaxSize)
		width := rng.Between(stream, tmpl.MinSize, tmpl.MaxSize)

		maxRow := grid.Rows() - 1 - height
		maxCol := grid.Cols() - 1 - width
		if maxRow < 1 || maxCol < 1 {
			continue
		}

		bounds := dungeon.Rect{
			Row:    rng.Between(stream, 1, maxRow),
			Col:    rng.Between(stream, 1, maxCol),
			Height: height,
			Width:  width,
		}
		if fitsWithSpacing(bounds, placed, spacing) {
			return bounds, true
		}
	}
	return dungeon.Rect{}, false
}

func fitsWithSpacing(bounds dungeon.Rect, placed []*dungeon.Room, spacing int) bool {
	grown := bounds.Expand(spacing)
	for _, room := range placed {
		if grown.Intersects(room.Bounds) {
			return false
		}
	}
	return true
}

// drawRoomType picks a thematic room type by template spawn weight.
func drawRoomType(stream *rand.Rand, cat *catalog.Catalog) catalog.RoomType {
	types := cat.SpawnableRoomTypes()
	total := 0
	for _, rt := range types {
		if tmpl, ok := cat.Template(rt); ok {
			total += tmpl.Weight
		}
	}
	if total <= 0 {
		return catalog.RoomGeneric
	}

	roll := stream.Intn(total)
	for _, rt := range types {
		tmpl, ok := cat.Template(rt)
		if !ok {
			continue
		}
		roll -= tmpl.Weight
		if roll < 0 {
			return rt
		}
	}
	return types[len(types)-1]
}

// assignMandatoryTypes overwrites the drawn types of the rooms every floor
// cannot do without. The first accepted room is where the player arrives:
// the start room on floor 0, the stairs-up room below. The farthest room
// from it becomes the stairs down, or the artifact room on the last floor.
func assignMandatoryTypes(rooms []*dungeon.Room, index, floors int) error {
	const mandatory = 2
	if len(rooms) < mandatory {
		return fmt.Errorf("%w: %d rooms placed, %d mandatory types required on floor %d",
			ErrConfiguration, len(rooms), mandatory, index)
	}

	entry := rooms[0]
	if index == 0 {
		entry.Type = catalog.RoomStart
	} else {
		entry.Type = catalog.RoomStairsUp
	}

	farthest := farthestFrom(rooms, entry)
	if index == floors-1 {
		farthest.Type = catalog.RoomArtifact
	} else {
		farthest.Type = catalog.RoomStairsDown
	}
	return nil
}

// farthestFrom picks the room at the greatest center distance from the
// reference room, earliest placement winning ties.
func farthestFrom(rooms []*dungeon.Room, from *dungeon.Room) *dungeon.Room {
	var best *dungeon.Room
	bestDist := -1
	for _, room := range rooms {
		if room == from {
			continue
		}
		if d := centerDistanceSq(room, from); d > bestDist {
			best, bestDist = room, d
		}
	}
	return best
}

// centerDistanceSq is the squared Euclidean distance between two room
// centers. Squares keep the comparisons in integers; the ordering matches
// true distance.
func centerDistanceSq(a, b *dungeon.Room) int {
	ca, cb := a.Center(), b.Center()
	dr := ca.Row - cb.Row
	dc := ca.Col - cb.Col
	return dr*dr + dc*dc
}

// carveRooms opens every room's footprint into walkable floor: cells are
// carved, tagged with their room, and linked to their in-room neighbors so
// the interior is one open area.
func carveRooms(grid *world.Grid, rooms []*dungeon.Room) {
	for _, room := range rooms {
		for row := room.Bounds.Row; row <= room.Bounds.Bottom(); row++ {
			for col := room.Bounds.Col; col <= room.Bounds.Right(); col++ {
				cell := grid.CellAt(row, col)
				cell.Carved = true
				dungeon.EnsureData(cell).Room = room
			}
		}
		for row := room.Bounds.Row; row <= room.Bounds.Bottom(); row++ {
			for col := room.Bounds.Col; col <= room.Bounds.Right(); col++ {
				cell := grid.CellAt(row, col)
				if col < room.Bounds.Right() {
					grid.Link(cell, grid.CellAt(row, col+1))
				}
				if row < room.Bounds.Bottom() {
					grid.Link(cell, grid.CellAt(row+1, col))
				}
			}
		}
	}
}
