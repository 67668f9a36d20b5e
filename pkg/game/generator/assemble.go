package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/placement"
)

// ErrConfiguration marks generation parameters that cannot produce a legal
// dungeon. It is fatal and never retried: the same seed and parameters
// reproduce the same failure, so every wrap names the violated rule.
var ErrConfiguration = errors.New("dungeon configuration cannot be satisfied")

// Options bundles the generation parameters. Zero values are not usable;
// callers populate it from config.
type Options struct {
	Floors             int
	Rows, Cols         int
	MinSpacing         int
	RoomsMin, RoomsMax int
	ExtraHallwayChance float64
}

func (o Options) validate() error {
	switch {
	case o.Floors < 1:
		return fmt.Errorf("%w: %d floors requested, need at least 1", ErrConfiguration, o.Floors)
	case o.Rows < 8 || o.Cols < 8:
		return fmt.Errorf("%w: %dx%d grid too small, need at least 8x8", ErrConfiguration, o.Rows, o.Cols)
	case o.MinSpacing < 0:
		return fmt.Errorf("%w: negative room spacing %d", ErrConfiguration, o.MinSpacing)
	case o.RoomsMin < 2:
		return fmt.Errorf("%w: room minimum %d below the 2 mandatory rooms per floor", ErrConfiguration, o.RoomsMin)
	case o.RoomsMax < o.RoomsMin:
		return fmt.Errorf("%w: room range %d..%d is empty", ErrConfiguration, o.RoomsMin, o.RoomsMax)
	case o.ExtraHallwayChance < 0 || o.ExtraHallwayChance > 1:
		return fmt.Errorf("%w: extra hallway chance %v outside [0,1]", ErrConfiguration, o.ExtraHallwayChance)
	}
	return nil
}

// BuildFloor generates the layout of one floor: rooms, hallways, links.
// Content placement is BuildDungeon's job; this entry point exists for
// layout inspection and tests.
func BuildFloor(seed int64, index int, opts Options, cat *catalog.Catalog) (*dungeon.Floor, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return buildFloor(rng.FloorStream(seed, index), index, opts, cat)
}

func buildFloor(stream *rand.Rand, index int, opts Options, cat *catalog.Catalog) (*dungeon.Floor, error) {
	grid := world.NewGrid(opts.Rows, opts.Cols)

	rooms, err := placeRooms(stream, grid, cat, opts, index)
	if err != nil {
		return nil, err
	}
	carveRooms(grid, rooms)
	hallways := connectRooms(stream, grid, rooms, opts.ExtraHallwayChance)

	floor := &dungeon.Floor{
		Index:    index,
		Grid:     grid,
		Rooms:    rooms,
		Hallways: hallways,
		Entry:    rooms[0].Center(),
	}
	if err := validateConnectivity(floor); err != nil {
		return nil, err
	}
	return floor, nil
}

// BuildDungeon generates and populates every floor from one seed. Each
// floor consumes a single stream through layout and placement in a fixed
// order, which is what makes the whole dungeon a pure function of the
// seed and options.
func BuildDungeon(seed int64, opts Options, cat *catalog.Catalog) (*dungeon.Dungeon, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	d := &dungeon.Dungeon{Seed: seed}
	for index := 0; index < opts.Floors; index++ {
		stream := rng.FloorStream(seed, index)
		floor, err := buildFloor(stream, index, opts, cat)
		if err != nil {
			return nil, err
		}
		placement.Populate(floor, cat, stream, opts.Floors)
		d.Floors = append(d.Floors, floor)
	}
	return d, nil
}

// validateConnectivity confirms every room can be walked to from the entry
// over cell links. A failure here is a carving bug surfaced loudly rather
// than a dungeon the player cannot finish.
func validateConnectivity(f *dungeon.Floor) error {
	distances := dungeon.LinkDistances(f.EntryCell())
	for _, room := range f.Rooms {
		if _, ok := distances[f.Grid.At(room.Center())]; !ok {
			return fmt.Errorf("%w: room %d unreachable from entry", ErrConfiguration, room.ID)
		}
	}
	return nil
}
