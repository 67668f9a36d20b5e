package dungeon

import (
	"errors"
	"fmt"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/entities"
)

// ErrReplayMismatch means a recorded mutation names something the
// regenerated dungeon does not contain, which points at a corrupted save
// or one written under a different seed.
var ErrReplayMismatch = errors.New("mutation does not match dungeon")

// ErrNoSuchFloor rejects a floor index or position outside the dungeon.
var ErrNoSuchFloor = errors.New("no such floor")

type MutationKind string

const (
	MutationItemTaken       MutationKind = "item_taken"
	MutationObstacleCleared MutationKind = "obstacle_cleared"
	MutationEnemyKilled     MutationKind = "enemy_killed"
	MutationHazardSpent     MutationKind = "hazard_spent"
)

// MutationRecord is one appended entry in the mutation log. Together with
// the seed it reconstructs the dungeon exactly: regenerate, then replay.
type MutationRecord struct {
	Kind  MutationKind `json:"kind"`
	Floor int          `json:"floor"`
	Row   int          `json:"row"`
	Col   int          `json:"col"`
	ID    string       `json:"id"`
}

// Dungeon is the whole generated world plus everything that has changed in
// it. Layout is a pure function of the seed; the mutation log carries the
// rest.
type Dungeon struct {
	Seed      int64
	Floors    []*Floor
	Mutations []MutationRecord
}

func (d *Dungeon) Depth() int {
	return len(d.Floors)
}

// Floor returns the floor at a zero-based index, or nil.
func (d *Dungeon) Floor(index int) *Floor {
	if index < 0 || index >= len(d.Floors) {
		return nil
	}
	return d.Floors[index]
}

// TileAt returns the cell at a floor position, or nil.
func (d *Dungeon) TileAt(floor int, pos world.Position) *world.Cell {
	f := d.Floor(floor)
	if f == nil {
		return nil
	}
	return f.Grid.At(pos)
}

// AdjacentPositions returns the positions linked to the given one. Links
// are the only adjacency movement ever sees.
func (d *Dungeon) AdjacentPositions(floor int, pos world.Position) []world.Position {
	cell := d.TileAt(floor, pos)
	if cell == nil {
		return nil
	}
	neighbors := cell.LinkedNeighbors()
	positions := make([]world.Position, 0, len(neighbors))
	for _, n := range neighbors {
		positions = append(positions, n.Pos())
	}
	return positions
}

// RoomInfo returns the room covering a floor position, or nil for hallway
// and uncarved cells.
func (d *Dungeon) RoomInfo(floor int, pos world.Position) *Room {
	f := d.Floor(floor)
	if f == nil {
		return nil
	}
	return f.RoomAt(pos)
}

// RemoveItem takes the identified item off the cell at pos and logs the
// mutation. It returns nil when that cell holds no such item, and never
// logs a failed removal, so applying it twice equals applying it once.
func (d *Dungeon) RemoveItem(floor int, pos world.Position, itemID string) *entities.Item {
	data := Data(d.TileAt(floor, pos))
	if data == nil {
		return nil
	}
	for i, item := range data.Items {
		if item.UID != itemID {
			continue
		}
		data.Items = append(data.Items[:i], data.Items[i+1:]...)
		d.record(MutationItemTaken, floor, pos, itemID)
		return item
	}
	return nil
}

// ClearObstacle removes the obstacle on the cell at pos and logs the
// mutation. It returns the cleared obstacle, or nil when the cell has none.
func (d *Dungeon) ClearObstacle(floor int, pos world.Position) *entities.Obstacle {
	data := Data(d.TileAt(floor, pos))
	if data == nil || data.Obstacle == nil {
		return nil
	}
	obstacle := data.Obstacle
	data.Obstacle = nil
	d.record(MutationObstacleCleared, floor, pos, obstacle.UID)
	return obstacle
}

// KillEnemy removes the enemy on the cell at pos and logs the mutation
// against the enemy's home position, which is where a fresh generation
// will have it standing when the log is replayed.
func (d *Dungeon) KillEnemy(floor int, pos world.Position) *entities.Enemy {
	data := Data(d.TileAt(floor, pos))
	if data == nil || data.Enemy == nil {
		return nil
	}
	enemy := data.Enemy
	data.Enemy = nil
	enemy.Cell = nil
	d.record(MutationEnemyKilled, floor, enemy.Home, enemy.UID)
	return enemy
}

// SpendHazard marks the hazard on the cell at pos as sprung and logs the
// mutation. Spent hazards keep their hint but stop triggering.
func (d *Dungeon) SpendHazard(floor int, pos world.Position) *entities.Hazard {
	data := Data(d.TileAt(floor, pos))
	if data == nil || data.Hazard == nil || data.Hazard.Spent {
		return nil
	}
	data.Hazard.Spent = true
	d.record(MutationHazardSpent, floor, pos, data.Hazard.UID)
	return data.Hazard
}

// MoveEnemy relocates a living enemy to a free linked cell. AI movement is
// derived state, recomputed every turn, so it is deliberately not logged.
func (d *Dungeon) MoveEnemy(enemy *entities.Enemy, to *world.Cell) bool {
	if enemy == nil || enemy.Cell == nil || to == nil {
		return false
	}
	if Occupied(to) || Blocked(to) {
		return false
	}
	from := Data(enemy.Cell)
	if from == nil || from.Enemy != enemy {
		return false
	}
	from.Enemy = nil
	EnsureData(to).Enemy = enemy
	enemy.Cell = to
	return true
}

func (d *Dungeon) record(kind MutationKind, floor int, pos world.Position, id string) {
	d.Mutations = append(d.Mutations, MutationRecord{
		Kind:  kind,
		Floor: floor,
		Row:   pos.Row,
		Col:   pos.Col,
		ID:    id,
	})
}

// Replay applies a saved mutation log to a freshly generated dungeon. The
// applied records land in this dungeon's own log, so a later save carries
// them forward. A record that finds nothing to change fails the whole
// replay: the log disagrees with what the seed generates.
func (d *Dungeon) Replay(records []MutationRecord) error {
	for _, rec := range records {
		pos := world.Position{Row: rec.Row, Col: rec.Col}
		var ok bool
		switch rec.Kind {
		case MutationItemTaken:
			ok = d.RemoveItem(rec.Floor, pos, rec.ID) != nil
		case MutationObstacleCleared:
			ok = d.replayClearObstacle(rec.Floor, pos, rec.ID)
		case MutationEnemyKilled:
			ok = d.replayKillEnemy(rec.Floor, pos, rec.ID)
		case MutationHazardSpent:
			ok = d.replaySpendHazard(rec.Floor, pos, rec.ID)
		default:
			return fmt.Errorf("%w: unknown kind %q", ErrReplayMismatch, rec.Kind)
		}
		if !ok {
			return fmt.Errorf("%w: %s %q at floor %d (%d,%d)", ErrReplayMismatch,
				rec.Kind, rec.ID, rec.Floor, rec.Row, rec.Col)
		}
	}
	return nil
}

func (d *Dungeon) replayClearObstacle(floor int, pos world.Position, id string) bool {
	data := Data(d.TileAt(floor, pos))
	if data == nil || data.Obstacle == nil || data.Obstacle.UID != id {
		return false
	}
	return d.ClearObstacle(floor, pos) != nil
}

func (d *Dungeon) replayKillEnemy(floor int, pos world.Position, id string) bool {
	data := Data(d.TileAt(floor, pos))
	if data == nil || data.Enemy == nil || data.Enemy.UID != id {
		return false
	}
	return d.KillEnemy(floor, pos) != nil
}

func (d *Dungeon) replaySpendHazard(floor int, pos world.Position, id string) bool {
	data := Data(d.TileAt(floor, pos))
	if data == nil || data.Hazard == nil || data.Hazard.UID != id {
		return false
	}
	return d.SpendHazard(floor, pos) != nil
}
