package dungeon

import (
	"errors"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/entities"
)

// newTestDungeon builds a single-floor dungeon with a three-cell room in a
// row, one item, one enemy, one obstacle and one hazard. Construction is
// deterministic so two calls produce interchangeable dungeons.
func newTestDungeon(t *testing.T) *Dungeon {
	t.Helper()
	cat := catalog.New()

	grid := world.NewGrid(5, 5)
	var cells []*world.Cell
	for col := 1; col <= 3; col++ {
		cell := grid.CellAt(1, col)
		cell.Carved = true
		cells = append(cells, cell)
	}
	grid.Link(cells[0], cells[1])
	grid.Link(cells[1], cells[2])

	room := &Room{ID: 0, Type: catalog.RoomGeneric, Name: "Dusty Hall", Bounds: Rect{Row: 1, Col: 1, Height: 1, Width: 3}}
	for _, cell := range cells {
		EnsureData(cell).Room = room
	}

	potionDef, ok := cat.Item("healing-potion")
	if !ok {
		t.Fatal("catalog has no healing-potion")
	}
	goblinDef, ok := cat.Enemy("goblin")
	if !ok {
		t.Fatal("catalog has no goblin")
	}

	EnsureData(cells[0]).Items = []*entities.Item{entities.NewItem("healing-potion#0-1", potionDef)}

	goblin := entities.NewEnemy("goblin#0-1", goblinDef, 0, cat.Scaling())
	goblin.Home = cells[1].Pos()
	goblin.Cell = cells[1]
	EnsureData(cells[1]).Enemy = goblin

	EnsureData(cells[2]).Obstacle = &entities.Obstacle{Kind: entities.LockedDoor, UID: "locked-door#0-1", RequiredItem: "iron-key", ConsumesItem: true}
	EnsureData(cells[2]).Hazard = entities.NewHazard(entities.Tripwire, "tripwire#0-1")

	floor := &Floor{
		Index: 0,
		Grid:  grid,
		Rooms: []*Room{room},
		Entry: world.Position{Row: 1, Col: 1},
	}
	return &Dungeon{Seed: 1, Floors: []*Floor{floor}}
}

func TestRect_IntersectsWithSpacing(t *testing.T) {
	a := Rect{Row: 0, Col: 0, Height: 3, Width: 3}
	b := Rect{Row: 0, Col: 4, Height: 3, Width: 3}

	if a.Intersects(b) {
		t.Error("rects a column apart should not intersect")
	}
	if !a.Expand(1).Intersects(b) {
		t.Error("a single-cell gap must fail a spacing-1 check")
	}

	c := Rect{Row: 0, Col: 5, Height: 3, Width: 3}
	if a.Expand(1).Intersects(c) {
		t.Error("a two-cell gap must pass a spacing-1 check")
	}
}

func TestCellData_EnsureCreatesOnce(t *testing.T) {
	grid := world.NewGrid(3, 3)
	cell := grid.CellAt(1, 1)

	if Data(cell) != nil {
		t.Fatal("fresh cell should have no payload")
	}
	first := EnsureData(cell)
	second := EnsureData(cell)
	if first != second {
		t.Error("EnsureData should reuse the existing payload")
	}
}

func TestDungeon_RemoveItemRemovesAndLogs(t *testing.T) {
	d := newTestDungeon(t)
	pos := world.Position{Row: 1, Col: 1}

	item := d.RemoveItem(0, pos, "healing-potion#0-1")
	if item == nil || item.Def.ID != "healing-potion" {
		t.Fatalf("expected the potion, got %v", item)
	}

	if len(Data(d.TileAt(0, pos)).Items) != 0 {
		t.Error("item should be gone from the cell")
	}
	if len(d.Mutations) != 1 || d.Mutations[0].Kind != MutationItemTaken {
		t.Errorf("expected one item_taken record, got %v", d.Mutations)
	}
	if d.Mutations[0].Row != 1 || d.Mutations[0].Col != 1 {
		t.Errorf("record should carry the cell position, got %+v", d.Mutations[0])
	}

	if again := d.RemoveItem(0, pos, "healing-potion#0-1"); again != nil {
		t.Error("removing the same item twice should return nil")
	}
	if len(d.Mutations) != 1 {
		t.Error("a failed removal must not append to the log")
	}
}

func TestDungeon_OccupantMutations(t *testing.T) {
	d := newTestDungeon(t)
	enemyPos := world.Position{Row: 1, Col: 2}
	obstaclePos := world.Position{Row: 1, Col: 3}

	if enemy := d.KillEnemy(0, enemyPos); enemy == nil {
		t.Fatal("expected the goblin to die")
	}
	if Data(d.TileAt(0, enemyPos)).Enemy != nil {
		t.Error("enemy should be gone from the cell")
	}

	if obstacle := d.ClearObstacle(0, obstaclePos); obstacle == nil {
		t.Fatal("expected the door to clear")
	}
	if Blocked(d.TileAt(0, obstaclePos)) {
		t.Error("cell should no longer be blocked")
	}

	if hazard := d.SpendHazard(0, obstaclePos); hazard == nil {
		t.Fatal("expected the tripwire to spend")
	}
	if Data(d.TileAt(0, obstaclePos)).Hazard.Armed() {
		t.Error("spent hazard must not stay armed")
	}
	if d.SpendHazard(0, obstaclePos) != nil {
		t.Error("a hazard spends only once")
	}

	if len(d.Mutations) != 3 {
		t.Errorf("expected three records, got %d", len(d.Mutations))
	}
}

func TestDungeon_KillLoggedAtHomePosition(t *testing.T) {
	d := newTestDungeon(t)
	floor := d.Floor(0)
	enemyCell := floor.CellAt(world.Position{Row: 1, Col: 2})
	wanderTo := floor.CellAt(world.Position{Row: 1, Col: 1})

	// Clear the item so the destination is free, then let the enemy wander.
	d.RemoveItem(0, wanderTo.Pos(), "healing-potion#0-1")
	enemy := Data(enemyCell).Enemy
	if !d.MoveEnemy(enemy, wanderTo) {
		t.Fatal("expected the enemy to move")
	}

	if d.KillEnemy(0, wanderTo.Pos()) == nil {
		t.Fatal("expected to kill the enemy where it stands")
	}

	rec := d.Mutations[len(d.Mutations)-1]
	if rec.Row != enemy.Home.Row || rec.Col != enemy.Home.Col {
		t.Errorf("kill should be logged at the home position %v, got (%d,%d)", enemy.Home, rec.Row, rec.Col)
	}
}

func TestDungeon_MoveEnemyRefusesOccupiedAndBlocked(t *testing.T) {
	d := newTestDungeon(t)
	floor := d.Floor(0)
	enemy := Data(floor.CellAt(world.Position{Row: 1, Col: 2})).Enemy

	blocked := floor.CellAt(world.Position{Row: 1, Col: 3})
	if d.MoveEnemy(enemy, blocked) {
		t.Error("enemies must not step onto obstacle cells")
	}
	if enemy.Cell.Pos() != (world.Position{Row: 1, Col: 2}) {
		t.Error("a refused move must leave the enemy in place")
	}
}

func TestDungeon_ReplayReproducesMutations(t *testing.T) {
	original := newTestDungeon(t)
	original.RemoveItem(0, world.Position{Row: 1, Col: 1}, "healing-potion#0-1")
	original.KillEnemy(0, world.Position{Row: 1, Col: 2})

	restored := newTestDungeon(t)
	if err := restored.Replay(original.Mutations); err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	itemCell := restored.TileAt(0, world.Position{Row: 1, Col: 1})
	enemyCell := restored.TileAt(0, world.Position{Row: 1, Col: 2})
	if len(Data(itemCell).Items) != 0 || Data(enemyCell).Enemy != nil {
		t.Error("replay should reproduce the taken item and dead enemy")
	}
	if len(restored.Mutations) != 2 {
		t.Errorf("replayed records must land in the new log, got %d", len(restored.Mutations))
	}
}

func TestDungeon_ReplayRejectsUnknownTarget(t *testing.T) {
	d := newTestDungeon(t)

	err := d.Replay([]MutationRecord{{Kind: MutationEnemyKilled, Floor: 0, Row: 1, Col: 2, ID: "dragon#9-9"}})
	if !errors.Is(err, ErrReplayMismatch) {
		t.Errorf("expected ErrReplayMismatch, got %v", err)
	}
}

func TestLinkDistances_FollowsLinksOnly(t *testing.T) {
	grid := world.NewGrid(4, 4)
	a := grid.CellAt(1, 1)
	b := grid.CellAt(1, 2)
	c := grid.CellAt(2, 1)
	for _, cell := range []*world.Cell{a, b, c} {
		cell.Carved = true
	}
	grid.Link(a, b)
	// c is adjacent to a but never linked.

	distances := LinkDistances(a)
	if distances[b] != 1 {
		t.Errorf("expected linked neighbor at distance 1, got %d", distances[b])
	}
	if _, ok := distances[c]; ok {
		t.Error("adjacency without a link must not be walkable")
	}
	if LinkDistance(a, c) != -1 {
		t.Error("expected -1 for an unreachable cell")
	}
}

func TestReachableAvoiding_BlocksCells(t *testing.T) {
	grid := world.NewGrid(3, 5)
	var cells []*world.Cell
	for col := 0; col < 5; col++ {
		cell := grid.CellAt(1, col)
		cell.Carved = true
		cells = append(cells, cell)
		if col > 0 {
			grid.Link(cells[col-1], cell)
		}
	}

	blocked := mapset.New[*world.Cell]()
	blocked.Put(cells[2])

	reachable := ReachableAvoiding(cells[0], &blocked)
	if !reachable.Has(cells[1]) {
		t.Error("cell before the block should be reachable")
	}
	if reachable.Has(cells[3]) || reachable.Has(cells[4]) {
		t.Error("cells past the block should be cut off")
	}
}
