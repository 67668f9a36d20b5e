// Package state holds one play session: the dungeon, the player, the
// session stream, the message log, and the flags the outer loop reads to
// decide what happens next frame.
package state

import (
	"math/rand"

	"github.com/google/uuid"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/combat"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/generator"
)

// Score tallies what a run achieved. It rides along in saves so a restored
// session keeps its numbers.
type Score struct {
	EnemiesDefeated  int `json:"enemies_defeated"`
	ItemsCollected   int `json:"items_collected"`
	HazardsTriggered int `json:"hazards_triggered"`
	DeepestFloor     int `json:"deepest_floor"`
	TurnsTaken       int `json:"turns_taken"`
}

// Game is the whole session. Stream is the session stream: every gameplay
// roll (initiative ties, flee attempts, hazard triggers, loot) draws from it
// in action order, which is what keeps replays honest.
type Game struct {
	Seed      int64
	SessionID string
	Options   generator.Options

	Catalog *catalog.Catalog
	Dungeon *dungeon.Dungeon
	Player  *entities.Player
	Stream  *rand.Rand

	FloorIndex  int
	CurrentCell *world.Cell
	Encounter   *combat.Encounter

	Score    Score
	Messages []string
	Hints    []string

	// Flags for the outer loop. Save and load are requested here and
	// serviced between frames, where the whole session is quiescent.
	GameComplete  bool
	GameOver      bool
	QuitRequested bool
	SaveRequested bool
	LoadRequested bool
}

// NewGame generates a fresh dungeon from the seed and drops the player on
// the first floor's entry tile.
func NewGame(name string, seed int64, opts generator.Options, cat *catalog.Catalog) (*Game, error) {
	d, err := generator.BuildDungeon(seed, opts, cat)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Seed:      seed,
		SessionID: uuid.NewString(),
		Options:   opts,
		Catalog:   cat,
		Dungeon:   d,
		Player:    entities.NewPlayer(name),
		Stream:    rng.SessionStream(seed),
	}
	if err := g.EnterFloor(0); err != nil {
		return nil, err
	}
	return g, nil
}

// CurrentFloor is the floor the player stands on.
func (g *Game) CurrentFloor() *dungeon.Floor {
	return g.Dungeon.Floor(g.FloorIndex)
}

// InCombat reports whether an encounter is live and awaiting player action.
func (g *Game) InCombat() bool {
	return g.Encounter != nil && !g.Encounter.Resolved()
}

// EnterFloor moves the player to a floor's entry tile and reveals around
// it. Used on new game, on descent, and when a save restores position.
func (g *Game) EnterFloor(index int) error {
	floor := g.Dungeon.Floor(index)
	if floor == nil {
		return dungeon.ErrNoSuchFloor
	}
	g.FloorIndex = index
	g.CurrentCell = floor.EntryCell()
	g.recordDepth(index)
	world.Reveal(floor.Grid, g.CurrentCell, world.RevealRadius)
	return nil
}

// PlaceAt puts the player on a specific cell of a floor, for ascents and
// restored saves where the entry tile is the wrong spot.
func (g *Game) PlaceAt(index int, pos world.Position) error {
	floor := g.Dungeon.Floor(index)
	if floor == nil {
		return dungeon.ErrNoSuchFloor
	}
	cell := floor.CellAt(pos)
	if cell == nil || !cell.Carved {
		return dungeon.ErrNoSuchFloor
	}
	g.FloorIndex = index
	g.CurrentCell = cell
	g.recordDepth(index)
	world.Reveal(floor.Grid, cell, world.RevealRadius)
	return nil
}

func (g *Game) recordDepth(index int) {
	if index+1 > g.Score.DeepestFloor {
		g.Score.DeepestFloor = index + 1
	}
}

// AddMessage appends to the message log, keeping only the most recent few
// for the messages pane.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// AddMessages appends a batch in order, typically a combat round's worth.
func (g *Game) AddMessages(msgs []string) {
	for _, m := range msgs {
		g.AddMessage(m)
	}
}

// ClearMessages empties the log.
func (g *Game) ClearMessages() {
	g.Messages = nil
}

// AddHint records a hint the player has earned, most recent last.
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// LastHint returns the most recently earned hint, or "".
func (g *Game) LastHint() string {
	if len(g.Hints) == 0 {
		return ""
	}
	return g.Hints[len(g.Hints)-1]
}
