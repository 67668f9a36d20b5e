package gameplay

import (
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
)

// NewRun builds a fresh session and greets the player. Generation chatter
// is cleared so the log opens with the welcome.
func NewRun(name string, seed int64, opts generator.Options, cat *catalog.Catalog) (*state.Game, error) {
	g, err := state.NewGame(name, seed, opts, cat)
	if err != nil {
		return nil, err
	}

	g.ClearMessages()
	logMessage(g, "Welcome to the delve, %s.", g.Player.Name)
	logMessage(g, "Seed %d. %d floors wait below.", g.Seed, g.Dungeon.Depth())
	ShowObjectives(g)
	return g, nil
}

// ShowObjectives reminds the player what this floor asks of them.
func ShowObjectives(g *state.Game) {
	if g.CurrentFloor().StairsDown != nil {
		logMessage(g, "Find the ▼ stairway and press deeper. ACTION{help} lists commands.")
		return
	}
	logMessage(g, "The ITEM{Ancient Artifact} rests somewhere on this floor. Claim it.")
}

// Resume reannounces a restored session.
func Resume(g *state.Game) {
	g.ClearMessages()
	logMessage(g, "The torch gutters back to life. Floor %d, as you left it.", g.FloorIndex+1)
	ShowObjectives(g)
}
