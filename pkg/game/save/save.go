// Package save persists a session as seed plus history: the generation
// options, the player, where they stand, the score, and the dungeon's
// mutation log. Loading regenerates the dungeon from the seed and replays
// the log, so a save file stays small no matter how large the world is.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/dungeon"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
)

// FormatVersion is bumped whenever the envelope layout changes shape.
const FormatVersion = 1

// ErrVersion rejects a save written by an incompatible build.
var ErrVersion = errors.New("save format version mismatch")

// envelope is the on-disk layout.
type envelope struct {
	Meta      metadata                 `json:"metadata"`
	Options   generator.Options        `json:"options"`
	Player    playerRecord             `json:"player"`
	Position  position                 `json:"position"`
	Score     state.Score              `json:"score"`
	Mutations []dungeon.MutationRecord `json:"mutations"`
	Hints     []string                 `json:"hints,omitempty"`
}

type metadata struct {
	Version   int       `json:"version"`
	SessionID string    `json:"session_id"`
	SavedAt   time.Time `json:"saved_at"`
	Seed      int64     `json:"seed"`
	Floors    int       `json:"floors"`
}

type position struct {
	Floor int `json:"floor"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// playerRecord is the player with equipment flattened to UIDs. Weapon and
// armor point into the inventory in memory; serializing the pointers would
// store the items twice and load two copies.
type playerRecord struct {
	entities.Player
	WeaponUID string `json:"weapon_uid,omitempty"`
	ArmorUID  string `json:"armor_uid,omitempty"`
}

func recordPlayer(p *entities.Player) playerRecord {
	rec := playerRecord{Player: *p}
	rec.Weapon, rec.Armor = nil, nil
	if p.Weapon != nil {
		rec.WeaponUID = p.Weapon.UID
	}
	if p.Armor != nil {
		rec.ArmorUID = p.Armor.UID
	}
	return rec
}

// restore rebuilds the player and points the equipment slots back at the
// carried instances.
func (r playerRecord) restore() *entities.Player {
	p := r.Player
	p.Weapon, p.Armor = nil, nil
	for _, item := range p.Inventory {
		if r.WeaponUID != "" && item.UID == r.WeaponUID {
			p.Weapon = item
		}
		if r.ArmorUID != "" && item.UID == r.ArmorUID {
			p.Armor = item
		}
	}
	return &p
}

// Save writes the session to path, creating parent directories as needed.
func Save(g *state.Game, path string) error {
	env := envelope{
		Meta: metadata{
			Version:   FormatVersion,
			SessionID: g.SessionID,
			SavedAt:   time.Now().UTC(),
			Seed:      g.Seed,
			Floors:    g.Dungeon.Depth(),
		},
		Options:   g.Options,
		Player:    recordPlayer(g.Player),
		Position:  position{Floor: g.FloorIndex, Row: g.CurrentCell.Row, Col: g.CurrentCell.Col},
		Score:     g.Score,
		Mutations: g.Dungeon.Mutations,
		Hints:     g.Hints,
	}

	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save directory: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load reads a save, regenerates the dungeon from its seed and options,
// replays the mutation log, and puts the player back where they stood. The
// session stream restarts from the seed; encounters and enemy wandering are
// transient and are not part of a save.
func Load(path string, cat *catalog.Catalog) (*state.Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	if env.Meta.Version != FormatVersion {
		return nil, fmt.Errorf("%w: file has version %d, this build reads %d",
			ErrVersion, env.Meta.Version, FormatVersion)
	}

	d, err := generator.BuildDungeon(env.Meta.Seed, env.Options, cat)
	if err != nil {
		return nil, fmt.Errorf("regenerate dungeon: %w", err)
	}
	if err := d.Replay(env.Mutations); err != nil {
		return nil, fmt.Errorf("replay history: %w", err)
	}

	g := &state.Game{
		Seed:      env.Meta.Seed,
		SessionID: env.Meta.SessionID,
		Options:   env.Options,
		Catalog:   cat,
		Dungeon:   d,
		Player:    env.Player.restore(),
		Stream:    rng.SessionStream(env.Meta.Seed),
		Score:     env.Score,
		Hints:     env.Hints,
	}
	pos := world.Position{Row: env.Position.Row, Col: env.Position.Col}
	if err := g.PlaceAt(env.Position.Floor, pos); err != nil {
		return nil, fmt.Errorf("restore position floor %d (%d,%d): %w",
			env.Position.Floor, pos.Row, pos.Col, err)
	}
	return g, nil
}
