package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Definition file names searched in a data directory. Each is optional.
const (
	itemsFile   = "items.json"
	enemiesFile = "enemies.json"
	roomsFile   = "rooms.json"
	npcsFile    = "npcs.json"
)

// enemiesEnvelope is the on-disk shape of enemies.json: optional scaling
// parameters plus the enemy definitions.
type enemiesEnvelope struct {
	Scaling *ScalingParams `json:"scaling,omitempty"`
	Enemies []EnemyDef     `json:"enemies"`
}

// overlayDir merges the definition files in dir over the built-ins. Missing
// files are skipped; present files must parse and carry minimally valid
// definitions.
func (c *Catalog) overlayDir(dir string) error {
	var items []ItemDef
	if ok, err := readDefs(filepath.Join(dir, itemsFile), &items); err != nil {
		return err
	} else if ok {
		for _, def := range items {
			if def.ID == "" || def.Name == "" || !knownCategories[def.Category] {
				return fmt.Errorf("%s: item %q invalid", itemsFile, def.ID)
			}
			c.items[def.ID] = def
		}
	}

	var env enemiesEnvelope
	if ok, err := readDefs(filepath.Join(dir, enemiesFile), &env); err != nil {
		return err
	} else if ok {
		if env.Scaling != nil {
			c.scaling = *env.Scaling
		}
		for _, def := range env.Enemies {
			if def.ID == "" || def.Name == "" || def.Glyph == "" || !knownTiers[def.Tier] {
				return fmt.Errorf("%s: enemy %q invalid", enemiesFile, def.ID)
			}
			if def.Health <= 0 || def.Attack <= 0 {
				return fmt.Errorf("%s: enemy %q needs positive health and attack", enemiesFile, def.ID)
			}
			c.enemies[def.ID] = def
		}
	}

	var rooms []RoomTemplate
	if ok, err := readDefs(filepath.Join(dir, roomsFile), &rooms); err != nil {
		return err
	} else if ok {
		for _, tmpl := range rooms {
			if tmpl.Type == "" {
				return fmt.Errorf("%s: room template missing type", roomsFile)
			}
			c.rooms[tmpl.Type] = tmpl
		}
	}

	var npcs []NPCDef
	if ok, err := readDefs(filepath.Join(dir, npcsFile), &npcs); err != nil {
		return err
	} else if ok {
		for _, def := range npcs {
			if def.ID == "" || def.Name == "" || def.Glyph == "" || len(def.Dialogue) == 0 {
				return fmt.Errorf("%s: npc %q invalid", npcsFile, def.ID)
			}
			c.npcs[def.ID] = def
		}
	}

	return nil
}

// readDefs unmarshals one definition file into target. Returns false without
// error when the file does not exist.
func readDefs(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
