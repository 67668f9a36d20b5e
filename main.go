package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/game/catalog"
	"darkdelve/pkg/game/config"
	"darkdelve/pkg/game/devtools"
	"darkdelve/pkg/game/gameplay"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/renderer"
	"darkdelve/pkg/game/save"
	"darkdelve/pkg/game/state"
)

func initGettext() {
	gotext.Configure("po", "en_GB.utf8", "default")
}

// logMessage adds a formatted, markup-resolved message to the game's log.
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatString(msg, a...))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "darkdelve:", err)
	os.Exit(1)
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fatal(err)
	}

	seedFlag := flag.Int64("seed", cfg.Seed, "dungeon seed (0 = draw one from entropy)")
	floorsFlag := flag.Int("floors", cfg.Floors, "how deep the delve goes")
	gridFlag := flag.String("grid", "", "floor grid as ROWSxCOLS (default from environment)")
	dataFlag := flag.String("data", cfg.DataDir, "directory of catalog overrides")
	saveFlag := flag.String("save", cfg.SavePath, "save file path")
	loadFlag := flag.Bool("load", false, "resume from the save file, skipping the title")
	newFlag := flag.Bool("new", false, "start fresh even when a save exists")
	noColorFlag := flag.Bool("no-color", cfg.NoColor, "disable colored output")
	dumpFlag := flag.Bool("dump-map", false, "generate the dungeon, write the full map dump, and exit")
	flag.Parse()

	initGettext()
	renderer.Init(*noColorFlag)

	cat, err := catalog.Load(*dataFlag)
	if err != nil {
		fatal(err)
	}

	opts := cfg.GeneratorOptions()
	opts.Floors = *floorsFlag
	if *gridFlag != "" {
		if _, err := fmt.Sscanf(*gridFlag, "%dx%d", &opts.Rows, &opts.Cols); err != nil {
			fatal(fmt.Errorf("parse -grid %q: want ROWSxCOLS, e.g. 30x30", *gridFlag))
		}
	}

	seed := *seedFlag
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			fatal(err)
		}
	}

	if *dumpFlag {
		g, err := gameplay.NewRun("Surveyor", seed, opts, cat)
		if err != nil {
			fatal(err)
		}
		path, err := devtools.DumpMap(g)
		if err != nil {
			fatal(err)
		}
		fmt.Println(path)
		return
	}

	g, err := bootstrap(cat, seed, opts, *saveFlag, *loadFlag, *newFlag)
	if err != nil {
		fatal(err)
	}

	for !g.QuitRequested {
		renderer.Clear()
		switch {
		case g.GameComplete:
			renderer.RenderVictory(g)
		case g.GameOver:
			renderer.RenderGameOver(g)
		default:
			renderer.RenderFrame(g)
		}

		code, err := input.ReadCommand()
		if err != nil {
			break
		}
		gameplay.ProcessIntent(g, input.Decode(code))

		g = serviceRequests(g, *saveFlag, cat)
	}
	fmt.Println()
}

// bootstrap decides how the session starts: straight load with -load, a
// fresh run with -new, otherwise the title flow, which offers to continue
// when a save file exists.
func bootstrap(cat *catalog.Catalog, seed int64, opts generator.Options, savePath string, loadNow, forceNew bool) (*state.Game, error) {
	if loadNow {
		return resumeRun(savePath, cat)
	}

	_, statErr := os.Stat(savePath)
	haveSave := statErr == nil && !forceNew

	name, resume := title(savePath, haveSave)
	if resume {
		return resumeRun(savePath, cat)
	}
	return gameplay.NewRun(name, seed, opts, cat)
}

func resumeRun(savePath string, cat *catalog.Catalog) (*state.Game, error) {
	g, err := save.Load(savePath, cat)
	if err != nil {
		return nil, err
	}
	gameplay.Resume(g)
	return g, nil
}

// title draws the opening screen. It asks whether to continue when a save
// exists, and names the delver for a fresh run. Piped input falls back to
// the defaults: a new run as "Adventurer".
func title(savePath string, haveSave bool) (name string, resume bool) {
	renderer.Clear()
	fmt.Println()
	renderer.ColorStairs.Println("  D A R K D E L V E")
	fmt.Println(renderer.ColorSubtle.Sprint("  a descent in text"))
	fmt.Println()

	if haveSave {
		renderer.PrintString("  A save waits at ITEM{%s}. Continue? (y/n) ", savePath)
		answer, err := input.ReadLine()
		if err == nil && strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			return "", true
		}
	}

	fmt.Print("  Name your delver: ")
	name, err := input.ReadLine()
	name = strings.TrimSpace(name)
	if err != nil || name == "" {
		name = "Adventurer"
	}
	return name, false
}

// serviceRequests runs any save or load raised during the last action.
// Both happen here, between frames, where the whole session is quiescent.
func serviceRequests(g *state.Game, savePath string, cat *catalog.Catalog) *state.Game {
	if g.SaveRequested {
		g.SaveRequested = false
		if err := save.Save(g, savePath); err != nil {
			logMessage(g, "The quill snaps: %v.", err)
		} else {
			logMessage(g, "Progress etched to ITEM{%s}.", savePath)
		}
	}

	if g.LoadRequested {
		g.LoadRequested = false
		loaded, err := save.Load(savePath, cat)
		if err != nil {
			logMessage(g, "No past to return to: %v.", err)
			return g
		}
		gameplay.Resume(loaded)
		return loaded
	}

	return g
}
