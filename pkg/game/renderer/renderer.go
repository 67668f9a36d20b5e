// Package renderer draws the game to the terminal: the scrolling map
// viewport, the status and inventory bars, the messages pane, and the
// markup system the rest of the game uses to color its messages.
package renderer

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Map icons. Enemies and NPCs draw with their catalog glyphs instead.
const (
	PlayerIcon     = "@"
	IconWall       = "▒"
	IconUnvisited  = "•"
	IconVisited    = "·"
	IconVoid       = " "
	IconStairsDown = "▼"
	IconStairsUp   = "▲"
	IconKey        = "⚷"
	IconItem       = "?"
	IconArtifact   = "✶"
	IconEncounter  = "⚔"
)

var (
	ColorCell        color.Style
	ColorCellText    color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorItem        color.Style
	ColorEnemy       color.Style
	ColorGold        color.Style
	ColorSubtle      color.Style
	ColorPlayer      color.Style
	ColorStairs      color.Style
	ColorHazard      color.Style
	ColorFriendly    color.Style

	regexpStringFunctions *regexp.Regexp
)

// dynamicGet resolves translation keys found in markup at runtime. A
// function variable keeps go vet from flagging the non-constant lookup.
var dynamicGet = gotext.Get

// Init sets up the color styles and the markup matcher. With noColor all
// styling becomes a no-op, for pipes and colorless terminals.
func Init(noColor bool) {
	if noColor {
		color.Disable()
	}

	ColorCell = color.Style{color.FgGray}
	ColorCellText = color.Style{color.FgBlue}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorEnemy = color.Style{color.FgRed}
	ColorGold = color.Style{color.FgYellow, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorStairs = color.Style{color.FgCyan, color.OpBold}
	ColorHazard = color.Style{color.FgRed}
	ColorFriendly = color.Style{color.FgYellow}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:'-]+)}`)
}

// FormatString formats a string, then resolves the markup functions in it:
// GT{} translates, ITEM{}, ENEMY{}, ROOM{} and GOLD{} color their operand,
// ACTION{} highlights a command with its shortcut letter emphasized.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "ENEMY":
			val = ColorEnemy.Sprint(operand)
		case "ROOM":
			val = ColorCell.Sprint(operand)
		case "GOLD":
			val = ColorGold.Sprint(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted, markup-resolved string.
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}

// Clear wipes the terminal between frames.
func Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}
