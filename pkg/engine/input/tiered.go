package input

import "strings"

// Device identifies a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action is a high-level player intent.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// World interaction
	ActionLook
	ActionTake
	ActionUse
	ActionEquip
	ActionTalk
	ActionDescend
	ActionAscend

	// Combat
	ActionAttack
	ActionFlee

	// Information
	ActionInventory
	ActionStatus
	ActionMap
	ActionHint
	ActionHelp

	// Session
	ActionSave
	ActionLoad
	ActionDumpMap
	ActionQuit
)

// Intent is the decoded description of what the player wants to do. Arg
// carries the remainder of a typed command ("take rusty sword" decodes to
// ActionTake with Arg "rusty sword").
type Intent struct {
	Action Action
	Arg    string
}

// RawInput is an event straight off an input device. Code is the
// device-specific identifier ("arrow_up", a typed word, ...).
type RawInput struct {
	Device Device
	Code   string
}

// DebouncedInput is a raw event after deduplication. The terminal reader
// already delivers discrete events, but the distinct type keeps the layering
// explicit for input sources that need real debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{Device: raw.Device, Code: raw.Code}
}

// bindings maps command codes to actions. Arrow codes, single letters, and
// full words all funnel through the same table.
var bindings = map[string]Action{
	// Movement (arrows, NSEW words and letters, Vim keys)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// World interaction
	"look":    ActionLook,
	"x":       ActionLook,
	"take":    ActionTake,
	"get":     ActionTake,
	"g":       ActionTake,
	"use":     ActionUse,
	"u":       ActionUse,
	"equip":   ActionEquip,
	"wield":   ActionEquip,
	"talk":    ActionTalk,
	"t":       ActionTalk,
	"descend": ActionDescend,
	"down":    ActionDescend,
	">":       ActionDescend,
	"ascend":  ActionAscend,
	"up":      ActionAscend,
	"<":       ActionAscend,

	// Combat
	"attack": ActionAttack,
	"a":      ActionAttack,
	"fight":  ActionAttack,
	"flee":   ActionFlee,
	"f":      ActionFlee,
	"run":    ActionFlee,

	// Information
	"inventory": ActionInventory,
	"inv":       ActionInventory,
	"i":         ActionInventory,
	"status":    ActionStatus,
	"stats":     ActionStatus,
	"c":         ActionStatus,
	"map":       ActionMap,
	"m":         ActionMap,
	"hint":      ActionHint,
	"?":         ActionHint,
	"help":      ActionHelp,

	// Session
	"save":    ActionSave,
	"load":    ActionLoad,
	"dumpmap": ActionDumpMap,
	"quit":    ActionQuit,
	"q":       ActionQuit,
}

// MapToIntent applies the bindings to a debounced event and returns the
// high-level intent. Anything after the first word of a typed command
// becomes the intent's argument.
func MapToIntent(ev DebouncedInput) Intent {
	code := strings.TrimSpace(strings.ToLower(ev.Code))
	if code == "" {
		return Intent{Action: ActionNone}
	}

	verb, arg := code, ""
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		verb = code[:idx]
		arg = strings.TrimSpace(code[idx+1:])
	}

	if act, ok := bindings[verb]; ok {
		return Intent{Action: act, Arg: arg}
	}
	return Intent{Action: ActionNone, Arg: code}
}

// Decode is the full pipeline for one terminal command: raw event, debounce,
// bindings, intent.
func Decode(code string) Intent {
	raw := RawInput{Device: DeviceTerminal, Code: code}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionLook:
		return "Look"
	case ActionTake:
		return "Take"
	case ActionUse:
		return "Use"
	case ActionEquip:
		return "Equip"
	case ActionTalk:
		return "Talk"
	case ActionDescend:
		return "Descend"
	case ActionAscend:
		return "Ascend"
	case ActionAttack:
		return "Attack"
	case ActionFlee:
		return "Flee"
	case ActionInventory:
		return "Inventory"
	case ActionStatus:
		return "Status"
	case ActionMap:
		return "Map"
	case ActionHint:
		return "Hint"
	case ActionHelp:
		return "Help"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
