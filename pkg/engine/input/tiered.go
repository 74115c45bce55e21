// Package input turns device key codes into game actions in layers: raw
// device events, debounced events, then bindings to a high-level Intent.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBackward
	ActionTurnLeft
	ActionTurnRight

	// Attack, or pick up what is ahead
	ActionActivate

	// Meta / UI
	ActionNewQuest
	ActionScreenshot
	ActionMapDump
	ActionQuit
)

// Intent is the top-layer description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device. Code is a
// device-neutral key name such as "arrow_up" or "space".
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a RawInput that survived repeat suppression.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code arriving within Interval.
type Debouncer struct {
	Interval time.Duration

	lastCode string
	lastAt   time.Time
}

// Accept reports whether raw should be acted on and, if so, returns it in
// debounced form.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if raw.Code == d.lastCode && raw.Timestamp.Sub(d.lastAt) < d.Interval {
		return DebouncedInput{}, false
	}
	d.lastCode, d.lastAt = raw.Code, raw.Timestamp
	return NewDebouncedInput(raw), true
}

// NewDebouncedInput converts a raw event to a debounced event without
// filtering.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes keep their binding whatever the player rebinds.
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"escape": true,
}

// Bindings maps key codes to actions. Multiple codes may point to the same
// action.
type Bindings map[string]Action

// DefaultBindings returns the stock key map.
func DefaultBindings() Bindings {
	return Bindings{
		"arrow_up": ActionMoveForward,
		"w":        ActionMoveForward,
		"k":        ActionMoveForward,

		"arrow_down": ActionMoveBackward,
		"s":          ActionMoveBackward,
		"j":          ActionMoveBackward,

		"arrow_left": ActionTurnLeft,
		"a":          ActionTurnLeft,
		"h":          ActionTurnLeft,

		"arrow_right": ActionTurnRight,
		"d":           ActionTurnRight,
		"l":           ActionTurnRight,

		"space": ActionActivate,
		"e":     ActionActivate,

		"enter": ActionNewQuest,
		"n":     ActionNewQuest,

		"f12": ActionScreenshot,
		"f9":  ActionMapDump,

		"q":      ActionQuit,
		"escape": ActionQuit,
	}
}

// MapToIntent applies b to a debounced input.
func (b Bindings) MapToIntent(ev DebouncedInput) Intent {
	if act, ok := b[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ByAction returns the bindings grouped by action, codes sorted.
func (b Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for action with code.
// Reserved codes cannot be rebound.
func (b Bindings) SetSingleBinding(action Action, code string) {
	for c, a := range b {
		if a == action && !reserved[c] {
			delete(b, c)
		}
	}
	if code != "" && !reserved[code] {
		b[code] = action
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBackward:
		return "Move Backward"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionActivate:
		return "Attack"
	case ActionNewQuest:
		return "New Quest"
	case ActionScreenshot:
		return "Screenshot"
	case ActionMapDump:
		return "Map Dump"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction maps a name as printed by ActionName back to its Action.
func ParseAction(name string) (Action, bool) {
	for a := ActionMoveForward; a <= ActionQuit; a++ {
		if ActionName(a) == name {
			return a, true
		}
	}
	return ActionNone, false
}
