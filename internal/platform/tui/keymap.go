package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a semantic sketch action, abstracted from physical key
// presses. This centralizes key bindings and makes them testable.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow - move cursor up
	ActionDown              // S, J, Down arrow - move cursor down
	ActionLeft              // A, H, Left arrow - move cursor left
	ActionRight             // D arrow keys only for right (d toggles darken)
	ActionPen               // Space - pen down/up
	ActionRandom            // R - toggle random color mode
	ActionDarken            // D - toggle darken mode
	ActionEraser            // E - toggle eraser
	ActionClear             // C - clear the canvas, keep dimension
	ActionNewCanvas         // N - prompt for a new dimension
	ActionSave              // Ctrl+S - save sketch to the gallery
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPen:
		return "Pen"
	case ActionRandom:
		return "Random"
	case ActionDarken:
		return "Darken"
	case ActionEraser:
		return "Eraser"
	case ActionClear:
		return "Clear"
	case ActionNewCanvas:
		return "NewCanvas"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyMapper translates Bubble Tea key messages to sketch actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return ActionQuit, true
	}

	switch key {
	case "w", "up", "k": // vim-style k for up
		return ActionUp, false
	case "s", "down", "j": // vim-style j for down
		return ActionDown, false
	case "a", "left", "h": // vim-style h for left
		return ActionLeft, false
	case "right", "l": // vim-style l for right
		return ActionRight, false
	case " ":
		return ActionPen, false
	case "r":
		return ActionRandom, false
	case "d":
		return ActionDarken, false
	case "e":
		return ActionEraser, false
	case "c":
		return ActionClear, false
	case "n":
		return ActionNewCanvas, false
	case "ctrl+s":
		return ActionSave, false
	}

	return ActionNone, false
}
