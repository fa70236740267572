package input

import (
	"strconv"
	"strings"
)

// Action is a semantic input produced by a key or button
type Action uint8

const (
	ActionNone Action = iota

	// Held
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump

	// Look
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown

	// Edit
	ActionBreak
	ActionPlace

	// Commands
	ActionSave
	ActionReset
	ActionSpawn
	ActionInvertY
	ActionPause
	ActionQuit

	// ActionMaterial selects Binding.Material as the placement material
	ActionMaterial

	actionCount
)

// Behavior classifies how an action is applied
type Behavior uint8

const (
	BehaviorNone    Behavior = iota
	BehaviorHold             // latched for KeyHoldTicks ticks
	BehaviorLook             // accumulates a look delta
	BehaviorEdit             // queues a one-shot edit request
	BehaviorCommand          // frame-level toggle or one-shot
	BehaviorSelect           // changes the placement material
)

// Binding describes what a key does
type Binding struct {
	Behavior Behavior
	Action   Action
	Material uint8
}

// actionRegistry maps canonical action names to bindings
// Used by the keymap loader to resolve config strings
var actionRegistry = map[string]Binding{
	// Unbind sentinel
	"none": {},

	"forward":    {BehaviorHold, ActionForward, 0},
	"back":       {BehaviorHold, ActionBack, 0},
	"left":       {BehaviorHold, ActionLeft, 0},
	"right":      {BehaviorHold, ActionRight, 0},
	"jump":       {BehaviorHold, ActionJump, 0},
	"look_left":  {BehaviorLook, ActionLookLeft, 0},
	"look_right": {BehaviorLook, ActionLookRight, 0},
	"look_up":    {BehaviorLook, ActionLookUp, 0},
	"look_down":  {BehaviorLook, ActionLookDown, 0},
	"break":      {BehaviorEdit, ActionBreak, 0},
	"place":      {BehaviorEdit, ActionPlace, 0},
	"save":       {BehaviorCommand, ActionSave, 0},
	"reset":      {BehaviorCommand, ActionReset, 0},
	"spawn":      {BehaviorCommand, ActionSpawn, 0},
	"invert_y":   {BehaviorCommand, ActionInvertY, 0},
	"pause":      {BehaviorCommand, ActionPause, 0},
	"quit":       {BehaviorCommand, ActionQuit, 0},
}

// ActionBinding resolves a canonical action name
// "material_<id>" selects placement material id
func ActionBinding(name string) (Binding, bool) {
	if b, ok := actionRegistry[name]; ok {
		return b, true
	}
	if rest, ok := strings.CutPrefix(name, "material_"); ok {
		if id, err := strconv.Atoi(rest); err == nil && id > 0 && id < 256 {
			return Binding{BehaviorSelect, ActionMaterial, uint8(id)}, true
		}
	}
	return Binding{}, false
}

// ActionNames returns the fixed registered action names
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
