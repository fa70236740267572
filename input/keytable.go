package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Named keys (arrows, enter, ctrl combinations)
	SpecialKeys map[tcell.Key]Binding

	// Printable keys
	Runes map[rune]Binding
}

// DefaultKeyTable returns the default bindings
// Material keys follow the classic palette: 1,2,3,4,6 select materials 1,3,4,5,6
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Binding{
			tcell.KeyCtrlC:  {BehaviorCommand, ActionQuit, 0},
			tcell.KeyEscape: {BehaviorCommand, ActionQuit, 0},
			tcell.KeyEnter:  {BehaviorCommand, ActionSave, 0},
			tcell.KeyUp:     {BehaviorLook, ActionLookUp, 0},
			tcell.KeyDown:   {BehaviorLook, ActionLookDown, 0},
			tcell.KeyLeft:   {BehaviorLook, ActionLookLeft, 0},
			tcell.KeyRight:  {BehaviorLook, ActionLookRight, 0},
		},

		Runes: map[rune]Binding{
			'w': {BehaviorHold, ActionForward, 0},
			's': {BehaviorHold, ActionBack, 0},
			'a': {BehaviorHold, ActionLeft, 0},
			'd': {BehaviorHold, ActionRight, 0},
			' ': {BehaviorHold, ActionJump, 0},

			'h': {BehaviorLook, ActionLookLeft, 0},
			'l': {BehaviorLook, ActionLookRight, 0},
			'k': {BehaviorLook, ActionLookUp, 0},
			'j': {BehaviorLook, ActionLookDown, 0},

			'x': {BehaviorEdit, ActionBreak, 0},
			'c': {BehaviorEdit, ActionPlace, 0},

			'r': {BehaviorCommand, ActionReset, 0},
			'g': {BehaviorCommand, ActionSpawn, 0},
			'u': {BehaviorCommand, ActionInvertY, 0},
			'p': {BehaviorCommand, ActionPause, 0},
			'q': {BehaviorCommand, ActionQuit, 0},

			'1': {BehaviorSelect, ActionMaterial, 1},
			'2': {BehaviorSelect, ActionMaterial, 3},
			'3': {BehaviorSelect, ActionMaterial, 4},
			'4': {BehaviorSelect, ActionMaterial, 5},
			'6': {BehaviorSelect, ActionMaterial, 6},
		},
	}
}

// Lookup returns the binding for a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	return kt.Resolve(ev.Key(), ev.Rune())
}

// Resolve returns the binding for a key, r is only consulted for KeyRune
// Letter keys match case-insensitively
func (kt *KeyTable) Resolve(k tcell.Key, r rune) (Binding, bool) {
	if k != tcell.KeyRune {
		b, ok := kt.SpecialKeys[k]
		return b, ok
	}
	if b, ok := kt.Runes[r]; ok {
		return b, true
	}
	if r >= 'A' && r <= 'Z' {
		b, ok := kt.Runes[r+('a'-'A')]
		return b, ok
	}
	return Binding{}, false
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneMap(kt.SpecialKeys),
		Runes:       cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]Binding) map[K]Binding {
	c := make(map[K]Binding, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
