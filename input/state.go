package input

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-voxel/edit"
	"github.com/lixenwraith/vi-voxel/parameter"
)

// Palette is the material cycle order of the mouse wheel
var Palette = []uint8{1, 3, 4, 5, 6}

// Snapshot is the immutable input view handed to one simulation tick
type Snapshot struct {
	Forward, Back, Left, Right, Jump bool

	// Reset is delivered to exactly one tick
	Reset bool
}

// Axes converts the held movement keys into strafe and forward axes
// Forward is negative za
func (s Snapshot) Axes() (xa, za float32) {
	if s.Forward {
		za--
	}
	if s.Back {
		za++
	}
	if s.Left {
		xa--
	}
	if s.Right {
		xa++
	}
	return xa, za
}

// State latches terminal input between frames
// Written only by the frame loop while draining events
type State struct {
	keys      *KeyTable
	holdTicks int
	hold      [actionCount]int

	edits        []edit.Request
	lookX, lookY float32
	buttons      tcell.ButtonMask

	material uint8
	invertY  bool
	paused   bool
	quit     bool
	save     bool
	reset    bool
	spawns   int
}

// NewState creates an input state using keys, or the default table if nil
func NewState(keys *KeyTable) *State {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &State{
		keys:      keys,
		holdTicks: parameter.KeyHoldTicks,
		material:  Palette[0],
	}
}

// HandleEvent applies one terminal event
func (s *State) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if b, ok := s.keys.Lookup(ev); ok {
			s.Apply(b)
		}
	case *tcell.EventMouse:
		s.HandleButtons(ev.Buttons())
	}
}

// HandleButtons applies a mouse button state; edits fire on press, not while held
func (s *State) HandleButtons(btn tcell.ButtonMask) {
	pressed := btn &^ s.buttons
	s.buttons = btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	if pressed&tcell.Button1 != 0 {
		s.Apply(Binding{Behavior: BehaviorEdit, Action: ActionBreak})
	}
	if pressed&tcell.Button2 != 0 {
		s.Apply(Binding{Behavior: BehaviorEdit, Action: ActionPlace})
	}
	if btn&tcell.WheelUp != 0 {
		s.cycleMaterial(-1)
	}
	if btn&tcell.WheelDown != 0 {
		s.cycleMaterial(1)
	}
}

func (s *State) cycleMaterial(step int) {
	i := slices.Index(Palette, s.material)
	if i < 0 {
		i = 0
	}
	i = (i + step + len(Palette)) % len(Palette)
	s.material = Palette[i]
}

// Apply performs a binding as if its key was pressed
// Look and edit input is dropped while paused
func (s *State) Apply(b Binding) {
	if s.paused && (b.Behavior == BehaviorLook || b.Behavior == BehaviorEdit) {
		return
	}
	switch b.Behavior {
	case BehaviorHold:
		s.hold[b.Action] = s.holdTicks
	case BehaviorLook:
		switch b.Action {
		case ActionLookLeft:
			s.lookX -= parameter.LookStep
		case ActionLookRight:
			s.lookX += parameter.LookStep
		case ActionLookUp:
			s.lookY += parameter.LookStep
		case ActionLookDown:
			s.lookY -= parameter.LookStep
		}
	case BehaviorEdit:
		if len(s.edits) >= parameter.MaxEditsPerFrame {
			return
		}
		req := edit.Request{Mode: edit.Break}
		if b.Action == ActionPlace {
			req = edit.Request{Mode: edit.Place, Material: s.material}
		}
		s.edits = append(s.edits, req)
	case BehaviorSelect:
		s.material = b.Material
	case BehaviorCommand:
		switch b.Action {
		case ActionSave:
			s.save = true
		case ActionReset:
			s.reset = true
		case ActionSpawn:
			s.spawns++
		case ActionInvertY:
			s.invertY = !s.invertY
		case ActionPause:
			s.paused = !s.paused
		case ActionQuit:
			s.quit = true
		}
	}
}

// Snapshot returns the input for the next tick and consumes the reset request
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Forward: s.hold[ActionForward] > 0,
		Back:    s.hold[ActionBack] > 0,
		Left:    s.hold[ActionLeft] > 0,
		Right:   s.hold[ActionRight] > 0,
		Jump:    s.hold[ActionJump] > 0,
		Reset:   s.reset,
	}
	s.reset = false
	return snap
}

// Step expires held actions by one tick
func (s *State) Step() {
	for i := range s.hold {
		if s.hold[i] > 0 {
			s.hold[i]--
		}
	}
}

// TakeLook returns and clears the accumulated look delta
func (s *State) TakeLook() (dx, dy float32) {
	dx, dy = s.lookX, s.lookY
	s.lookX, s.lookY = 0, 0
	if s.invertY {
		dy = -dy
	}
	return dx, dy
}

// TakeEdits returns and clears the queued edit requests
func (s *State) TakeEdits() []edit.Request {
	if len(s.edits) == 0 {
		return nil
	}
	out := slices.Clone(s.edits)
	s.edits = s.edits[:0]
	return out
}

// TakeSave returns and clears a pending save request
func (s *State) TakeSave() bool {
	v := s.save
	s.save = false
	return v
}

// TakeSpawns returns and clears the number of pending spawn requests
func (s *State) TakeSpawns() int {
	n := s.spawns
	s.spawns = 0
	return n
}

// RequestQuit marks the loop for shutdown
func (s *State) RequestQuit() { s.quit = true }

// Quit reports whether shutdown was requested
func (s *State) Quit() bool { return s.quit }

// Paused reports whether the simulation is paused
func (s *State) Paused() bool { return s.paused }

// Material returns the selected placement material
func (s *State) Material() uint8 { return s.material }

// InvertY reports whether vertical look is inverted
func (s *State) InvertY() bool { return s.invertY }

// SetInvertY forces vertical look inversion
func (s *State) SetInvertY(v bool) { s.invertY = v }

// SetHoldTicks changes how long a key event holds its action; non-positive values are ignored
func (s *State) SetHoldTicks(n int) {
	if n > 0 {
		s.holdTicks = n
	}
}
