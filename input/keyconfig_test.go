package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyBindings(t *testing.T) {
	kt, err := ParseKeyBindings(
		map[string]string{"z": "forward", "space": "none", "0": "material_4"},
		map[string]string{"F1": "pause"},
	)
	require.NoError(t, err)

	assert.Equal(t, Binding{BehaviorHold, ActionForward, 0}, kt.Runes['z'])
	assert.Equal(t, Binding{}, kt.Runes[' '])
	assert.Equal(t, Binding{BehaviorSelect, ActionMaterial, 4}, kt.Runes['0'])
	assert.Equal(t, Binding{BehaviorCommand, ActionPause, 0}, kt.SpecialKeys[tcell.KeyF1])
}

func TestParseKeyBindingsErrors(t *testing.T) {
	_, err := ParseKeyBindings(map[string]string{"zz": "forward"}, nil)
	assert.Error(t, err)

	_, err = ParseKeyBindings(map[string]string{"z": "fly"}, nil)
	assert.Error(t, err)

	_, err = ParseKeyBindings(nil, map[string]string{"hyper": "quit"})
	assert.Error(t, err)

	_, err = ParseKeyBindings(map[string]string{"z": "material_0"}, nil)
	assert.Error(t, err)
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := ParseKeyBindings(map[string]string{"z": "jump", "space": "none"}, nil)
	require.NoError(t, err)

	merged := MergeKeyTable(base, override)

	b, ok := merged.Resolve(tcell.KeyRune, 'z')
	assert.True(t, ok)
	assert.Equal(t, ActionJump, b.Action)

	_, ok = merged.Resolve(tcell.KeyRune, ' ')
	assert.False(t, ok)

	// Base is untouched
	_, ok = base.Resolve(tcell.KeyRune, ' ')
	assert.True(t, ok)

	b, ok = merged.Resolve(tcell.KeyEnter, 0)
	assert.True(t, ok)
	assert.Equal(t, ActionSave, b.Action)
}

func TestActionNamesResolve(t *testing.T) {
	for _, name := range ActionNames() {
		_, ok := ActionBinding(name)
		assert.True(t, ok, name)
	}
}
