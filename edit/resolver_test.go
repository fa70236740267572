package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-voxel/pick"
	"github.com/lixenwraith/vi-voxel/vmath"
)

type fakeWorld struct {
	blocks map[[3]int]uint8
	writes int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{blocks: map[[3]int]uint8{}}
}

func (w *fakeWorld) Block(x, y, z int) uint8 {
	return w.blocks[[3]int{x, y, z}]
}

func (w *fakeWorld) SetBlock(x, y, z int, m uint8) bool {
	if y < 0 || w.Block(x, y, z) == m {
		return false
	}
	w.writes++
	if m == 0 {
		delete(w.blocks, [3]int{x, y, z})
	} else {
		w.blocks[[3]int{x, y, z}] = m
	}
	return true
}

// material 6 has no volume
func (w *fakeWorld) BoundingVolume(m uint8, x, y, z int) (vmath.AABB, bool) {
	if m == 0 || m == 6 {
		return vmath.AABB{}, false
	}
	return vmath.BlockAABB(x, y, z), true
}

type boxes []vmath.AABB

func (b boxes) BoundingVolumes() []vmath.AABB { return b }

type destroyed struct {
	x, y, z int
	m       uint8
}

func newResolver(w *fakeWorld, occ boxes, log *[]destroyed) *Resolver {
	return NewResolver(w, occ, func(x, y, z int, m uint8) {
		*log = append(*log, destroyed{x, y, z, m})
	}, zap.NewNop())
}

func TestBreakRemovesBlockAndFiresHook(t *testing.T) {
	w := newFakeWorld()
	w.blocks[[3]int{1, 2, 3}] = 4
	var hooks []destroyed
	r := newResolver(w, nil, &hooks)

	out := r.Resolve(Request{Mode: Break}, pick.Result{X: 1, Y: 2, Z: 3, Face: 1}, true)
	assert.Equal(t, Broken, out)
	assert.Equal(t, uint8(0), w.Block(1, 2, 3))
	assert.Equal(t, []destroyed{{1, 2, 3, 4}}, hooks)
}

func TestBreakThenPlaceRestoresBlock(t *testing.T) {
	w := newFakeWorld()
	w.blocks[[3]int{1, 1, 3}] = 1
	w.blocks[[3]int{1, 2, 3}] = 4
	var hooks []destroyed
	// Player standing on top of the column
	r := newResolver(w, boxes{vmath.NewAABB(0.7, 3, 2.7, 1.3, 4.8, 3.3)}, &hooks)

	assert.Equal(t, Broken, r.Resolve(Request{Mode: Break}, pick.Result{X: 1, Y: 2, Z: 3, Face: 1}, true))
	assert.Equal(t, Placed, r.Resolve(Request{Mode: Place, Material: 4}, pick.Result{X: 1, Y: 1, Z: 3, Face: 1}, true))
	assert.Equal(t, uint8(4), w.Block(1, 2, 3))
}

func TestBreakUnchangedSkipsHook(t *testing.T) {
	w := newFakeWorld()
	var hooks []destroyed
	r := newResolver(w, nil, &hooks)

	out := r.Resolve(Request{Mode: Break}, pick.Result{X: 1, Y: 2, Z: 3}, true)
	assert.Equal(t, Unchanged, out)
	assert.Empty(t, hooks)
}

func TestNoTarget(t *testing.T) {
	w := newFakeWorld()
	var hooks []destroyed
	r := newResolver(w, nil, &hooks)

	assert.Equal(t, NoTarget, r.Resolve(Request{Mode: Break}, pick.Result{}, false))
	assert.Equal(t, NoTarget, r.Resolve(Request{Mode: Place, Material: 1}, pick.Result{}, false))
	assert.Zero(t, w.writes)
}

func TestPlaceUsesFaceOffset(t *testing.T) {
	tests := []struct {
		face int
		want [3]int
	}{
		{0, [3]int{5, 4, 5}},
		{1, [3]int{5, 6, 5}},
		{2, [3]int{5, 5, 4}},
		{3, [3]int{5, 5, 6}},
		{4, [3]int{4, 5, 5}},
		{5, [3]int{6, 5, 5}},
	}
	for _, tt := range tests {
		w := newFakeWorld()
		var hooks []destroyed
		r := newResolver(w, nil, &hooks)

		out := r.Resolve(Request{Mode: Place, Material: 4}, pick.Result{X: 5, Y: 5, Z: 5, Face: tt.face}, true)
		assert.Equal(t, Placed, out, "face %d", tt.face)
		assert.Equal(t, uint8(4), w.blocks[tt.want], "face %d", tt.face)
	}
}

func TestPlaceDeniedByOccupant(t *testing.T) {
	w := newFakeWorld()
	var hooks []destroyed
	// Player box overlapping the cell above (5,5,5)
	player := vmath.NewAABB(5.2, 6.0, 5.2, 5.8, 7.8, 5.8)
	r := newResolver(w, boxes{player}, &hooks)

	out := r.Resolve(Request{Mode: Place, Material: 1}, pick.Result{X: 5, Y: 5, Z: 5, Face: 1}, true)
	assert.Equal(t, Denied, out)
	assert.Zero(t, w.writes)
}

func TestPlaceDeniedByEntity(t *testing.T) {
	w := newFakeWorld()
	var hooks []destroyed
	player := vmath.NewAABB(20, 0, 20, 21, 2, 21)
	zombie := vmath.NewAABB(6.5, 5.0, 5.2, 7.1, 6.8, 5.8)
	r := newResolver(w, boxes{player, zombie}, &hooks)

	out := r.Resolve(Request{Mode: Place, Material: 5}, pick.Result{X: 5, Y: 5, Z: 5, Face: 5}, true)
	assert.Equal(t, Denied, out)
}

func TestPlaceTouchingOccupantIsAllowed(t *testing.T) {
	w := newFakeWorld()
	var hooks []destroyed
	// Standing exactly on top of the target cell (6 = top of cell y=5)
	player := vmath.NewAABB(5.2, 6.0, 5.2, 5.8, 7.8, 5.8)
	r := newResolver(w, boxes{player}, &hooks)

	out := r.Resolve(Request{Mode: Place, Material: 1}, pick.Result{X: 5, Y: 4, Z: 5, Face: 1}, true)
	assert.Equal(t, Placed, out)
}

func TestPlaceWithoutVolumeSkipsCheck(t *testing.T) {
	w := newFakeWorld()
	var hooks []destroyed
	player := vmath.NewAABB(5, 6, 5, 6, 8, 6)
	r := newResolver(w, boxes{player}, &hooks)

	out := r.Resolve(Request{Mode: Place, Material: 6}, pick.Result{X: 5, Y: 5, Z: 5, Face: 1}, true)
	assert.Equal(t, Placed, out)
}

func TestPlaceRejectedByWorld(t *testing.T) {
	w := newFakeWorld()
	w.blocks[[3]int{5, 6, 5}] = 2
	var hooks []destroyed
	r := newResolver(w, nil, &hooks)

	out := r.Resolve(Request{Mode: Place, Material: 2}, pick.Result{X: 5, Y: 5, Z: 5, Face: 1}, true)
	assert.Equal(t, Unchanged, out)

	out = r.Resolve(Request{Mode: Place, Material: 2}, pick.Result{X: 5, Y: -1, Z: 5, Face: 0}, true)
	assert.Equal(t, Unchanged, out)
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "placed", Placed.String())
	assert.Equal(t, "denied", Denied.String())
	assert.Equal(t, "unknown", Outcome(42).String())
	assert.Equal(t, "place", Place.String())
}
