package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-voxel/input"
	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// slab is a solid floor at y < 0 over a bounded area, lit everywhere above it
type slab struct {
	w, h, d int
	noFloor bool
}

func (s slab) Cubes(box vmath.AABB) []vmath.AABB {
	if s.noFloor {
		return nil
	}
	var out []vmath.AABB
	for x := ifloor(box.MinX); x <= ifloor(box.MaxX); x++ {
		for y := ifloor(box.MinY); y <= ifloor(box.MaxY) && y < 0; y++ {
			for z := ifloor(box.MinZ); z <= ifloor(box.MaxZ); z++ {
				out = append(out, vmath.BlockAABB(x, y, z))
			}
		}
	}
	return out
}

func (s slab) IsLit(x, y, z int) bool { return y >= 0 }
func (s slab) Size() (w, h, d int) { return s.w, s.h, s.d }

func ifloor(v float32) int {
	return int(math.Floor(float64(v)))
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

var _ Entity = (*Zombie)(nil)

func TestZombieRemovedBelowVoid(t *testing.T) {
	z := NewZombie(slab{noFloor: true}, mgl32.Vec3{0, 10, 0}, testRNG())
	require.NotEmpty(t, z.ID())

	ticks := 0
	for !z.Removed() && ticks < 10000 {
		z.Tick()
		ticks++
	}
	assert.True(t, z.Removed())
	assert.Less(t, z.Body().Pos.Y(), float32(parameter.VoidDepth))
}

func TestZombieStaysOnFloor(t *testing.T) {
	z := NewZombie(slab{}, mgl32.Vec3{0.5, 2, 0.5}, testRNG())
	for i := 0; i < 500; i++ {
		z.Tick()
	}
	assert.False(t, z.Removed())
	assert.GreaterOrEqual(t, z.Body().Pos.Y(), float32(0))
	assert.True(t, z.IsLit())
}

func TestZombieIDsUnique(t *testing.T) {
	rng := testRNG()
	a := NewZombie(slab{}, mgl32.Vec3{}, rng)
	b := NewZombie(slab{}, mgl32.Vec3{}, rng)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestZombieInterpolated(t *testing.T) {
	z := NewZombie(slab{noFloor: true}, mgl32.Vec3{0, 10, 0}, testRNG())
	z.Tick()

	b := z.Body()
	assert.Equal(t, b.Prev, z.Interpolated(0))
	end := z.Interpolated(1)
	for i := range 3 {
		assert.InDelta(t, b.Pos[i], end[i], 1e-5)
	}
}

func TestPlayerSpawnAboveWorld(t *testing.T) {
	world := slab{w: 32, h: 16, d: 32}
	p := NewPlayer(world, testRNG())

	pos := p.Body().Pos
	assert.Equal(t, float32(16+parameter.SpawnHeightAboveWorld), pos.Y())
	assert.True(t, pos.X() >= 0 && pos.X() < 32)
	assert.True(t, pos.Z() >= 0 && pos.Z() < 32)
	assert.Equal(t, vmath.CenteredAABB(pos, parameter.BodyWidth, parameter.BodyHeight), p.BoundingVolume())
}

func TestPlayerWalksForward(t *testing.T) {
	p := NewPlayer(slab{w: 32, h: 0, d: 32}, testRNG())
	for i := 0; i < 200; i++ {
		p.Tick(input.Snapshot{})
	}
	require.True(t, p.Body().OnGround)

	start := p.Body().Pos
	for i := 0; i < 20; i++ {
		p.Tick(input.Snapshot{Forward: true})
	}
	end := p.Body().Pos
	assert.Less(t, end.Z(), start.Z())
	assert.InDelta(t, start.X(), end.X(), 1e-3)
}

func TestPlayerJumpAndReset(t *testing.T) {
	p := NewPlayer(slab{w: 32, h: 0, d: 32}, testRNG())
	for i := 0; i < 200; i++ {
		p.Tick(input.Snapshot{})
	}
	p.Tick(input.Snapshot{Jump: true})
	assert.Greater(t, p.Body().Pos.Y(), float32(0))

	p.Tick(input.Snapshot{Reset: true})
	assert.Greater(t, p.Body().Pos.Y(), float32(parameter.SpawnHeightAboveWorld-1))
}

func TestPlayerTurnAndEye(t *testing.T) {
	p := NewPlayer(slab{w: 8, h: 0, d: 8}, testRNG())
	p.Turn(100, 0)
	yaw, pitch := p.Heading()
	assert.InDelta(t, 100*parameter.TurnSensitivity, yaw, 1e-5)
	assert.Zero(t, pitch)

	p.Turn(0, 10000)
	_, pitch = p.Heading()
	assert.Equal(t, float32(-parameter.MaxPitch), pitch)

	eye := p.Eye(1)
	assert.InDelta(t, p.Body().Pos.Y()+parameter.EyeHeight, eye.Y(), 1e-5)
}
