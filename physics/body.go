package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// World is the collision and lighting view a body needs
type World interface {
	Cubes(box vmath.AABB) []vmath.AABB
	IsLit(x, y, z int) bool
}

// Body is a box moving through the block grid
// Pos is the bottom center of the box; Prev is Pos at the start of the current tick
type Body struct {
	Pos, Prev, Vel mgl32.Vec3
	Yaw, Pitch     float32 // degrees
	Box            vmath.AABB
	OnGround       bool

	profile *MotionProfile
	world   World
}

// NewBody places a body with the given profile at pos
func NewBody(w World, profile *MotionProfile, pos mgl32.Vec3) *Body {
	b := &Body{profile: profile, world: w}
	b.SetPos(pos)
	return b
}

// SetPos teleports the body, clearing interpolation history
func (b *Body) SetPos(pos mgl32.Vec3) {
	b.Pos = pos
	b.Prev = pos
	b.Box = vmath.CenteredAABB(pos, b.profile.Width, b.profile.Height)
}

// Begin snapshots the position for interpolation, called at the start of a tick
func (b *Body) Begin() {
	b.Prev = b.Pos
}

// Move displaces the body by (dx, dy, dz), clipped against solid blocks
// Axes resolve Y first, then X, then Z; a clipped axis zeroes its velocity
func (b *Body) Move(dx, dy, dz float32) {
	ox, oy, oz := dx, dy, dz

	cubes := b.world.Cubes(b.Box.Expand(dx, dy, dz))

	for _, c := range cubes {
		dy = c.ClipYCollide(b.Box, dy)
	}
	b.Box = b.Box.Move(0, dy, 0)

	for _, c := range cubes {
		dx = c.ClipXCollide(b.Box, dx)
	}
	b.Box = b.Box.Move(dx, 0, 0)

	for _, c := range cubes {
		dz = c.ClipZCollide(b.Box, dz)
	}
	b.Box = b.Box.Move(0, 0, dz)

	b.OnGround = oy != dy && oy < 0

	if ox != dx {
		b.Vel[0] = 0
	}
	if oy != dy {
		b.Vel[1] = 0
	}
	if oz != dz {
		b.Vel[2] = 0
	}

	b.Pos = mgl32.Vec3{(b.Box.MinX + b.Box.MaxX) / 2, b.Box.MinY, (b.Box.MinZ + b.Box.MaxZ) / 2}
}

// MoveRelative accelerates along the body's heading
// za is forward/back (negative is forward), xa is strafe
func (b *Body) MoveRelative(xa, za, speed float32) {
	dist := xa*xa + za*za
	if dist < 0.01 {
		return
	}
	dist = speed / float32(math.Sqrt(float64(dist)))
	xa *= dist
	za *= dist

	sin, cos := sincos(b.Yaw)
	b.Vel[0] += xa*cos - za*sin
	b.Vel[2] += za*cos + xa*sin
}

// Accel returns the movement acceleration for the current ground state
func (b *Body) Accel() float32 {
	if b.OnGround {
		return b.profile.GroundAccel
	}
	return b.profile.AirAccel
}

// Jump launches the body if it stands on ground
func (b *Body) Jump() {
	if b.OnGround {
		b.Vel[1] = b.profile.JumpVelocity
	}
}

// Integrate applies gravity, moves by velocity and damps it
func (b *Body) Integrate() {
	p := b.profile
	b.Vel[1] -= p.Gravity
	b.Move(b.Vel[0], b.Vel[1], b.Vel[2])

	b.Vel[0] *= p.HorizontalDrag
	b.Vel[1] *= p.VerticalDrag
	b.Vel[2] *= p.HorizontalDrag
	if b.OnGround {
		b.Vel[0] *= p.GroundFriction
		b.Vel[2] *= p.GroundFriction
	}
}

// Turn rotates the heading by a look delta, pitch is clamped to straight up/down
func (b *Body) Turn(dx, dy float32) {
	b.Yaw += dx * parameter.TurnSensitivity
	b.Pitch -= dy * parameter.TurnSensitivity
	b.Pitch = mgl32.Clamp(b.Pitch, -parameter.MaxPitch, parameter.MaxPitch)
}

// Interpolated returns the position blended between the last two ticks
func (b *Body) Interpolated(partial float32) mgl32.Vec3 {
	return b.Prev.Add(b.Pos.Sub(b.Prev).Mul(partial))
}

// Eye returns the interpolated eye position
func (b *Body) Eye(partial float32) mgl32.Vec3 {
	p := b.Interpolated(partial)
	p[1] += parameter.EyeHeight
	return p
}

// IsLit reports whether the cell holding the body's center is lit
func (b *Body) IsLit() bool {
	c := b.Box.Center()
	return b.world.IsLit(floor(c.X()), floor(c.Y()), floor(c.Z()))
}

func sincos(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(mgl32.DegToRad(deg)))
	return float32(s), float32(c)
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}
