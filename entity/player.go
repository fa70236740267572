package entity

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/input"
	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/physics"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// Bounds is the spawn area of the player
type Bounds interface {
	physics.World
	Size() (width, height, depth int)
}

// Player is the controllable body; it reads only the input snapshot it is given
type Player struct {
	body  *physics.Body
	world Bounds
	rng   *rand.Rand
}

// NewPlayer creates a player and drops it at a random spot above the world
func NewPlayer(w Bounds, rng *rand.Rand) *Player {
	p := &Player{
		body:  physics.NewBody(w, &physics.Walker, mgl32.Vec3{}),
		world: w,
		rng:   rng,
	}
	p.ResetPosition()
	return p
}

// Body exposes the physics body
func (p *Player) Body() *physics.Body { return p.body }

// ResetPosition drops the player at a random column above the world
func (p *Player) ResetPosition() {
	w, h, d := p.world.Size()
	x := p.rng.Float32() * float32(w)
	z := p.rng.Float32() * float32(d)
	p.body.SetPos(mgl32.Vec3{x, float32(h + parameter.SpawnHeightAboveWorld), z})
	p.body.Vel = mgl32.Vec3{}
}

// Tick advances the player one step from the held input
func (p *Player) Tick(in input.Snapshot) {
	b := p.body
	b.Begin()

	if in.Reset {
		p.ResetPosition()
	}

	xa, za := in.Axes()
	if in.Jump {
		b.Jump()
	}
	b.MoveRelative(xa, za, b.Accel())
	b.Integrate()
}

// Turn applies a look delta, called at the frame boundary
func (p *Player) Turn(dx, dy float32) {
	p.body.Turn(dx, dy)
}

// BoundingVolume returns the current box
func (p *Player) BoundingVolume() vmath.AABB { return p.body.Box }

// Eye returns the interpolated eye position
func (p *Player) Eye(partial float32) mgl32.Vec3 { return p.body.Eye(partial) }

// Heading returns yaw and pitch in degrees
func (p *Player) Heading() (yaw, pitch float32) { return p.body.Yaw, p.body.Pitch }
