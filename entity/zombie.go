package entity

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/physics"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// Zombie random-walks, hops, and is removed after falling into the void
type Zombie struct {
	id      string
	body    *physics.Body
	rng     *rand.Rand
	rot     float64 // heading in radians
	rotA    float64 // turn rate
	removed bool
}

// NewZombie spawns a zombie at pos with a random heading
func NewZombie(w physics.World, pos mgl32.Vec3, rng *rand.Rand) *Zombie {
	return &Zombie{
		id:   uuid.New().String(),
		body: physics.NewBody(w, &physics.Walker, pos),
		rng:  rng,
		rot:  rng.Float64() * math.Pi * 2,
		rotA: (rng.Float64() + 1) * 0.01,
	}
}

// ID returns the zombie's unique id
func (z *Zombie) ID() string { return z.id }

// Body exposes the physics body
func (z *Zombie) Body() *physics.Body { return z.body }

// Tick steers, moves and checks the void
func (z *Zombie) Tick() {
	b := z.body
	b.Begin()

	z.rot += z.rotA
	z.rotA *= parameter.ZombieTurnDamp
	r := z.rng
	z.rotA += (r.Float64() - r.Float64()) * r.Float64() * r.Float64() * parameter.ZombieTurnJitter

	xa := float32(math.Sin(z.rot))
	za := float32(math.Cos(z.rot))

	if b.OnGround && r.Float64() < parameter.ZombieJumpChance {
		b.Jump()
	}
	b.MoveRelative(xa, za, b.Accel())
	b.Integrate()

	if b.Pos.Y() < parameter.VoidDepth {
		z.removed = true
	}
}

// Removed reports whether the zombie fell out of the world
func (z *Zombie) Removed() bool { return z.removed }

// BoundingVolume returns the current box
func (z *Zombie) BoundingVolume() vmath.AABB { return z.body.Box }

// IsLit reports whether the zombie stands in light
func (z *Zombie) IsLit() bool { return z.body.IsLit() }

// Interpolated returns the render position
func (z *Zombie) Interpolated(partial float32) mgl32.Vec3 { return z.body.Interpolated(partial) }
