// Package particle runs the debris bursts of broken blocks
package particle

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/physics"
)

// Particle is one piece of debris
type Particle struct {
	Body     *physics.Body
	Material uint8
	Age      int
	Life     int
}

// Engine owns the live particles, ticked in the world phase
type Engine struct {
	world     physics.World
	rng       *rand.Rand
	particles []*Particle
}

// NewEngine creates an empty particle engine
func NewEngine(w physics.World, rng *rand.Rand) *Engine {
	return &Engine{world: w, rng: rng}
}

// Burst spawns a ParticleGrid^3 cloud filling cell (x, y, z), flying outward from its center
// Bursts beyond MaxParticles are dropped
func (e *Engine) Burst(x, y, z int, material uint8) {
	const n = parameter.ParticleGrid
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if len(e.particles) >= parameter.MaxParticles {
					return
				}
				off := mgl32.Vec3{
					(float32(i) + 0.5) / n,
					(float32(j) + 0.5) / n,
					(float32(k) + 0.5) / n,
				}
				pos := mgl32.Vec3{float32(x), float32(y), float32(z)}.Add(off)
				e.particles = append(e.particles, e.spawn(pos, off.Sub(mgl32.Vec3{0.5, 0.5, 0.5}), material))
			}
		}
	}
}

func (e *Engine) spawn(pos, dir mgl32.Vec3, material uint8) *Particle {
	r := e.rng
	spread := func() float32 { return (r.Float32()*2 - 1) * parameter.ParticleSpread }
	v := dir.Add(mgl32.Vec3{spread(), spread(), spread()})

	speed := (r.Float32() + r.Float32() + 1) * parameter.ParticleBaseSpeed
	dd := v.Len()
	if dd == 0 {
		dd = 1
	}
	v = mgl32.Vec3{
		v.X() / dd * speed * 0.7,
		v.Y()/dd*speed + parameter.ParticleLift,
		v.Z() / dd * speed * 0.7,
	}

	b := physics.NewBody(e.world, &physics.Debris, pos)
	b.Vel = v
	return &Particle{
		Body:     b,
		Material: material,
		Life:     int(math.Floor(parameter.ParticleLifeBase / (r.Float64()*0.9 + 0.1))),
	}
}

// Tick ages, moves and expires particles
func (e *Engine) Tick() {
	for i := 0; i < len(e.particles); {
		p := e.particles[i]
		p.Body.Begin()
		p.Age++
		if p.Age >= p.Life {
			last := len(e.particles) - 1
			e.particles[i] = e.particles[last]
			e.particles[last] = nil
			e.particles = e.particles[:last]
			continue
		}
		p.Body.Integrate()
		i++
	}
}

// Particles returns the live particles; the slice is only valid until the next Tick
func (e *Engine) Particles() []*Particle {
	return e.particles
}

// Len returns the live particle count
func (e *Engine) Len() int {
	return len(e.particles)
}

// Clear removes all particles
func (e *Engine) Clear() {
	clear(e.particles)
	e.particles = e.particles[:0]
}
