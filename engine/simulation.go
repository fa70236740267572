package engine

import (
	"slices"

	"github.com/lixenwraith/vi-voxel/entity"
	"github.com/lixenwraith/vi-voxel/input"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// Ticker advances one fixed step
type Ticker interface {
	Tick()
}

// Controlled is the input-driven body ticked after all entities
type Controlled interface {
	Tick(in input.Snapshot)
	BoundingVolume() vmath.AABB
}

// Simulation runs the fixed-step update of world, particles, entities and player
// Owned by the frame loop; not safe for concurrent use
type Simulation struct {
	world     Ticker
	particles Ticker
	player    Controlled
	entities  []entity.Entity
	ticks     uint64
}

// NewSimulation wires the tick phases; world and particles may be nil
func NewSimulation(world, particles Ticker, player Controlled) *Simulation {
	return &Simulation{world: world, particles: particles, player: player}
}

// Tick advances exactly one step: world, particles, entities in slice order, player last
// An entity removed during its own tick is deleted in place and its slot revisited
func (s *Simulation) Tick(in input.Snapshot) {
	if s.world != nil {
		s.world.Tick()
	}
	if s.particles != nil {
		s.particles.Tick()
	}

	for i := 0; i < len(s.entities); {
		e := s.entities[i]
		e.Tick()
		if e.Removed() {
			s.entities = slices.Delete(s.entities, i, i+1)
			continue
		}
		i++
	}

	if s.player != nil {
		s.player.Tick(in)
	}
	s.ticks++
}

// AddEntity appends e; it first ticks on the next step
func (s *Simulation) AddEntity(e entity.Entity) {
	s.entities = append(s.entities, e)
}

// Entities returns the live entities in tick order
func (s *Simulation) Entities() []entity.Entity {
	return s.entities
}

// Ticks returns the number of completed steps
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// BoundingVolumes returns the boxes placement must keep clear, player first
func (s *Simulation) BoundingVolumes() []vmath.AABB {
	out := make([]vmath.AABB, 0, len(s.entities)+1)
	if s.player != nil {
		out = append(out, s.player.BoundingVolume())
	}
	for _, e := range s.entities {
		out = append(out, e.BoundingVolume())
	}
	return out
}
