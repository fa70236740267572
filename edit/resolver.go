// Package edit applies break and place requests against the picked block face
package edit

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-voxel/pick"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// Mode selects the kind of edit
type Mode uint8

const (
	Break Mode = iota
	Place
)

func (m Mode) String() string {
	if m == Place {
		return "place"
	}
	return "break"
}

// Request is a one-shot edit queued by input and resolved within the same frame
type Request struct {
	Mode     Mode
	Material uint8
}

// Outcome reports what an edit did; none of them are errors
type Outcome uint8

const (
	NoTarget  Outcome = iota // nothing under the crosshair
	Broken                   // block removed
	Placed                   // block added
	Denied                   // candidate volume overlaps a body
	Unchanged                // world rejected the write or already held the material
)

var outcomeNames = [...]string{"no target", "broken", "placed", "denied", "unchanged"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// World is the block storage an edit mutates
type World interface {
	Block(x, y, z int) uint8
	SetBlock(x, y, z int, m uint8) bool
	BoundingVolume(m uint8, x, y, z int) (vmath.AABB, bool)
}

// Occupants lists the volumes placement must keep clear: the player and every entity
type Occupants interface {
	BoundingVolumes() []vmath.AABB
}

// DestroyFunc runs after a block is removed, with the material it held
type DestroyFunc func(x, y, z int, material uint8)

// Resolver validates and applies edits
type Resolver struct {
	world     World
	occupants Occupants
	onDestroy DestroyFunc
	log       *zap.Logger
}

// NewResolver creates a resolver; onDestroy may be nil
func NewResolver(w World, occ Occupants, onDestroy DestroyFunc, log *zap.Logger) *Resolver {
	return &Resolver{world: w, occupants: occ, onDestroy: onDestroy, log: log}
}

// Resolve applies req to the picked face; hit is false when nothing is picked
func (r *Resolver) Resolve(req Request, target pick.Result, hit bool) Outcome {
	if !hit {
		return NoTarget
	}

	var out Outcome
	switch req.Mode {
	case Break:
		out = r.breakBlock(target)
	case Place:
		out = r.placeBlock(target, req.Material)
	default:
		out = Unchanged
	}

	r.log.Debug("edit resolved",
		zap.Stringer("mode", req.Mode),
		zap.Stringer("outcome", out),
		zap.Int("x", target.X), zap.Int("y", target.Y), zap.Int("z", target.Z),
		zap.Int("face", target.Face),
	)
	return out
}

func (r *Resolver) breakBlock(t pick.Result) Outcome {
	old := r.world.Block(t.X, t.Y, t.Z)
	if !r.world.SetBlock(t.X, t.Y, t.Z, 0) {
		return Unchanged
	}
	if r.onDestroy != nil {
		r.onDestroy(t.X, t.Y, t.Z, old)
	}
	return Broken
}

func (r *Resolver) placeBlock(t pick.Result, material uint8) Outcome {
	dx, dy, dz := vmath.FaceOffset(t.Face)
	x, y, z := t.X+dx, t.Y+dy, t.Z+dz

	if box, solid := r.world.BoundingVolume(material, x, y, z); solid && r.occupants != nil {
		for _, occ := range r.occupants.BoundingVolumes() {
			if box.Intersects(occ) {
				return Denied
			}
		}
	}

	if !r.world.SetBlock(x, y, z, material) {
		return Unchanged
	}
	return Placed
}
