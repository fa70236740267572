// Package entity holds the player and the wandering mobs
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/vmath"
)

// Entity is a dynamic body ticked by the simulation
type Entity interface {
	ID() string
	Tick()
	// Removed reports that the entity asked to leave the world during its tick
	Removed() bool
	BoundingVolume() vmath.AABB
	IsLit() bool
	Interpolated(partial float32) mgl32.Vec3
}
