package physics

import "github.com/lixenwraith/vi-voxel/parameter"

// MotionProfile holds the per-tick movement constants of a body
// Profiles are package variables shared by every body of a kind
type MotionProfile struct {
	Width, Height float32

	Gravity        float32 // subtracted from vertical velocity each tick
	HorizontalDrag float32 // X/Z velocity multiplier per tick
	VerticalDrag   float32 // Y velocity multiplier per tick
	GroundFriction float32 // extra X/Z multiplier while grounded

	GroundAccel  float32
	AirAccel     float32
	JumpVelocity float32
}

// Walker is the profile of the player and zombies
var Walker = MotionProfile{
	Width:          parameter.BodyWidth,
	Height:         parameter.BodyHeight,
	Gravity:        parameter.Gravity,
	HorizontalDrag: parameter.HorizontalDrag,
	VerticalDrag:   parameter.VerticalDrag,
	GroundFriction: parameter.GroundFriction,
	GroundAccel:    parameter.GroundAccel,
	AirAccel:       parameter.AirAccel,
	JumpVelocity:   parameter.JumpVelocity,
}

// Debris is the profile of destruction particles
var Debris = MotionProfile{
	Width:          parameter.ParticleSize,
	Height:         parameter.ParticleSize,
	Gravity:        parameter.ParticleGravity,
	HorizontalDrag: parameter.ParticleDrag,
	VerticalDrag:   parameter.ParticleDrag,
	GroundFriction: parameter.GroundFriction,
}
