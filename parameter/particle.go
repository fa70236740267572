package parameter

// Block destruction burst
const (
	// ParticleGrid is the per-axis particle count of one burst (4x4x4)
	ParticleGrid = 4

	ParticleSize      = 0.2
	ParticleGravity   = 0.04
	ParticleDrag      = 0.98
	ParticleSpread    = 0.4
	ParticleBaseSpeed = 0.15
	ParticleLift      = 0.1

	// ParticleLifeBase scales the random lifetime, 4/(r*0.9+0.1) ticks
	ParticleLifeBase = 4

	// MaxParticles bounds the live particle pool
	MaxParticles = 4096
)
