package parameter

// Body physics, units are blocks and ticks
const (
	Gravity        = 0.08
	HorizontalDrag = 0.91
	VerticalDrag   = 0.98
	GroundFriction = 0.7
	JumpVelocity   = 0.5
	GroundAccel    = 0.1
	AirAccel       = 0.02

	// BodyWidth and BodyHeight are the walker box extents
	BodyWidth  = 0.6
	BodyHeight = 1.8

	// EyeHeight is the eye offset above the box bottom
	EyeHeight = 1.62

	// VoidDepth removes bodies that fall below it
	VoidDepth = -100.0

	// SpawnHeightAboveWorld is where reset bodies drop in from
	SpawnHeightAboveWorld = 10
)
