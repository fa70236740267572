package parameter

// Camera projection
const (
	// FovDegrees is the vertical field of view
	FovDegrees = 70.0

	// CellAspect is terminal cell width divided by height
	CellAspect = 0.5

	// EyeOffset pulls the camera back from the eye along the view direction
	EyeOffset = 0.3

	// TurnSensitivity scales look input into degrees
	TurnSensitivity = 0.15

	// LookStep is the look delta produced by one look key event
	LookStep = 40.0

	// MaxPitch clamps the camera pitch in degrees
	MaxPitch = 90.0
)

// Picking
const (
	// PickScale shrinks the pick frustum to 1/PickScale of one screen cell
	PickScale = 5

	// PickReach is the maximum distance along a pick ray
	PickReach = 5.0

	// PickRadius bounds picked blocks to a cube around the eye, in blocks
	PickRadius = 3

	// SelectBufferSize is the capacity of the raw hit record buffer (uint32 words)
	SelectBufferSize = 2000

	// MaxNames is the per-record name capacity retained by the decoder
	MaxNames = 10

	// RenderDistance is the maximum ray distance of the terminal renderer
	RenderDistance = 64.0
)
