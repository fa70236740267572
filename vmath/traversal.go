package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Block face ids, ordered as the adjacent-cell offsets they name
const (
	FaceNone   = -1
	FaceBottom = 0 // Y-1
	FaceTop    = 1 // Y+1
	FaceNorth  = 2 // Z-1
	FaceSouth  = 3 // Z+1
	FaceWest   = 4 // X-1
	FaceEast   = 5 // X+1
)

var faceOffsets = [6][3]int{
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
	{-1, 0, 0}, {1, 0, 0},
}

// FaceOffset returns the cell delta from a block to its neighbour across face
// Unknown faces yield a zero offset
func FaceOffset(face int) (dx, dy, dz int) {
	if face < 0 || face >= len(faceOffsets) {
		return 0, 0, 0
	}
	o := faceOffsets[face]
	return o[0], o[1], o[2]
}

// VoxelTraverser is a zero-allocation iterator over the unit cells a ray passes through
// The first cell is the one containing the origin and reports FaceNone
type VoxelTraverser struct {
	x, y, z             int
	stepX, stepY, stepZ int

	tMaxX, tMaxY, tMaxZ       float64
	tDeltaX, tDeltaY, tDeltaZ float64

	maxDist float64
	dist    float64
	face    int

	started bool
	done    bool
}

// NewVoxelTraverser starts a traversal at origin along dir for at most maxDist world units
// dir is normalized internally; a zero direction yields only the origin cell
func NewVoxelTraverser(origin, dir mgl32.Vec3, maxDist float32) VoxelTraverser {
	ox, oy, oz := float64(origin.X()), float64(origin.Y()), float64(origin.Z())
	t := VoxelTraverser{
		x:       int(math.Floor(ox)),
		y:       int(math.Floor(oy)),
		z:       int(math.Floor(oz)),
		maxDist: float64(maxDist),
		face:    FaceNone,
	}

	length := float64(dir.Len())
	if length == 0 {
		t.tMaxX, t.tMaxY, t.tMaxZ = math.Inf(1), math.Inf(1), math.Inf(1)
		return t
	}
	dx, dy, dz := float64(dir.X())/length, float64(dir.Y())/length, float64(dir.Z())/length

	t.stepX, t.tMaxX, t.tDeltaX = axisSetup(ox, dx)
	t.stepY, t.tMaxY, t.tDeltaY = axisSetup(oy, dy)
	t.stepZ, t.tMaxZ, t.tDeltaZ = axisSetup(oz, dz)
	return t
}

// axisSetup returns the step sign, distance to the first boundary and distance per cell
func axisSetup(o, d float64) (step int, tMax, tDelta float64) {
	switch {
	case d > 0:
		return 1, (math.Floor(o) + 1 - o) / d, 1 / d
	case d < 0:
		return -1, (o - math.Floor(o)) / -d, -1 / d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// Next advances to the next cell
// Returns false once the ray has travelled past its maximum distance
func (t *VoxelTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	switch {
	case t.tMaxX < t.tMaxY && t.tMaxX < t.tMaxZ:
		t.dist = t.tMaxX
		t.x += t.stepX
		t.tMaxX += t.tDeltaX
		if t.stepX > 0 {
			t.face = FaceWest
		} else {
			t.face = FaceEast
		}
	case t.tMaxY < t.tMaxZ:
		t.dist = t.tMaxY
		t.y += t.stepY
		t.tMaxY += t.tDeltaY
		if t.stepY > 0 {
			t.face = FaceBottom
		} else {
			t.face = FaceTop
		}
	default:
		t.dist = t.tMaxZ
		t.z += t.stepZ
		t.tMaxZ += t.tDeltaZ
		if t.stepZ > 0 {
			t.face = FaceNorth
		} else {
			t.face = FaceSouth
		}
	}

	if math.IsInf(t.dist, 1) || t.dist > t.maxDist {
		t.done = true
		return false
	}
	return true
}

// Cell returns the current cell coordinates
func (t *VoxelTraverser) Cell() (x, y, z int) {
	return t.x, t.y, t.z
}

// Face returns the face of the current cell the ray entered through
func (t *VoxelTraverser) Face() int {
	return t.face
}

// Distance returns the distance from the origin to the entry point of the current cell
func (t *VoxelTraverser) Distance() float32 {
	return float32(t.dist)
}
