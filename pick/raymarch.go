package pick

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/camera"
	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// Grid is the block view the ray backend marches through
type Grid interface {
	Block(x, y, z int) uint8
}

// RayBackend selects block faces by voxel ray marching on the CPU
// Every non-air block face a frustum ray enters within reach and radius emits a record
// named (x, y, z, face) with depth proportional to the distance along the ray
type RayBackend struct {
	grid   Grid
	reach  float32
	radius int
}

// NewRayBackend creates a backend with the default reach and pick radius
func NewRayBackend(g Grid) *RayBackend {
	return &RayBackend{grid: g, reach: parameter.PickReach, radius: parameter.PickRadius}
}

// Select implements Backend
func (b *RayBackend) Select(f camera.Frustum, buf []uint32) (int, error) {
	if b.grid == nil {
		return 0, ErrSelectionUnavailable
	}

	ox := int(math.Floor(float64(f.Origin.X())))
	oy := int(math.Floor(float64(f.Origin.Y())))
	oz := int(math.Floor(float64(f.Origin.Z())))
	r := float32(b.radius)
	bounds := vmath.BlockAABB(ox, oy, oz).Grow(r, r, r)

	w := recordWriter{buf: buf}
	for _, dir := range f.Rays {
		t := vmath.NewVoxelTraverser(f.Origin, dir, b.reach)
		for t.Next() {
			if t.Face() == vmath.FaceNone {
				continue
			}
			x, y, z := t.Cell()
			if !bounds.Contains(mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5}) {
				continue
			}
			if b.grid.Block(x, y, z) == 0 {
				continue
			}
			d := b.quantize(t.Distance())
			if !w.record(d, d, uint32(int32(x)), uint32(int32(y)), uint32(int32(z)), uint32(t.Face())) {
				return w.result(), nil
			}
		}
	}
	return w.result(), nil
}

// quantize maps a distance in [0, reach] onto the full uint32 range
func (b *RayBackend) quantize(d float32) uint32 {
	r := float64(d) / float64(b.reach)
	if r <= 0 {
		return 0
	}
	if r >= 1 {
		return math.MaxUint32
	}
	return uint32(r * math.MaxUint32)
}
