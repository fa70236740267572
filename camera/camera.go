// Package camera projects between world space and terminal cells
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/parameter"
)

// View is a perspective camera at Eye looking along yaw/pitch (degrees)
// Yaw 0 looks toward -Z, positive yaw turns toward +X, positive pitch looks down
type View struct {
	Eye        mgl32.Vec3
	Yaw, Pitch float32

	// FovY is the vertical field of view in degrees
	FovY float32
	// CellAspect is terminal cell width over height
	CellAspect float32

	fwd, right, up mgl32.Vec3
	tanHalf        float32
}

// New builds a view with the default projection, pulled back by EyeOffset
func New(eye mgl32.Vec3, yaw, pitch float32) View {
	v := View{
		Yaw:        yaw,
		Pitch:      pitch,
		FovY:       parameter.FovDegrees,
		CellAspect: parameter.CellAspect,
	}
	v.basis()
	v.Eye = eye.Sub(v.fwd.Mul(parameter.EyeOffset))
	return v
}

func (v *View) basis() {
	y := float64(mgl32.DegToRad(v.Yaw))
	p := float64(mgl32.DegToRad(v.Pitch))
	sy, cy := math.Sincos(y)
	sp, cp := math.Sincos(p)

	v.fwd = mgl32.Vec3{float32(sy * cp), float32(-sp), float32(-cy * cp)}
	v.right = mgl32.Vec3{float32(cy), 0, float32(sy)}
	v.up = v.right.Cross(v.fwd)
	v.tanHalf = float32(math.Tan(float64(mgl32.DegToRad(v.FovY)) / 2))
}

// Forward returns the unit view direction
func (v View) Forward() mgl32.Vec3 {
	return v.fwd
}

// aspect returns the physical width/height ratio of a w x h cell grid
func (v View) aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) * v.CellAspect / float32(h)
}

// Ray returns the direction through screen point (px, py) of a w x h grid
// Points are in cell units; the center of cell (x, y) is (x+0.5, y+0.5)
func (v View) Ray(px, py float32, w, h int) mgl32.Vec3 {
	nx := 2*px/float32(w) - 1
	ny := 1 - 2*py/float32(h)
	dir := v.fwd.
		Add(v.right.Mul(nx * v.tanHalf * v.aspect(w, h))).
		Add(v.up.Mul(ny * v.tanHalf))
	return dir.Normalize()
}

// Frustum is a narrow pick volume: a center ray and the four corner rays
type Frustum struct {
	Origin mgl32.Vec3
	Rays   [5]mgl32.Vec3
}

// PickFrustum returns rays around screen point (px, py) spanning 1/scale of one cell
func (v View) PickFrustum(px, py float32, w, h int, scale float32) Frustum {
	half := 0.5 / scale
	return Frustum{
		Origin: v.Eye,
		Rays: [5]mgl32.Vec3{
			v.Ray(px, py, w, h),
			v.Ray(px-half, py-half, w, h),
			v.Ray(px+half, py-half, w, h),
			v.Ray(px-half, py+half, w, h),
			v.Ray(px+half, py+half, w, h),
		},
	}
}

// Project maps a world point to a cell of a w x h grid
// Returns the distance along the view direction; ok is false behind the camera or off screen
func (v View) Project(p mgl32.Vec3, w, h int) (x, y int, depth float32, ok bool) {
	d := p.Sub(v.Eye)
	depth = d.Dot(v.fwd)
	if depth <= 0.05 {
		return 0, 0, 0, false
	}
	nx := d.Dot(v.right) / (depth * v.tanHalf * v.aspect(w, h))
	ny := d.Dot(v.up) / (depth * v.tanHalf)

	fx := (nx + 1) / 2 * float32(w)
	fy := (1 - ny) / 2 * float32(h)
	if fx < 0 || fy < 0 || fx >= float32(w) || fy >= float32(h) {
		return 0, 0, depth, false
	}
	return int(fx), int(fy), depth, true
}

// Center returns the screen-space center of a w x h grid, where the crosshair sits
func Center(w, h int) (float32, float32) {
	return float32(w/2) + 0.5, float32(h/2) + 0.5
}
