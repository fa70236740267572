package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIntersectsStrict(t *testing.T) {
	a := BlockAABB(0, 0, 0)

	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"overlap", NewAABB(0.5, 0.5, 0.5, 1.5, 1.5, 1.5), true},
		{"contained", NewAABB(0.25, 0.25, 0.25, 0.75, 0.75, 0.75), true},
		{"shared face", BlockAABB(1, 0, 0), false},
		{"shared edge", BlockAABB(1, 1, 0), false},
		{"shared corner", BlockAABB(1, 1, 1), false},
		{"disjoint", BlockAABB(3, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestNewAABBInvertedExtents(t *testing.T) {
	if debugChecks {
		assert.Panics(t, func() { NewAABB(1, 0, 0, 0, 1, 1) })
		return
	}
	b := NewAABB(1, 0, 2, 0, 1, 1)
	assert.Equal(t, AABB{MinX: 0, MinY: 0, MinZ: 1, MaxX: 1, MaxY: 1, MaxZ: 2}, b)
}

func TestCenteredAABB(t *testing.T) {
	b := CenteredAABB(mgl32.Vec3{10, 5, 10}, 0.6, 1.8)
	assert.InDelta(t, 9.7, b.MinX, 1e-6)
	assert.InDelta(t, 10.3, b.MaxX, 1e-6)
	assert.InDelta(t, 5, b.MinY, 1e-6)
	assert.InDelta(t, 6.8, b.MaxY, 1e-6)
	assert.InDelta(t, 10, b.Center().Z(), 1e-6)
}

func TestExpandAndGrow(t *testing.T) {
	b := BlockAABB(0, 0, 0)

	e := b.Expand(-2, 0.5, 0)
	assert.Equal(t, float32(-2), e.MinX)
	assert.Equal(t, float32(1), e.MaxX)
	assert.Equal(t, float32(1.5), e.MaxY)

	g := b.Grow(1, 1, 1)
	assert.Equal(t, AABB{MinX: -1, MinY: -1, MinZ: -1, MaxX: 2, MaxY: 2, MaxZ: 2}, g)
	assert.True(t, g.Contains(mgl32.Vec3{-1, 0.5, 2}))
	assert.False(t, g.Contains(mgl32.Vec3{-1.5, 0.5, 0.5}))

	shrunk := b.Grow(-1, 0, 0)
	assert.Equal(t, float32(0.5), shrunk.MinX)
	assert.Equal(t, float32(0.5), shrunk.MaxX)
}

func TestClipCollide(t *testing.T) {
	wall := BlockAABB(2, 0, 0)
	body := NewAABB(0, 0, 0, 1, 1, 1)

	// Moving toward the wall stops flush against it
	assert.Equal(t, float32(1), wall.ClipXCollide(body, 3))
	// Short moves are untouched
	assert.Equal(t, float32(0.5), wall.ClipXCollide(body, 0.5))
	// Moving away never clips
	assert.Equal(t, float32(-3), wall.ClipXCollide(body, -3))

	// No overlap on the other axes means no collision
	high := body.Move(0, 2, 0)
	assert.Equal(t, float32(3), wall.ClipXCollide(high, 3))

	floor := BlockAABB(0, -1, 0)
	falling := NewAABB(0.2, 0.5, 0.2, 0.8, 2.3, 0.8)
	assert.InDelta(t, -0.5, floor.ClipYCollide(falling, -2), 1e-6)

	front := BlockAABB(0, 0, -2)
	assert.Equal(t, float32(-1), front.ClipZCollide(body, -4))
}

func TestIntersectRay(t *testing.T) {
	b := BlockAABB(4, 0, 0)

	d, ok := b.IntersectRay(mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{1, 0, 0})
	assert.True(t, ok)
	assert.InDelta(t, 4, d, 1e-6)

	_, ok = b.IntersectRay(mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0})
	assert.False(t, ok)

	_, ok = b.IntersectRay(mgl32.Vec3{0, 3, 0.5}, mgl32.Vec3{1, 0, 0})
	assert.False(t, ok)

	// Origin inside the box reports zero distance
	d, ok = b.IntersectRay(mgl32.Vec3{4.5, 0.5, 0.5}, mgl32.Vec3{0, 1, 0})
	assert.True(t, ok)
	assert.Equal(t, float32(0), d)
}
