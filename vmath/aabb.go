package vmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box in world units (one block = 1.0)
// Invariant: Min <= Max on every axis
type AABB struct {
	MinX, MinY, MinZ float32
	MaxX, MaxY, MaxZ float32
}

// NewAABB builds a box from two corners
// Inverted extents panic in debug builds and are swapped in release builds
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	if minX > maxX || minY > maxY || minZ > maxZ {
		if debugChecks {
			panic(fmt.Sprintf("vmath: inverted AABB extents (%g,%g,%g)-(%g,%g,%g)", minX, minY, minZ, maxX, maxY, maxZ))
		}
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if minZ > maxZ {
			minZ, maxZ = maxZ, minZ
		}
	}
	return AABB{MinX: minX, MinY: minY, MinZ: minZ, MaxX: maxX, MaxY: maxY, MaxZ: maxZ}
}

// BlockAABB returns the unit cube occupying cell (x, y, z)
func BlockAABB(x, y, z int) AABB {
	fx, fy, fz := float32(x), float32(y), float32(z)
	return AABB{MinX: fx, MinY: fy, MinZ: fz, MaxX: fx + 1, MaxY: fy + 1, MaxZ: fz + 1}
}

// CenteredAABB builds a box of the given width and height whose bottom center is at pos
func CenteredAABB(pos mgl32.Vec3, width, height float32) AABB {
	w := width / 2
	return AABB{
		MinX: pos.X() - w, MinY: pos.Y(), MinZ: pos.Z() - w,
		MaxX: pos.X() + w, MaxY: pos.Y() + height, MaxZ: pos.Z() + w,
	}
}

// Intersects reports strict overlap: boxes sharing only a face, edge or corner do not intersect
func (b AABB) Intersects(c AABB) bool {
	return c.MaxX > b.MinX && c.MinX < b.MaxX &&
		c.MaxY > b.MinY && c.MinY < b.MaxY &&
		c.MaxZ > b.MinZ && c.MinZ < b.MaxZ
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX &&
		p.Y() >= b.MinY && p.Y() <= b.MaxY &&
		p.Z() >= b.MinZ && p.Z() <= b.MaxZ
}

// Move returns the box translated by (dx, dy, dz)
func (b AABB) Move(dx, dy, dz float32) AABB {
	return AABB{
		MinX: b.MinX + dx, MinY: b.MinY + dy, MinZ: b.MinZ + dz,
		MaxX: b.MaxX + dx, MaxY: b.MaxY + dy, MaxZ: b.MaxZ + dz,
	}
}

// Expand sweeps the box along a motion vector, growing only on the side of motion
func (b AABB) Expand(dx, dy, dz float32) AABB {
	r := b
	if dx < 0 {
		r.MinX += dx
	} else {
		r.MaxX += dx
	}
	if dy < 0 {
		r.MinY += dy
	} else {
		r.MaxY += dy
	}
	if dz < 0 {
		r.MinZ += dz
	} else {
		r.MaxZ += dz
	}
	return r
}

// Grow pads the box symmetrically; negative padding is clamped at the center
func (b AABB) Grow(dx, dy, dz float32) AABB {
	r := AABB{
		MinX: b.MinX - dx, MinY: b.MinY - dy, MinZ: b.MinZ - dz,
		MaxX: b.MaxX + dx, MaxY: b.MaxY + dy, MaxZ: b.MaxZ + dz,
	}
	if r.MinX > r.MaxX {
		c := (b.MinX + b.MaxX) / 2
		r.MinX, r.MaxX = c, c
	}
	if r.MinY > r.MaxY {
		c := (b.MinY + b.MaxY) / 2
		r.MinY, r.MaxY = c, c
	}
	if r.MinZ > r.MaxZ {
		c := (b.MinZ + b.MaxZ) / 2
		r.MinZ, r.MaxZ = c, c
	}
	return r
}

// Center returns the box midpoint
func (b AABB) Center() mgl32.Vec3 {
	return mgl32.Vec3{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2, (b.MinZ + b.MaxZ) / 2}
}

// ClipXCollide limits motion dx of moving box c so it does not enter static box b
// Boxes not overlapping on Y and Z never collide on X
func (b AABB) ClipXCollide(c AABB, dx float32) float32 {
	if c.MaxY <= b.MinY || c.MinY >= b.MaxY {
		return dx
	}
	if c.MaxZ <= b.MinZ || c.MinZ >= b.MaxZ {
		return dx
	}
	if dx > 0 && c.MaxX <= b.MinX {
		if limit := b.MinX - c.MaxX; limit < dx {
			dx = limit
		}
	}
	if dx < 0 && c.MinX >= b.MaxX {
		if limit := b.MaxX - c.MinX; limit > dx {
			dx = limit
		}
	}
	return dx
}

// ClipYCollide is ClipXCollide on the vertical axis
func (b AABB) ClipYCollide(c AABB, dy float32) float32 {
	if c.MaxX <= b.MinX || c.MinX >= b.MaxX {
		return dy
	}
	if c.MaxZ <= b.MinZ || c.MinZ >= b.MaxZ {
		return dy
	}
	if dy > 0 && c.MaxY <= b.MinY {
		if limit := b.MinY - c.MaxY; limit < dy {
			dy = limit
		}
	}
	if dy < 0 && c.MinY >= b.MaxY {
		if limit := b.MaxY - c.MinY; limit > dy {
			dy = limit
		}
	}
	return dy
}

// ClipZCollide is ClipXCollide on the Z axis
func (b AABB) ClipZCollide(c AABB, dz float32) float32 {
	if c.MaxX <= b.MinX || c.MinX >= b.MaxX {
		return dz
	}
	if c.MaxY <= b.MinY || c.MinY >= b.MaxY {
		return dz
	}
	if dz > 0 && c.MaxZ <= b.MinZ {
		if limit := b.MinZ - c.MaxZ; limit < dz {
			dz = limit
		}
	}
	if dz < 0 && c.MinZ >= b.MaxZ {
		if limit := b.MaxZ - c.MinZ; limit > dz {
			dz = limit
		}
	}
	return dz
}

// IntersectRay runs a slab test and returns the entry distance along dir
// dir need not be normalized; t is in units of dir
func (b AABB) IntersectRay(origin, dir mgl32.Vec3) (t float32, ok bool) {
	tMin, tMax := float32(0), float32(1e30)
	mins := [3]float32{b.MinX, b.MinY, b.MinZ}
	maxs := [3]float32{b.MaxX, b.MaxY, b.MaxZ}
	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		if d == 0 {
			if o < mins[axis] || o > maxs[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t0 := (mins[axis] - o) * inv
		t1 := (maxs[axis] - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
