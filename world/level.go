package world

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// Listener is notified when a chunk needs rebuilding
type Listener interface {
	ChunkDirty(cx, cy, cz int)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(cx, cy, cz int)

// ChunkDirty calls f
func (f ListenerFunc) ChunkDirty(cx, cy, cz int) { f(cx, cy, cz) }

// Level is a fixed-size block grid; Y is vertical
// Owned by the frame loop, not safe for concurrent use
type Level struct {
	Width, Height, Depth int

	seed        int64
	blocks      []uint8
	lightDepths []int // per (x, z) column, y of the highest light blocker
	catalog     *Catalog
	rng         *rand.Rand

	unprocessed int
	listeners   []Listener
}

// NewLevel creates an empty (all air) level
func NewLevel(width, height, depth int, catalog *Catalog, seed int64) *Level {
	l := &Level{
		Width:       width,
		Height:      height,
		Depth:       depth,
		blocks:      make([]uint8, width*height*depth),
		lightDepths: make([]int, width*depth),
		catalog:     catalog,
	}
	l.reseed(seed)
	return l
}

func (l *Level) reseed(seed int64) {
	l.seed = seed
	l.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Seed returns the seed the level was generated from
func (l *Level) Seed() int64 {
	return l.seed
}

// Catalog returns the material catalog
func (l *Level) Catalog() *Catalog {
	return l.catalog
}

// AddListener registers l for chunk notifications
func (l *Level) AddListener(ls Listener) {
	l.listeners = append(l.listeners, ls)
}

// InBounds reports whether (x, y, z) lies inside the grid
func (l *Level) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < l.Width && y < l.Height && z < l.Depth
}

func (l *Level) index(x, y, z int) int {
	return (y*l.Depth+z)*l.Width + x
}

// Block returns the material at (x, y, z), air outside the grid
func (l *Level) Block(x, y, z int) uint8 {
	if !l.InBounds(x, y, z) {
		return Air
	}
	return l.blocks[l.index(x, y, z)]
}

// SetBlock writes material m at (x, y, z) and reports whether the world changed
// Out of bounds writes and writes of the existing material are rejected
func (l *Level) SetBlock(x, y, z int, m uint8) bool {
	if !l.InBounds(x, y, z) {
		return false
	}
	i := l.index(x, y, z)
	if l.blocks[i] == m {
		return false
	}
	l.blocks[i] = m

	if lo, hi, changed := l.recalcColumn(x, z); changed {
		l.markRegion(x-1, lo, z-1, x+1, hi, z+1)
	}
	l.MarkDirtyNear(x, y, z)
	return true
}

// IsSolid reports whether the block at (x, y, z) collides
func (l *Level) IsSolid(x, y, z int) bool {
	return l.catalog.IsSolid(l.Block(x, y, z))
}

// IsLightBlocker reports whether the block at (x, y, z) casts shadow
func (l *Level) IsLightBlocker(x, y, z int) bool {
	return l.IsSolid(x, y, z)
}

// IsLit reports whether (x, y, z) is at or above the column's highest light blocker
// Cells outside the grid are lit
func (l *Level) IsLit(x, y, z int) bool {
	if !l.InBounds(x, y, z) {
		return true
	}
	return y >= l.lightDepths[x+z*l.Width]
}

// Cubes returns the boxes of solid blocks overlapping box
// Cells outside the grid never collide
func (l *Level) Cubes(box vmath.AABB) []vmath.AABB {
	x0, x1 := clampRange(box.MinX, box.MaxX, l.Width)
	y0, y1 := clampRange(box.MinY, box.MaxY, l.Height)
	z0, z1 := clampRange(box.MinZ, box.MaxZ, l.Depth)

	var cubes []vmath.AABB
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				if l.IsSolid(x, y, z) {
					cubes = append(cubes, vmath.BlockAABB(x, y, z))
				}
			}
		}
	}
	return cubes
}

func clampRange(lo, hi float32, size int) (int, int) {
	a := int(math.Floor(float64(lo)))
	b := int(math.Floor(float64(hi))) + 1
	if a < 0 {
		a = 0
	}
	if b > size {
		b = size
	}
	return a, b
}

// BoundingVolume returns the box material m would occupy at (x, y, z)
// Non-solid materials have no volume
func (l *Level) BoundingVolume(m uint8, x, y, z int) (vmath.AABB, bool) {
	if !l.catalog.IsSolid(m) {
		return vmath.AABB{}, false
	}
	return vmath.BlockAABB(x, y, z), true
}

// MarkDirtyNear notifies listeners of every chunk touching the 3x3x3 cells around (x, y, z)
func (l *Level) MarkDirtyNear(x, y, z int) {
	l.markRegion(x-1, y-1, z-1, x+1, y+1, z+1)
}

func (l *Level) markRegion(x0, y0, z0, x1, y1, z1 int) {
	cx0, cy0, cz0 := l.chunkOf(x0, y0, z0)
	cx1, cy1, cz1 := l.chunkOf(x1, y1, z1)
	for cx := cx0; cx <= cx1; cx++ {
		for cy := cy0; cy <= cy1; cy++ {
			for cz := cz0; cz <= cz1; cz++ {
				for _, ls := range l.listeners {
					ls.ChunkDirty(cx, cy, cz)
				}
			}
		}
	}
}

// chunkOf returns the chunk containing the cell, clamped to the grid
func (l *Level) chunkOf(x, y, z int) (int, int, int) {
	x = min(max(x, 0), l.Width-1)
	y = min(max(y, 0), l.Height-1)
	z = min(max(z, 0), l.Depth-1)
	cs := parameter.ChunkSize
	return x / cs, y / cs, z / cs
}

// recalcColumn recomputes one light column and returns the affected y range
func (l *Level) recalcColumn(x, z int) (lo, hi int, changed bool) {
	i := x + z*l.Width
	old := l.lightDepths[i]
	y := l.Height - 1
	for y > 0 && !l.IsLightBlocker(x, y, z) {
		y--
	}
	l.lightDepths[i] = y
	if y == old {
		return 0, 0, false
	}
	return min(old, y), max(old, y), true
}

// recalcLight recomputes every light column without notification
func (l *Level) recalcLight() {
	for x := 0; x < l.Width; x++ {
		for z := 0; z < l.Depth; z++ {
			l.recalcColumn(x, z)
		}
	}
}

// markAll notifies every chunk in the level
func (l *Level) markAll() {
	l.markRegion(0, 0, 0, l.Width-1, l.Height-1, l.Depth-1)
}

// Tick runs the random block updates for one simulation step
func (l *Level) Tick() {
	l.unprocessed += l.Width * l.Height * l.Depth
	n := l.unprocessed / parameter.RandomTickDivisor
	l.unprocessed -= n * parameter.RandomTickDivisor

	for i := 0; i < n; i++ {
		x, y, z := l.rng.IntN(l.Width), l.rng.IntN(l.Height), l.rng.IntN(l.Depth)
		if m := l.catalog.Get(l.Block(x, y, z)); m != nil && m.Ticks() {
			l.tickBlock(x, y, z, m)
		}
	}
}

func (l *Level) tickBlock(x, y, z int, m *Material) {
	if m.NeedsLight && !l.IsLit(x, y, z) {
		l.SetBlock(x, y, z, Air)
		return
	}
	if len(m.Soil) > 0 && !slices.Contains(m.Soil, l.Block(x, y-1, z)) {
		l.SetBlock(x, y, z, Air)
		return
	}
	if m.DecaysTo != 0 && !l.IsLit(x, y, z) {
		l.SetBlock(x, y, z, m.DecaysTo)
		return
	}
	if m.SpreadsTo != 0 {
		for i := 0; i < parameter.GrassSpreadTries; i++ {
			xt := x + l.rng.IntN(3) - 1
			yt := y + l.rng.IntN(5) - 3
			zt := z + l.rng.IntN(3) - 1
			if l.Block(xt, yt, zt) == m.SpreadsTo && l.IsLit(xt, yt, zt) {
				l.SetBlock(xt, yt, zt, m.ID)
			}
		}
	}
}

// Size returns the grid dimensions
func (l *Level) Size() (width, height, depth int) {
	return l.Width, l.Height, l.Depth
}
