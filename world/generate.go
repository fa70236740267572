package world

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/vi-voxel/parameter"
)

// Generate replaces the level contents with perlin terrain from seed
// Rock below, a dirt band, grass on the lit surface and scattered bushes
func (l *Level) Generate(seed int64) {
	l.reseed(seed)
	clear(l.blocks)

	surface := perlin.NewPerlin(parameter.TerrainAlpha, parameter.TerrainBeta, parameter.TerrainOctaves, seed)
	strata := perlin.NewPerlin(parameter.TerrainAlpha, parameter.TerrainBeta, parameter.TerrainOctaves, seed+1)

	mean := float64(l.Height) * parameter.TerrainSurfaceFrac
	relief := float64(l.Height) * parameter.TerrainAmplitude

	for x := 0; x < l.Width; x++ {
		for z := 0; z < l.Depth; z++ {
			fx, fz := float64(x)*parameter.TerrainScale, float64(z)*parameter.TerrainScale

			top := int(mean + surface.Noise2D(fx, fz)*relief)
			top = min(max(top, 1), l.Height-2)

			rockTop := top - parameter.TerrainDirtDepth + int(strata.Noise2D(fx*2, fz*2)*3)
			rockTop = min(max(rockTop, 0), top)

			for y := 0; y <= top; y++ {
				m := Dirt
				if y < rockTop {
					m = Rock
				}
				l.blocks[l.index(x, y, z)] = m
			}
		}
	}

	l.recalcLight()

	for x := 0; x < l.Width; x++ {
		for z := 0; z < l.Depth; z++ {
			y := l.lightDepths[x+z*l.Width]
			if l.blocks[l.index(x, y, z)] != Dirt || !l.IsLit(x, y, z) {
				continue
			}
			l.blocks[l.index(x, y, z)] = Grass
			if y+1 < l.Height && l.rng.IntN(parameter.BushChance) == 0 {
				l.blocks[l.index(x, y+1, z)] = Bush
			}
		}
	}

	l.unprocessed = 0
	l.markAll()
}

// SurfaceHeight returns the y just above the highest solid block of the column
func (l *Level) SurfaceHeight(x, z int) int {
	if x < 0 || z < 0 || x >= l.Width || z >= l.Depth {
		return 0
	}
	for y := l.Height - 1; y >= 0; y-- {
		if l.IsSolid(x, y, z) {
			return y + 1
		}
	}
	return 0
}
