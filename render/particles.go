package render

import (
	"github.com/lixenwraith/vi-voxel/parameter"
)

// Particles projects debris as single glyphs
type Particles struct {
	terrain *Terrain
}

// NewParticles uses the material palette of terrain
func NewParticles(terrain *Terrain) *Particles {
	return &Particles{terrain: terrain}
}

// Render implements Pass
func (p *Particles) Render(ctx Context, buf *Buffer) {
	const half = parameter.ParticleSize / 2
	for _, pt := range ctx.Particles {
		pos := pt.Body.Interpolated(ctx.Partial)
		pos[0] += half
		pos[1] += half
		pos[2] += half

		x, y, depth, ok := ctx.View.Project(pos, ctx.Width, ctx.Height)
		if !ok || depth > parameter.RenderDistance {
			continue
		}
		under := buf.Get(x, y)
		color := p.terrain.Color(pt.Material)
		if buf.Plot(x, y, depth, Cell{Rune: '▪', Fg: color, Bg: under.Bg}) {
			buf.SetHit(x, y, Hit{})
		}
	}
}
