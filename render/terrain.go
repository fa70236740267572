package render

import (
	"math"

	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/vmath"
	"github.com/lixenwraith/vi-voxel/world"
)

// Shadowed faces keep this share of their light
const unlitFactor = 0.6

// faceShade is the directional light per entered face, indexed by face id
var faceShade = [6]float64{
	vmath.FaceBottom: 0.55,
	vmath.FaceTop:    1.0,
	vmath.FaceNorth:  0.85,
	vmath.FaceSouth:  0.85,
	vmath.FaceWest:   0.7,
	vmath.FaceEast:   0.7,
}

// Terrain marches each cell's view ray to the first non-air block
type Terrain struct {
	palette  [256]RGB
	glyphs   [256]rune
	distance float32
}

// NewTerrain builds the material palette from catalog
func NewTerrain(catalog *world.Catalog) *Terrain {
	t := &Terrain{distance: parameter.RenderDistance}
	for i := range t.palette {
		t.palette[i] = RGB{255, 0, 255}
		t.glyphs[i] = '?'
	}
	for _, id := range catalog.IDs() {
		m := catalog.Get(id)
		t.palette[id] = ParseColor(m.Color, RGB{128, 128, 128})
		t.glyphs[id] = m.Rune()
	}
	return t
}

// Color returns the base color of material id
func (t *Terrain) Color(id uint8) RGB {
	return t.palette[id]
}

// Render implements Pass
func (t *Terrain) Render(ctx Context, buf *Buffer) {
	if ctx.Blocks == nil {
		return
	}
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			t.renderCell(ctx, buf, x, y)
		}
	}
}

func (t *Terrain) renderCell(ctx Context, buf *Buffer, sx, sy int) {
	dir := ctx.Ray(sx, sy)
	tr := vmath.NewVoxelTraverser(ctx.View.Eye, dir, t.distance)
	for tr.Next() {
		x, y, z := tr.Cell()
		m := ctx.Blocks.Block(x, y, z)
		if m == world.Air {
			continue
		}
		face := tr.Face()
		dist := tr.Distance()
		if face == vmath.FaceNone {
			// Eye inside a block
			buf.Plot(sx, sy, 0, Cell{Rune: ' ', Fg: RGBBlack, Bg: t.palette[m].Scale(0.2)})
			return
		}

		shade := faceShade[face]
		dx, dy, dz := vmath.FaceOffset(face)
		if !ctx.Blocks.IsLit(x+dx, y+dy, z+dz) {
			shade *= unlitFactor
		}
		base := t.palette[m].Scale(shade)

		fog := float64(dist / t.distance)
		fog *= fog
		bg := base.Blend(Fog, fog)
		fg := base.Scale(1.3).Blend(Fog, fog)

		if buf.Plot(sx, sy, dist, Cell{Rune: t.glyphs[m], Fg: fg, Bg: bg}) {
			buf.SetHit(sx, sy, Hit{X: x, Y: y, Z: z, Face: face, Valid: true})
		}
		return
	}

	buf.Set(sx, sy, Cell{Rune: ' ', Fg: RGBWhite, Bg: sky(float64(dir.Y()))})
}

// sky returns the background for a ray with vertical component dy
func sky(dy float64) RGB {
	if dy < 0 {
		return SkyHorizon.Blend(Fog.Scale(0.7), math.Min(-dy*2, 1))
	}
	return SkyHorizon.Blend(SkyTop, math.Min(dy*1.5, 1))
}

// Highlight pulses the picked block face
type Highlight struct{}

// Render implements Pass
func (Highlight) Render(ctx Context, buf *Buffer) {
	if !ctx.HasTarget {
		return
	}
	alpha := PulseAlpha(ctx.Time.UnixMilli())
	tg := ctx.Target
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			h := buf.HitAt(x, y)
			if !h.Valid || h.X != tg.X || h.Y != tg.Y || h.Z != tg.Z || h.Face != tg.Face {
				continue
			}
			c := buf.Get(x, y)
			c.Bg = c.Bg.Blend(RGBWhite, alpha)
			c.Fg = c.Fg.Blend(RGBWhite, alpha)
			buf.Set(x, y, c)
		}
	}
}

// PulseAlpha is the highlight strength at a wall-clock millisecond, in [0.2, 0.6]
func PulseAlpha(ms int64) float64 {
	return math.Sin(float64(ms)/100)*0.2 + 0.4
}
