package render

import (
	"github.com/lixenwraith/vi-voxel/entity"
	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/vmath"
)

// headHeight is where the head band of a body starts, above its feet
const headHeight = 1.4

// Entities draws entity boxes, lit batch first, then unlit
type Entities struct{}

// Render implements Pass
func (Entities) Render(ctx Context, buf *Buffer) {
	for _, lit := range [2]bool{true, false} {
		for _, e := range ctx.Entities {
			if e.IsLit() != lit {
				continue
			}
			drawEntity(ctx, buf, e, lit)
		}
	}
}

func drawEntity(ctx Context, buf *Buffer, e entity.Entity, lit bool) {
	box := interpolatedBox(e, ctx.Partial)
	if box.Center().Sub(ctx.View.Eye).Len() > parameter.RenderDistance {
		return
	}

	body := ZombieLit
	if !lit {
		body = body.Scale(unlitFactor)
	}
	head := body.Scale(1.25)

	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			dir := ctx.Ray(x, y)
			t, ok := box.IntersectRay(ctx.View.Eye, dir)
			if !ok {
				continue
			}
			c := Cell{Rune: 'Z', Fg: body.Scale(0.5), Bg: body}
			if hy := ctx.View.Eye.Y() + dir.Y()*t; hy > box.MinY+headHeight {
				c = Cell{Rune: '@', Fg: RGBBlack, Bg: head}
			}
			if buf.Plot(x, y, t, c) {
				buf.SetHit(x, y, Hit{})
			}
		}
	}
}

// interpolatedBox shifts the current bounding volume to the interpolated render position
func interpolatedBox(e entity.Entity, partial float32) vmath.AABB {
	bv := e.BoundingVolume()
	pos := e.Interpolated(partial)
	return bv.Move(pos.X()-(bv.MinX+bv.MaxX)/2, pos.Y()-bv.MinY, pos.Z()-(bv.MinZ+bv.MaxZ)/2)
}
