package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

type passEntry struct {
	pass     Pass
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator runs the render passes into one buffer and flushes it to the screen
type Orchestrator struct {
	screen   tcell.Screen
	buffer   *Buffer
	passes   []passEntry
	regCount int
	rays     []mgl32.Vec3
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen: screen,
		buffer: NewBuffer(w, h),
		passes: make([]passEntry, 0, 8),
	}
}

// Register adds a pass at priority; equal priorities keep registration order
func (o *Orchestrator) Register(p Pass, priority Priority) {
	entry := passEntry{pass: p, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.passes)
	for i, e := range o.passes {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}
	o.passes = append(o.passes, passEntry{})
	copy(o.passes[pos+1:], o.passes[pos:])
	o.passes[pos] = entry
}

// Buffer exposes the composed frame
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}

// RenderFrame composes all visible passes and flushes them to the screen
// Width and height in ctx are overwritten with the current screen size
func (o *Orchestrator) RenderFrame(ctx Context) {
	w, h := o.screen.Size()
	if bw, bh := o.buffer.Size(); bw != w || bh != h {
		o.buffer.Resize(w, h)
	} else {
		o.buffer.Clear()
	}
	ctx.Width, ctx.Height = w, h
	ctx.rays = o.castRays(ctx)

	for _, e := range o.passes {
		if vt, ok := e.pass.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		e.pass.Render(ctx, o.buffer)
	}
	o.buffer.Flush(o.screen)
}

func (o *Orchestrator) castRays(ctx Context) []mgl32.Vec3 {
	n := ctx.Width * ctx.Height
	if cap(o.rays) < n {
		o.rays = make([]mgl32.Vec3, n)
	}
	o.rays = o.rays[:n]
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			o.rays[y*ctx.Width+x] = ctx.View.Ray(float32(x)+0.5, float32(y)+0.5, ctx.Width, ctx.Height)
		}
	}
	return o.rays
}
