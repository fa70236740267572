package render

import (
	"fmt"

	"github.com/lixenwraith/vi-voxel/status"
)

// Crosshair marks the screen center in a contrasting color
type Crosshair struct{}

// Render implements Pass
func (Crosshair) Render(ctx Context, buf *Buffer) {
	x, y := ctx.Width/2, ctx.Height/2
	c := buf.Get(x, y)
	fg := RGBWhite
	if luma(c.Bg) > 140 {
		fg = RGBBlack
	}
	buf.Set(x, y, Cell{Rune: '+', Fg: fg, Bg: c.Bg})
}

func luma(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// HUD prints the status lines in the top-left corner and the pause banner
type HUD struct {
	version string
	frame   *status.Frame
	visible bool
}

// NewHUD creates a visible HUD reading frame metrics
func NewHUD(version string, frame *status.Frame) *HUD {
	return &HUD{version: version, frame: frame, visible: true}
}

// Toggle flips HUD visibility
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// IsVisible implements VisibilityToggle
func (h *HUD) IsVisible() bool {
	return h.visible
}

// Lines returns the HUD text, top to bottom
func (h *HUD) Lines() []string {
	f := h.frame
	lines := []string{
		"vi-voxel " + h.version,
		fmt.Sprintf("%.0f fps, %d chunk updates", f.FPS.Get(), f.ChunkUpdates.Load()),
		"material: " + f.Material.Load(),
	}
	if o := f.Outcome.Load(); o != "" {
		lines = append(lines, "edit: "+o)
	}
	return lines
}

// Render implements Pass
func (h *HUD) Render(ctx Context, buf *Buffer) {
	for i, line := range h.Lines() {
		buf.Text(1, i, line, HUDText)
	}
	if ctx.Paused {
		const banner = "PAUSED - press p to resume"
		x := max((ctx.Width-len(banner))/2, 0)
		buf.Text(x, ctx.Height/2-2, banner, HUDWarn)
	}
}
