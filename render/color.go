// Package render ray-casts the voxel scene into terminal cells
package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}

	SkyTop     = RGB{96, 140, 220}
	SkyHorizon = RGB{190, 210, 240}
	Fog        = RGB{170, 190, 220}
	HUDText    = RGB{235, 235, 235}
	HUDWarn    = RGB{255, 210, 80}
	ZombieLit  = RGB{90, 170, 80}
)

// Blend performs alpha blending: src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies every channel by f, clamped to 255
func (c RGB) Scale(f float64) RGB {
	return RGB{R: clamp(float64(c.R) * f), G: clamp(float64(c.G) * f), B: clamp(float64(c.B) * f)}
}

func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// ToTcell converts to a true-color tcell color
func (c RGB) ToTcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ParseColor reads a color name or #rrggbb string, falling back to def
func ParseColor(s string, def RGB) RGB {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return def
	}
	r, g, b := c.RGB()
	if r < 0 {
		return def
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}
