package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Hit records which block face a terrain ray stopped on
type Hit struct {
	X, Y, Z int
	Face    int
	Valid   bool
}

// Buffer is the frame compositor with a per-cell depth channel
type Buffer struct {
	cells  []Cell
	depth  []float32
	hits   []Hit
	width  int
	height int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is short
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float32, size)
		b.hits = make([]Hit, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
		b.hits = b.hits[:size]
	}
	b.width, b.height = width, height
	b.Clear()
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear blanks every cell and resets depth to infinity
func (b *Buffer) Clear() {
	inf := float32(math.Inf(1))
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack}
		b.depth[i] = inf
		b.hits[i] = Hit{}
	}
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Plot writes c at (x, y) if depth is nearer than what the cell holds
func (b *Buffer) Plot(x, y int, depth float32, c Cell) bool {
	if !b.inside(x, y) {
		return false
	}
	i := y*b.width + x
	if depth >= b.depth[i] {
		return false
	}
	b.depth[i] = depth
	b.cells[i] = c
	return true
}

// Set overwrites (x, y) ignoring depth
func (b *Buffer) Set(x, y int, c Cell) {
	if b.inside(x, y) {
		b.cells[y*b.width+x] = c
	}
}

// Get returns the cell at (x, y); out of range reads a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inside(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Depth returns the stored depth at (x, y)
func (b *Buffer) Depth(x, y int) float32 {
	if !b.inside(x, y) {
		return 0
	}
	return b.depth[y*b.width+x]
}

// SetHit records the terrain face seen through (x, y)
func (b *Buffer) SetHit(x, y int, h Hit) {
	if b.inside(x, y) {
		b.hits[y*b.width+x] = h
	}
}

// HitAt returns the terrain face seen through (x, y)
func (b *Buffer) HitAt(x, y int) Hit {
	if !b.inside(x, y) {
		return Hit{}
	}
	return b.hits[y*b.width+x]
}

// Text writes s left to right from (x, y), darkening the background under it
func (b *Buffer) Text(x, y int, s string, fg RGB) int {
	for _, r := range s {
		if !b.inside(x, y) {
			break
		}
		i := y*b.width + x
		b.cells[i].Rune = r
		b.cells[i].Fg = fg
		b.cells[i].Bg = b.cells[i].Bg.Scale(0.4)
		x++
	}
	return x
}

// Flush copies the buffer to screen; the caller presents with Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			style := tcell.StyleDefault.Foreground(c.Fg.ToTcell()).Background(c.Bg.ToTcell())
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
