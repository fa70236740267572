package render

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-voxel/camera"
	"github.com/lixenwraith/vi-voxel/entity"
	"github.com/lixenwraith/vi-voxel/particle"
	"github.com/lixenwraith/vi-voxel/pick"
)

// Blocks is the grid view terrain rays march through
type Blocks interface {
	Block(x, y, z int) uint8
	IsLit(x, y, z int) bool
}

// Context is the frame state handed to every pass, passed by value
type Context struct {
	View    camera.View
	Width   int
	Height  int
	Partial float32
	Time    time.Time
	Paused  bool

	Blocks    Blocks
	Entities  []entity.Entity
	Particles []*particle.Particle

	Target    pick.Result
	HasTarget bool

	// rays holds the normalized direction through each cell center, row-major
	rays []mgl32.Vec3
}

// Ray returns the cached view ray through cell (x, y)
func (c *Context) Ray(x, y int) mgl32.Vec3 {
	return c.rays[y*c.Width+x]
}
