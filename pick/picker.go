package pick

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-voxel/camera"
	"github.com/lixenwraith/vi-voxel/parameter"
)

// Picker resolves the block face under the crosshair once per frame
type Picker struct {
	backend Backend
	buf     []uint32
	scale   float32
	log     *zap.Logger

	failures int
	last     Selection
}

// NewPicker creates a picker owning a select buffer of SelectBufferSize words
func NewPicker(b Backend, log *zap.Logger) *Picker {
	return &Picker{
		backend: b,
		buf:     make([]uint32, parameter.SelectBufferSize),
		scale:   parameter.PickScale,
		log:     log,
	}
}

// Pick casts the crosshair frustum of view on a width x height grid
// Backend errors are logged and reported as no hit
func (p *Picker) Pick(view camera.View, width, height int) (Result, bool) {
	px, py := camera.Center(width, height)
	f := view.PickFrustum(px, py, width, height, p.scale)

	hits, err := p.backend.Select(f, p.buf)
	if err != nil {
		p.failures++
		if p.failures == 1 {
			p.log.Warn("pick backend failed", zap.Error(err))
		} else {
			p.log.Debug("pick backend failed", zap.Error(err), zap.Int("failures", p.failures))
		}
		p.last = Selection{}
		return Result{}, false
	}
	if hits < 0 {
		p.log.Debug("select buffer overflow", zap.Int("size", len(p.buf)))
	}

	p.last = Decode(p.buf, hits)
	return p.last.Result()
}

// Failures returns the number of backend errors seen
func (p *Picker) Failures() int {
	return p.failures
}

// Last returns the selection decoded by the previous Pick
func (p *Picker) Last() Selection {
	return p.last
}
