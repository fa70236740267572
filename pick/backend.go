package pick

import (
	"errors"

	"github.com/lixenwraith/vi-voxel/camera"
)

// ErrSelectionUnavailable is returned by a backend that cannot run a selection pass
var ErrSelectionUnavailable = errors.New("pick: selection unavailable")

// Backend casts a narrow frustum and writes ordered hit records into buf
// It returns the number of records written, negative when buf overflowed
type Backend interface {
	Select(f camera.Frustum, buf []uint32) (int, error)
}

// recordWriter appends hit records to a fixed buffer
// On overflow the partial record is written up to the end of the buffer
type recordWriter struct {
	buf      []uint32
	pos      int
	hits     int
	overflow bool
}

func (w *recordWriter) put(v uint32) bool {
	if w.pos >= len(w.buf) {
		w.overflow = true
		return false
	}
	w.buf[w.pos] = v
	w.pos++
	return true
}

// record writes one record, returning false once the buffer is full
func (w *recordWriter) record(minDepth, maxDepth uint32, names ...uint32) bool {
	if w.overflow {
		return false
	}
	if !w.put(uint32(len(names))) || !w.put(minDepth) || !w.put(maxDepth) {
		return false
	}
	for _, n := range names {
		if !w.put(n) {
			return false
		}
	}
	w.hits++
	return true
}

// result returns the hit count in select-buffer convention
func (w *recordWriter) result() int {
	if w.overflow {
		return -1
	}
	return w.hits
}
