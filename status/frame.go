package status

import "sync/atomic"

// Metric keys
const (
	KeyFPS          = "fps"
	KeyTicks        = "ticks"
	KeyDroppedTicks = "ticks_dropped"
	KeyChunkUpdates = "chunk_updates"
	KeyEntities     = "entities"
	KeyParticles    = "particles"
	KeyPicks        = "picks"
	KeyPickFailures = "pick_failures"
	KeyEdits        = "edits"
	KeyOutcome      = "last_edit"
	KeyMaterial     = "material"
)

// Frame caches the pointers the frame loop writes each frame
type Frame struct {
	FPS          *AtomicFloat
	Ticks        *atomic.Int64
	DroppedTicks *atomic.Int64
	ChunkUpdates *atomic.Int64
	Entities     *atomic.Int64
	Particles    *atomic.Int64
	Picks        *atomic.Int64
	PickFailures *atomic.Int64
	Edits        *atomic.Int64
	Outcome      *AtomicString
	Material     *AtomicString
}

// NewFrame registers the frame metrics in r
func NewFrame(r *Registry) *Frame {
	return &Frame{
		FPS:          r.Floats.Get(KeyFPS),
		Ticks:        r.Ints.Get(KeyTicks),
		DroppedTicks: r.Ints.Get(KeyDroppedTicks),
		ChunkUpdates: r.Ints.Get(KeyChunkUpdates),
		Entities:     r.Ints.Get(KeyEntities),
		Particles:    r.Ints.Get(KeyParticles),
		Picks:        r.Ints.Get(KeyPicks),
		PickFailures: r.Ints.Get(KeyPickFailures),
		Edits:        r.Ints.Get(KeyEdits),
		Outcome:      r.Strings.Get(KeyOutcome),
		Material:     r.Strings.Get(KeyMaterial),
	}
}
