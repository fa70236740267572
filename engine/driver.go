package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-voxel/camera"
	"github.com/lixenwraith/vi-voxel/core"
	"github.com/lixenwraith/vi-voxel/edit"
	"github.com/lixenwraith/vi-voxel/entity"
	"github.com/lixenwraith/vi-voxel/input"
	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/particle"
	"github.com/lixenwraith/vi-voxel/pick"
	"github.com/lixenwraith/vi-voxel/render"
	"github.com/lixenwraith/vi-voxel/status"
	"github.com/lixenwraith/vi-voxel/world"
)

// Options configures a Driver; zero values take the parameter defaults
type Options struct {
	Screen   tcell.Screen
	Level    *world.Level
	Time     TimeSource
	Log      *zap.Logger
	Registry *status.Registry
	Keys     *input.KeyTable
	Seed     uint64

	TickRateHz       float64
	MaxTicksPerFrame int
	FrameRateCap     int
	KeyHoldTicks     int
	InvertY          bool
	Zombies          int
	SavePath         string // empty disables saving
	Version          string
}

func (o *Options) withDefaults() {
	if o.Time == nil {
		o.Time = NewSystemTime()
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Registry == nil {
		o.Registry = status.NewRegistry()
	}
	if o.TickRateHz <= 0 {
		o.TickRateHz = parameter.TickRateHz
	}
	if o.MaxTicksPerFrame <= 0 {
		o.MaxTicksPerFrame = parameter.MaxTicksPerFrame
	}
	if o.FrameRateCap <= 0 {
		o.FrameRateCap = parameter.FrameRateCap
	}
	if o.Version == "" {
		o.Version = parameter.Version
	}
}

// Driver is the frame loop: input, fixed-step ticks, picking, edits, render
// Everything it owns is touched only from the goroutine running Run or Frame
type Driver struct {
	screen    tcell.Screen
	events    chan tcell.Event
	time      TimeSource
	clock     *SimClock
	sim       *Simulation
	input     *input.State
	picker    *pick.Picker
	resolver  *edit.Resolver
	render    *render.Orchestrator
	level     *world.Level
	particles *particle.Engine
	player    *entity.Player
	frame     *status.Frame
	registry  *status.Registry
	log       *zap.Logger
	rng       *rand.Rand

	savePath string
	frameDur time.Duration

	target    pick.Result
	hasTarget bool
	partial   float32

	// dirty collects chunks marked during the current frame; each counts as one rebuild
	dirty     map[[3]int]struct{}
	rebuilds  int
	fpsFrames int
	fpsStart  time.Time
}

// NewDriver wires the simulation, picker, resolver and renderer around a level and screen
func NewDriver(opts Options) *Driver {
	opts.withDefaults()
	now := opts.Time.Now()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5851f42d4c957f2d))

	d := &Driver{
		screen:   opts.Screen,
		events:   make(chan tcell.Event, parameter.EventChannelSize),
		time:     opts.Time,
		clock:    NewSimClock(opts.TickRateHz, opts.MaxTicksPerFrame, now),
		input:    input.NewState(opts.Keys),
		level:    opts.Level,
		frame:    status.NewFrame(opts.Registry),
		registry: opts.Registry,
		log:      opts.Log,
		rng:      rng,
		savePath: opts.SavePath,
		frameDur: time.Second / time.Duration(opts.FrameRateCap),
		dirty:    make(map[[3]int]struct{}),
		fpsStart: now,
	}
	d.input.SetInvertY(opts.InvertY)
	d.input.SetHoldTicks(opts.KeyHoldTicks)

	d.particles = particle.NewEngine(d.level, rng)
	d.player = entity.NewPlayer(d.level, rng)
	d.sim = NewSimulation(d.level, d.particles, d.player)
	d.picker = pick.NewPicker(pick.NewRayBackend(d.level), d.log)
	d.resolver = edit.NewResolver(d.level, d.sim, d.particles.Burst, d.log)
	d.level.AddListener(world.ListenerFunc(func(cx, cy, cz int) {
		d.dirty[[3]int{cx, cy, cz}] = struct{}{}
	}))

	d.render = render.NewOrchestrator(d.screen)
	terrain := render.NewTerrain(d.level.Catalog())
	d.render.Register(terrain, render.PriorityTerrain)
	d.render.Register(render.Highlight{}, render.PriorityHighlight)
	d.render.Register(render.Entities{}, render.PriorityEntities)
	d.render.Register(render.NewParticles(terrain), render.PriorityParticles)
	d.render.Register(render.Crosshair{}, render.PriorityCrosshair)
	d.render.Register(render.NewHUD(opts.Version, d.frame), render.PriorityHUD)

	for i := 0; i < opts.Zombies; i++ {
		d.spawnZombie(d.randomDrop())
	}
	return d
}

// Input exposes the latched input state
func (d *Driver) Input() *input.State { return d.input }

// Simulation exposes the tick orchestrator
func (d *Driver) Simulation() *Simulation { return d.sim }

// Player exposes the player entity
func (d *Driver) Player() *entity.Player { return d.player }

// Particles exposes the particle engine
func (d *Driver) Particles() *particle.Engine { return d.particles }

// Target returns the block face picked by the last frame
func (d *Driver) Target() (pick.Result, bool) { return d.target, d.hasTarget }

// Run polls terminal events and runs frames until ctx is cancelled or quit is requested
// The level is saved on the way out
func (d *Driver) Run(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case d.events <- ev:
			case <-done:
				return
			}
		}
	})

	d.log.Info("frame loop started",
		zap.Int("entities", len(d.sim.Entities())),
		zap.Float64("tick_rate_hz", d.clock.Rate()),
		zap.Duration("frame", d.frameDur),
	)
	for ctx.Err() == nil {
		if !d.Frame() {
			break
		}
	}

	d.save()
	d.log.Info("frame loop stopped", d.registry.Fields()...)
}

// Frame runs one frame and reports whether the loop should continue
func (d *Driver) Frame() bool {
	if d.input.Quit() {
		return false
	}
	start := d.time.Now()

	d.drainEvents()
	d.runCommands()

	if d.input.Paused() {
		// Requests queued ahead of the pause key in the same drain belong to no frame
		d.input.TakeEdits()
		d.input.TakeLook()
		d.draw(start)
		d.time.Sleep(parameter.PauseSleep)
		d.clock.Reset(d.time.Now())
		return true
	}

	steps, partial := d.clock.Advance(start)
	for i := 0; i < steps; i++ {
		d.sim.Tick(d.input.Snapshot())
		d.input.Step()
	}
	d.partial = float32(partial)

	dx, dy := d.input.TakeLook()
	d.player.Turn(dx, dy)

	d.pick()
	for _, req := range d.input.TakeEdits() {
		out := d.resolver.Resolve(req, d.target, d.hasTarget)
		d.frame.Edits.Add(1)
		d.frame.Outcome.Store(out.String())
		if out == edit.Broken || out == edit.Placed {
			d.pick()
		}
	}

	d.draw(start)
	d.pace(start)
	d.updateMetrics()
	return true
}

func (d *Driver) drainEvents() {
	for {
		select {
		case ev := <-d.events:
			d.handleEvent(ev)
		default:
			return
		}
	}
}

func (d *Driver) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventError:
		d.log.Error("terminal event error", zap.Error(ev))
		d.input.RequestQuit()
	default:
		d.input.HandleEvent(ev)
	}
}

// runCommands applies the one-shot commands that do not wait for a tick
func (d *Driver) runCommands() {
	if d.input.TakeSave() {
		d.save()
	}
	for n := d.input.TakeSpawns(); n > 0; n-- {
		d.spawnZombie(d.player.Body().Pos)
	}
	d.frame.Material.Store(d.level.Catalog().Name(d.input.Material()))
}

func (d *Driver) view() camera.View {
	yaw, pitch := d.player.Heading()
	return camera.New(d.player.Eye(d.partial), yaw, pitch)
}

func (d *Driver) pick() {
	w, h := d.screen.Size()
	d.target, d.hasTarget = d.picker.Pick(d.view(), w, h)
	d.frame.Picks.Add(1)
}

func (d *Driver) draw(now time.Time) {
	d.render.RenderFrame(render.Context{
		View:      d.view(),
		Partial:   d.partial,
		Time:      now,
		Paused:    d.input.Paused(),
		Blocks:    d.level,
		Entities:  d.sim.Entities(),
		Particles: d.particles.Particles(),
		Target:    d.target,
		HasTarget: d.hasTarget,
	})
	d.screen.Show()
}

// pace sleeps out the rest of the frame budget
func (d *Driver) pace(start time.Time) {
	if left := d.frameDur - d.time.Now().Sub(start); left > 0 {
		d.time.Sleep(left)
	}
}

func (d *Driver) updateMetrics() {
	f := d.frame
	f.Ticks.Store(int64(d.sim.Ticks()))
	f.DroppedTicks.Store(int64(d.clock.Dropped()))
	f.Entities.Store(int64(len(d.sim.Entities())))
	f.Particles.Store(int64(d.particles.Len()))
	f.PickFailures.Store(int64(d.picker.Failures()))

	d.rebuilds += len(d.dirty)
	clear(d.dirty)

	d.fpsFrames++
	now := d.time.Now()
	if elapsed := now.Sub(d.fpsStart); elapsed >= parameter.FpsWindow {
		f.FPS.Set(float64(d.fpsFrames) / elapsed.Seconds())
		f.ChunkUpdates.Store(int64(d.rebuilds))
		d.log.Debug("frame stats",
			zap.Int("frames", d.fpsFrames),
			zap.Int("chunk_updates", d.rebuilds),
			zap.Int("entities", len(d.sim.Entities())),
		)
		d.fpsFrames = 0
		d.fpsStart = now
		d.rebuilds = 0
	}
}

// randomDrop returns a spawn point above a random column
func (d *Driver) randomDrop() mgl32.Vec3 {
	w, h, depth := d.level.Size()
	return mgl32.Vec3{
		d.rng.Float32() * float32(w),
		float32(h + parameter.SpawnHeightAboveWorld),
		d.rng.Float32() * float32(depth),
	}
}

func (d *Driver) spawnZombie(pos mgl32.Vec3) {
	d.sim.AddEntity(entity.NewZombie(d.level, pos, d.rng))
}

// save writes the level; failures are logged and shown, never fatal
func (d *Driver) save() {
	if d.savePath == "" {
		return
	}
	if err := d.level.Save(d.savePath); err != nil {
		d.log.Warn("level save failed", zap.String("path", d.savePath), zap.Error(err))
		d.frame.Outcome.Store("save failed")
		return
	}
	d.log.Info("level saved", zap.String("path", d.savePath))
	d.frame.Outcome.Store("saved")
}
