package core

import (
	"time"

	"github.com/charmbracelet/log"
)

// Driver turns host frame callbacks into fixed-size simulation steps. It owns
// the world for its whole life and must only be used from the host's frame
// thread.
type Driver struct {
	world *World
	deps  Deps
	input *Input
	clock Clock
	log   *log.Logger

	last time.Time
	snap Snapshot
}

// NewDriver wires a driver to its collaborators. The driver starts stopped.
func NewDriver(w *World, deps Deps) *Driver {
	d := &Driver{
		world: w,
		deps:  deps,
		input: deps.Input,
		clock: deps.Clock,
		log:   deps.Logger,
	}
	if d.input == nil {
		d.input = &Input{}
	}
	if d.clock == nil {
		d.clock = systemClock{}
	}
	if d.log == nil {
		d.log = log.Default()
	}

	w.SetAudio(deps.Audio)
	w.SetRewardListener(deps.OnReward)
	return d
}

// World returns the driven world. Callers must treat it as read-only.
func (d *Driver) World() *World {
	return d.world
}

// Input returns the snapshot the driver reads each step.
func (d *Driver) Input() *Input {
	return d.input
}

// Running reports whether frames advance the simulation.
func (d *Driver) Running() bool {
	return d.world.running
}

// Start begins stepping on the next frame with an empty accumulator. A jump
// pressed while stopped is dropped. Starting a running driver does nothing.
func (d *Driver) Start() {
	if d.world.running {
		return
	}
	d.world.running = true
	d.world.accumulator = 0
	d.last = time.Time{}
	d.input.JumpPressed = false

	if r, ok := d.deps.Audio.(Resumer); ok {
		r.Resume()
	}
	d.log.Debug("simulation started")
	d.notifyRunning()
}

// Stop halts stepping without touching world state. No step runs until the
// next Start.
func (d *Driver) Stop() {
	if !d.world.running {
		return
	}
	d.world.running = false
	d.log.Debug("simulation stopped", "score", d.world.Score())
	d.notifyRunning()
}

// Reset restores the initial level whether or not the driver is running and
// pushes the zeroed HUD.
func (d *Driver) Reset() {
	d.world.Reset()
	d.input.JumpPressed = false
	d.last = time.Time{}
	d.log.Debug("simulation reset")
	d.emitHUD()
}

// Frame is the host callback for hosts that only report wall-clock time. The
// first frame after construction or Start advances nothing.
func (d *Driver) Frame() int {
	now := d.clock.Now()
	var elapsed time.Duration
	if !d.last.IsZero() {
		elapsed = now.Sub(d.last)
	}
	d.last = now
	return d.Advance(elapsed)
}

// Advance runs as many fixed steps as elapsed allows, within the per-frame
// clamp and step cap, then renders and emits the HUD exactly once. It returns
// the number of steps run.
func (d *Driver) Advance(elapsed time.Duration) int {
	steps := 0
	if d.world.running {
		steps = d.step(elapsed)
	}
	d.present()
	return steps
}

func (d *Driver) step(elapsed time.Duration) int {
	t := d.world.cfg.Timing
	dt := max(0, min(elapsed.Seconds(), t.MaxFrameDelta))

	w := d.world
	w.accumulator += dt

	steps := 0
	for w.accumulator >= t.FixedStep && steps < t.MaxStepsPerFrame {
		w.Step(t.FixedStep, d.input)
		w.accumulator -= t.FixedStep
		steps++
	}
	if steps == t.MaxStepsPerFrame && w.accumulator >= t.FixedStep {
		d.log.Debug("step cap reached", "steps", steps, "behind", w.accumulator)
	}
	return steps
}

func (d *Driver) present() {
	if d.deps.Renderer != nil && d.deps.Surfaces != nil {
		if s := d.deps.Surfaces.Surface(); s != nil {
			d.world.Snapshot(&d.snap)
			d.deps.Renderer.Render(s, &d.snap)
		}
	}
	d.emitHUD()
}

func (d *Driver) emitHUD() {
	if d.deps.OnHUD != nil {
		d.deps.OnHUD(HUD{
			Score:    d.world.Score(),
			Grounded: d.world.Player().Body.Grounded,
		})
	}
}

func (d *Driver) notifyRunning() {
	if d.deps.OnRunning != nil {
		d.deps.OnRunning(d.world.running)
	}
}
