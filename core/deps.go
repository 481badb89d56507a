package core

import (
	"time"

	"github.com/automoto/coinhop/config"
	"github.com/charmbracelet/log"
)

// Input is the snapshot written by the input collaborator. JumpPressed is an
// edge: the simulation clears it as soon as a step reads it.
type Input struct {
	Left        bool
	Right       bool
	JumpHeld    bool
	JumpPressed bool
}

func (in *Input) consumeJump() bool {
	pressed := in.JumpPressed
	in.JumpPressed = false
	return pressed
}

// HUD is pushed once per host frame.
type HUD struct {
	Score    int
	Grounded bool
}

// Surface is an opaque drawing target. The renderer that receives it knows
// its concrete type.
type Surface interface {
	Size() (width, height int)
	Scale() float64
}

// SurfaceProvider returns the current surface, or nil when none is available.
type SurfaceProvider interface {
	Surface() Surface
}

// Renderer draws a snapshot into a surface.
type Renderer interface {
	Render(s Surface, snap *Snapshot)
}

// AudioSink plays one-shot cues. Implementations must not block.
type AudioSink interface {
	Play(id config.SoundID)
}

// Resumer is implemented by audio sinks that need waking on start.
type Resumer interface {
	Resume()
}

// Clock supplies host time to the driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Deps wires the driver to its collaborators. Every field is optional.
type Deps struct {
	Input     *Input
	Surfaces  SurfaceProvider
	Renderer  Renderer
	Audio     AudioSink
	Clock     Clock
	Logger    *log.Logger
	OnHUD     func(HUD)
	OnRunning func(running bool)
	OnReward  func(Reward)
}

type silentAudio struct{}

func (silentAudio) Play(config.SoundID) {}
