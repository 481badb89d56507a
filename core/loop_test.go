package core

import (
	"testing"
	"time"

	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct{}

func (fakeSurface) Size() (int, int) { return 960, 540 }
func (fakeSurface) Scale() float64   { return 1 }

type surfaceSlot struct {
	surface Surface
}

func (s *surfaceSlot) Surface() Surface { return s.surface }

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (r *countingRenderer) Render(_ Surface, snap *Snapshot) {
	r.frames++
	r.last = *snap
}

type resumableAudio struct {
	recordingAudio
	resumed int
}

func (a *resumableAudio) Resume() { a.resumed++ }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type harness struct {
	driver   *Driver
	renderer *countingRenderer
	surfaces *surfaceSlot
	huds     []HUD
	running  []bool
	rewards  []Reward
}

func newHarness(t *testing.T, cfg config.Config, layout *leveldata.Layout) *harness {
	t.Helper()
	w, err := NewWorld(cfg, layout)
	require.NoError(t, err)

	h := &harness{
		renderer: &countingRenderer{},
		surfaces: &surfaceSlot{surface: fakeSurface{}},
	}
	h.driver = NewDriver(w, Deps{
		Surfaces:  h.surfaces,
		Renderer:  h.renderer,
		OnHUD:     func(hud HUD) { h.huds = append(h.huds, hud) },
		OnRunning: func(r bool) { h.running = append(h.running, r) },
		OnReward:  func(r Reward) { h.rewards = append(h.rewards, r) },
	})
	return h
}

// binaryStepConfig uses a fixed step that, like every frame delta used with it,
// is exact in both float64 seconds and integer nanoseconds.
func binaryStepConfig() config.Config {
	cfg := config.Default()
	cfg.Timing.FixedStep = 1.0 / 128
	return cfg
}

func TestFrameRateIndependence(t *testing.T) {
	run := func(deltas []time.Duration) (PlayerState, []EnemyState, int) {
		h := newHarness(t, binaryStepConfig(), leveldata.Default())
		h.driver.Start()
		in := h.driver.Input()
		in.Right = true
		in.JumpPressed = true

		steps := 0
		for _, d := range deltas {
			steps += h.driver.Advance(d)
		}
		require.Equal(t, 128, steps)
		w := h.driver.World()
		return w.Player(), w.Enemies(), w.Score()
	}
	repeat := func(d time.Duration, n int) []time.Duration {
		out := make([]time.Duration, n)
		for i := range out {
			out[i] = d
		}
		return out
	}

	const quarter = 3906250 * time.Nanosecond // 1/256 s
	var mixed []time.Duration
	for i := 0; i < 32; i++ {
		mixed = append(mixed, 3*quarter, 5*quarter)
	}

	p1, e1, s1 := run(repeat(4*quarter, 64))
	for _, deltas := range [][]time.Duration{repeat(2*quarter, 128), repeat(quarter, 256), mixed} {
		p, e, s := run(deltas)
		assert.InDelta(t, p1.Body.X, p.Body.X, 1e-9)
		assert.InDelta(t, p1.Body.Y, p.Body.Y, 1e-9)
		assert.InDelta(t, p1.Body.VX, p.Body.VX, 1e-9)
		assert.InDelta(t, p1.Body.VY, p.Body.VY, 1e-9)
		assert.Equal(t, p1.JumpsLeft, p.JumpsLeft)
		assert.Equal(t, p1.Body.Grounded, p.Body.Grounded)
		require.Len(t, e, len(e1))
		assert.InDelta(t, e1[0].Body.X, e[0].Body.X, 1e-9)
		assert.Equal(t, s1, s)
	}
	assert.Greater(t, p1.Body.X, 60.0, "player should have moved right")
}

func TestLargeFrameGapIsClamped(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())
	h.driver.Start()

	assert.Equal(t, 3, h.driver.Advance(5*time.Second))
}

func TestStepsPerFrameAreCapped(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.MaxFrameDelta = 1
	h := newHarness(t, cfg, leveldata.Default())
	h.driver.Start()

	assert.Equal(t, 8, h.driver.Advance(time.Second))
	assert.Equal(t, 8, h.driver.Advance(0), "leftover time drains on later frames")
	assert.Equal(t, 2, len(h.huds))
	assert.Equal(t, 2, h.renderer.frames)
}

func TestOneRenderAndHUDPerFrame(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())
	h.driver.Start()

	steps := h.driver.Advance(30 * time.Millisecond)

	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, h.renderer.frames)
	require.Len(t, h.huds, 1)
	assert.Equal(t, 0, h.huds[0].Score)
	assert.True(t, h.renderer.last.Running)
}

func TestMissingSurfaceSkipsRenderOnly(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())
	h.surfaces.surface = nil
	h.driver.Start()

	before := h.driver.World().Player().Body.Y
	steps := h.driver.Advance(30 * time.Millisecond)

	assert.Equal(t, 3, steps)
	assert.Equal(t, 0, h.renderer.frames)
	assert.Len(t, h.huds, 1)
	assert.NotEqual(t, before, h.driver.World().Player().Body.Y)
}

func TestStoppedDriverDoesNotStep(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())
	before := h.driver.World().Player()

	assert.Equal(t, 0, h.driver.Advance(time.Second))
	assert.Equal(t, before, h.driver.World().Player())
	assert.Equal(t, 1, h.renderer.frames)
	assert.Len(t, h.huds, 1)

	h.driver.Start()
	h.driver.Advance(20 * time.Millisecond)
	h.driver.Stop()
	paused := h.driver.World().Player()

	assert.Equal(t, 0, h.driver.Advance(time.Second))
	assert.Equal(t, paused, h.driver.World().Player())
}

func TestStartStopAreIdempotent(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())

	h.driver.Stop()
	h.driver.Start()
	h.driver.Start()
	assert.True(t, h.driver.Running())
	h.driver.Stop()
	h.driver.Stop()
	assert.False(t, h.driver.Running())

	assert.Equal(t, []bool{true, false}, h.running)
}

func TestResetKeepsRunningState(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())
	h.driver.Start()
	h.driver.Input().Right = true
	for i := 0; i < 30; i++ {
		h.driver.Advance(20 * time.Millisecond)
	}

	huds := len(h.huds)
	h.driver.Reset()

	assert.Len(t, h.huds, huds+1)
	assert.Equal(t, 0, h.huds[huds].Score)
	assert.True(t, h.driver.Running())
	p := h.driver.World().Player()
	assert.Equal(t, 60.0, p.Body.X)
	assert.Equal(t, 400.0, p.Body.Y)
	assert.Equal(t, 0, h.driver.World().Score())
	assert.Equal(t, 0.0, h.driver.World().accumulator)
}

func TestJumpPressConsumedOncePerFrame(t *testing.T) {
	h := newHarness(t, config.Default(), flatLayout())
	settle(t, h.driver.World())
	h.driver.Start()

	in := h.driver.Input()
	in.JumpPressed = true
	assert.Equal(t, 0, h.driver.Advance(0))
	assert.True(t, in.JumpPressed, "a press survives frames that run no step")

	assert.Equal(t, 3, h.driver.Advance(33*time.Millisecond))
	assert.False(t, in.JumpPressed)
	assert.Equal(t, 1, h.driver.World().Player().JumpsLeft)
}

func TestRestartDropsLeftoverTime(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.MaxFrameDelta = 1
	h := newHarness(t, cfg, leveldata.Default())
	h.driver.Start()

	assert.Equal(t, 8, h.driver.Advance(time.Second))
	h.driver.Stop()
	h.driver.Start()

	assert.Equal(t, 0.0, h.driver.World().accumulator)
	assert.Equal(t, 0, h.driver.Advance(0))
}

func TestJumpPressedWhileStoppedIsDropped(t *testing.T) {
	h := newHarness(t, config.Default(), flatLayout())
	settle(t, h.driver.World())

	h.driver.Input().JumpPressed = true
	h.driver.Advance(20 * time.Millisecond)
	h.driver.Start()

	assert.False(t, h.driver.Input().JumpPressed)
	assert.Equal(t, 2, h.driver.Advance(20*time.Millisecond))
	p := h.driver.World().Player()
	assert.True(t, p.Body.Grounded)
	assert.Equal(t, 2, p.JumpsLeft)
}

func TestFrameUsesClock(t *testing.T) {
	w, err := NewWorld(binaryStepConfig(), leveldata.Default())
	require.NoError(t, err)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	d := NewDriver(w, Deps{Clock: clock})
	d.Start()

	assert.Equal(t, 0, d.Frame())
	clock.now = clock.now.Add(15625 * time.Microsecond)
	assert.Equal(t, 2, d.Frame())

	// Time spent stopped is not caught up after a restart.
	d.Stop()
	clock.now = clock.now.Add(time.Minute)
	d.Frame()
	d.Start()
	assert.Equal(t, 0, d.Frame())
}

func TestStartResumesAudio(t *testing.T) {
	w, err := NewWorld(config.Default(), leveldata.Default())
	require.NoError(t, err)
	audio := &resumableAudio{}
	d := NewDriver(w, Deps{Audio: audio})

	d.Start()
	d.Stop()
	d.Start()
	assert.Equal(t, 2, audio.resumed)

	for i := 0; i < 10; i++ {
		d.Advance(20 * time.Millisecond)
	}
	assert.Equal(t, 1, audio.count(config.SoundLand))
}

func TestRewardsReachDeps(t *testing.T) {
	h := newHarness(t, config.Default(), leveldata.Default())
	h.driver.Start()
	body := playerBody(h.driver.World())
	body.X, body.Y = 310, 230

	h.driver.Advance(10 * time.Millisecond)

	require.Len(t, h.rewards, 1)
	assert.Equal(t, RewardCoin, h.rewards[0].Source)
	assert.Equal(t, 1, h.huds[len(h.huds)-1].Score)
}
