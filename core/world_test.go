package core

import (
	"testing"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 1.0 / 120.0

type recordingAudio struct {
	cues []config.SoundID
}

func (a *recordingAudio) Play(id config.SoundID) {
	a.cues = append(a.cues, id)
}

func (a *recordingAudio) count(id config.SoundID) int {
	n := 0
	for _, c := range a.cues {
		if c == id {
			n++
		}
	}
	return n
}

func flatLayout() *leveldata.Layout {
	return &leveldata.Layout{
		Name:   "flat",
		Width:  960,
		Height: 540,
		Platforms: []leveldata.Solid{
			{Rect: gamemath.Rect{X: 0, Y: 470, W: 960, H: 70}, Kind: collision.KindPlatform},
		},
		PlayerSpawn: &leveldata.SpawnPoint{X: 100, Y: 470 - 44 - 0.01},
	}
}

func newTestWorld(t *testing.T, layout *leveldata.Layout) (*World, *recordingAudio) {
	t.Helper()
	w, err := NewWorld(config.Default(), layout)
	require.NoError(t, err)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	return w, audio
}

func playerBody(w *World) *collision.Body {
	return components.Body.Get(w.player)
}

// settle steps until the player stands on something.
func settle(t *testing.T, w *World) {
	t.Helper()
	for i := 0; i < 240; i++ {
		w.Step(step, &Input{})
		if playerBody(w).Grounded {
			return
		}
	}
	t.Fatal("player never landed")
}

func TestNewWorldRejectsInvalidLayout(t *testing.T) {
	layout := flatLayout()
	layout.PlayerSpawn = nil

	_, err := NewWorld(config.Default(), layout)
	assert.ErrorIs(t, err, leveldata.ErrNoPlayerSpawn)

	layout = flatLayout()
	layout.Platforms[0].Rect.W = -1
	_, err = NewWorld(config.Default(), layout)
	assert.ErrorIs(t, err, leveldata.ErrInvalidRect)
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.FixedStep = 0

	_, err := NewWorld(cfg, flatLayout())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestDoubleJumpScenario(t *testing.T) {
	w, audio := newTestWorld(t, flatLayout())
	settle(t, w)
	require.Equal(t, 2, w.Player().JumpsLeft)

	in := &Input{JumpPressed: true}
	w.Step(step, in)

	p := w.Player()
	assert.False(t, in.JumpPressed, "jump edge must be consumed")
	assert.InDelta(t, -800.0, p.Body.VY, 1e-9)
	assert.Equal(t, 1, p.JumpsLeft)
	assert.False(t, p.Body.Grounded)

	for i := 0; i < 5; i++ {
		w.Step(step, &Input{})
	}

	w.Step(step, &Input{JumpPressed: true})
	p = w.Player()
	assert.InDelta(t, -800.0, p.Body.VY, 1e-9)
	assert.Equal(t, 0, p.JumpsLeft)

	w.Step(step, &Input{JumpPressed: true})
	p = w.Player()
	assert.Greater(t, p.Body.VY, -800.0, "third jump must be ignored")
	assert.Equal(t, 0, p.JumpsLeft)
	assert.Equal(t, 2, audio.count(config.SoundJump))

	for i := 0; i < 600 && !playerBody(w).Grounded; i++ {
		w.Step(step, &Input{})
	}
	assert.True(t, playerBody(w).Grounded)
	assert.Equal(t, 2, w.Player().JumpsLeft)
}

func coyoteLayout() *leveldata.Layout {
	return &leveldata.Layout{
		Name:   "ledge",
		Width:  960,
		Height: 540,
		Platforms: []leveldata.Solid{
			{Rect: gamemath.Rect{X: 0, Y: 300, W: 200, H: 40}, Kind: collision.KindPlatform},
			{Rect: gamemath.Rect{X: 0, Y: 500, W: 960, H: 40}, Kind: collision.KindPlatform},
		},
		PlayerSpawn: &leveldata.SpawnPoint{X: 100, Y: 300 - 44 - 0.01},
	}
}

// walkOffLedge moves a settled player past the ledge edge and runs the step
// that notices it is airborne.
func walkOffLedge(t *testing.T, w *World) {
	t.Helper()
	settle(t, w)
	playerBody(w).X = 210
	components.Player.Get(w.player).JumpsLeft = 0

	w.Step(step, &Input{})
	require.False(t, playerBody(w).Grounded)
}

func TestCoyoteJumpAfterLeavingLedge(t *testing.T) {
	w, _ := newTestWorld(t, coyoteLayout())
	walkOffLedge(t, w)

	for i := 0; i < 3; i++ {
		w.Step(step, &Input{})
	}
	require.Greater(t, w.Player().Coyote, 0.0)

	w.Step(step, &Input{JumpPressed: true})
	p := w.Player()
	assert.InDelta(t, -800.0, p.Body.VY, 1e-9)
	assert.Equal(t, 0.0, p.Coyote)
	assert.Equal(t, 0, p.JumpsLeft)
}

func TestCoyoteExpires(t *testing.T) {
	w, _ := newTestWorld(t, coyoteLayout())
	walkOffLedge(t, w)

	for i := 0; i < 20; i++ {
		w.Step(step, &Input{})
	}
	require.Equal(t, 0.0, w.Player().Coyote)

	before := playerBody(w).VY
	w.Step(step, &Input{JumpPressed: true})
	assert.Greater(t, playerBody(w).VY, before, "jump without coyote or jumps left must be ignored")
}

func TestHorizontalMovementAndFriction(t *testing.T) {
	w, _ := newTestWorld(t, flatLayout())
	settle(t, w)

	for i := 0; i < 120; i++ {
		w.Step(step, &Input{Right: true})
	}
	body := playerBody(w)
	assert.Greater(t, body.VX, 0.0)
	assert.LessOrEqual(t, body.VX, 320.0)
	assert.Equal(t, 1.0, body.Facing)

	for i := 0; i < 240; i++ {
		w.Step(step, &Input{})
	}
	assert.Equal(t, 0.0, playerBody(w).VX, "speed must snap to zero once released")

	w.Step(step, &Input{Left: true})
	assert.Equal(t, -1.0, playerBody(w).Facing)
}

func TestPlayerStaysInsideLevel(t *testing.T) {
	w, _ := newTestWorld(t, flatLayout())
	settle(t, w)

	for i := 0; i < 1200; i++ {
		w.Step(step, &Input{Left: true})
	}
	assert.Equal(t, 0.0, playerBody(w).X)

	for i := 0; i < 1200; i++ {
		w.Step(step, &Input{Right: true})
	}
	assert.InDelta(t, 960.0-34, playerBody(w).X, 1e-9)
}

func TestLandCueOncePerLanding(t *testing.T) {
	w, audio := newTestWorld(t, leveldata.Default())

	for i := 0; i < 120; i++ {
		w.Step(step, &Input{})
	}
	assert.True(t, playerBody(w).Grounded)
	assert.Equal(t, 1, audio.count(config.SoundLand))
}

func TestCoinCollectedOnce(t *testing.T) {
	w, audio := newTestWorld(t, leveldata.Default())
	var rewards []Reward
	w.SetRewardListener(func(r Reward) { rewards = append(rewards, r) })

	body := playerBody(w)
	body.X, body.Y = 310, 230

	w.Step(step, &Input{})

	var snap Snapshot
	w.Snapshot(&snap)
	assert.True(t, snap.Coins[0].Taken)
	assert.False(t, snap.Coins[1].Taken)
	assert.Equal(t, 1, w.Score())
	assert.Equal(t, 1, audio.count(config.SoundCoin))

	w.Step(step, &Input{})
	assert.Equal(t, 1, w.Score())
	require.Len(t, rewards, 1)
	assert.Equal(t, RewardCoin, rewards[0].Source)
	assert.Equal(t, 0, rewards[0].Index)
}

func TestBlockRewardsOnce(t *testing.T) {
	w, audio := newTestWorld(t, leveldata.Default())
	var rewards []Reward
	w.SetRewardListener(func(r Reward) { rewards = append(rewards, r) })

	bonk := func() {
		body := playerBody(w)
		body.X, body.Y = 43, 342
		body.VX, body.VY = 0, -500
		w.Step(step, &Input{})
	}

	bonk()
	body := playerBody(w)
	assert.InDelta(t, 340.01, body.Y, 1e-9)
	assert.Equal(t, 10.0, body.VY)
	assert.Equal(t, 1, w.Score())

	bonk()
	bonk()
	assert.Equal(t, 1, w.Score())
	require.Len(t, rewards, 1)
	assert.Equal(t, RewardBlock, rewards[0].Source)
	assert.Equal(t, 1, audio.count(config.SoundBump))

	var snap Snapshot
	w.Snapshot(&snap)
	hit := 0
	for _, s := range snap.Solids {
		if s.Kind == collision.KindBlock && s.Hit {
			hit++
		}
	}
	assert.Equal(t, 1, hit)
}

func placeOverEnemy(w *World, penetration, vy float64) {
	enemy := components.Body.Get(w.enemies[0])
	body := playerBody(w)
	body.X = enemy.X
	body.Y = enemy.Y - body.H + penetration
	body.VX, body.VY = 0, vy
}

func TestStompKillsEnemy(t *testing.T) {
	w, audio := newTestWorld(t, leveldata.Default())
	placeOverEnemy(w, 5, 300)

	w.Step(step, &Input{})

	enemies := w.Enemies()
	require.Len(t, enemies, 1)
	assert.False(t, enemies[0].Alive)
	assert.InDelta(t, -800*0.65, playerBody(w).VY, 1e-9)
	assert.Equal(t, 3, w.Score())
	assert.Equal(t, 1, audio.count(config.SoundCoin))

	// A dead enemy neither moves nor hurts.
	x := enemies[0].Body.X
	placeOverEnemy(w, 20, 300)
	w.Step(step, &Input{})
	assert.Equal(t, 3, w.Score())
	assert.Equal(t, x, w.Enemies()[0].Body.X)
}

func TestDeepContactFromAboveHurts(t *testing.T) {
	w, _ := newTestWorld(t, leveldata.Default())
	components.Game.Get(w.game).Score = 5
	placeOverEnemy(w, 20, 300)

	w.Step(step, &Input{})

	assert.True(t, w.Enemies()[0].Alive)
	assert.Equal(t, 0, w.Score())
	body := playerBody(w)
	assert.Equal(t, 60.0, body.X)
	assert.Equal(t, 400.0, body.Y)
	assert.Equal(t, 0.0, body.VX)
	assert.Equal(t, 0.0, body.VY)
}

func TestSideContactHurts(t *testing.T) {
	w, audio := newTestWorld(t, leveldata.Default())
	components.Game.Get(w.game).Score = 5

	body := playerBody(w)
	body.X, body.Y = 590, leveldata.GroundY-44-0.01

	w.Step(step, &Input{})

	assert.True(t, w.Enemies()[0].Alive)
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 60.0, playerBody(w).X)
	assert.Equal(t, 2, w.Player().JumpsLeft)
	assert.Equal(t, 1, audio.count(config.SoundBump))
}

func TestDamageAfterStompInSameStepClearsScore(t *testing.T) {
	layout := flatLayout()
	layout.EnemySpawns = []leveldata.SpawnPoint{
		{X: 400, Y: 470 - 34 - 0.01},
		{X: 600, Y: 470 - 34 - 0.01},
	}
	w, audio := newTestWorld(t, layout)
	var rewards []Reward
	w.SetRewardListener(func(r Reward) { rewards = append(rewards, r) })

	// Land shallowly on the first enemy while the second, hovering higher,
	// presses into the player's right side.
	placeOverEnemy(w, 5, 300)
	first := components.Body.Get(w.enemies[0])
	second := components.Body.Get(w.enemies[1])
	second.X = first.X + 24
	second.Y = first.Y - 20

	w.Step(step, &Input{})

	enemies := w.Enemies()
	require.Len(t, enemies, 2)
	assert.False(t, enemies[0].Alive)
	assert.True(t, enemies[1].Alive)
	require.Len(t, rewards, 1)
	assert.Equal(t, RewardStomp, rewards[0].Source)

	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 100.0, playerBody(w).X)
	assert.Equal(t, []config.SoundID{config.SoundCoin, config.SoundBump}, audio.cues)
}

func wallLayout(enemyX float64) *leveldata.Layout {
	l := flatLayout()
	l.Platforms = append(l.Platforms, leveldata.Solid{
		Rect: gamemath.Rect{X: 300, Y: 400, W: 40, H: 70},
		Kind: collision.KindPipe,
	})
	l.EnemySpawns = []leveldata.SpawnPoint{{X: enemyX, Y: 470 - 34 - 0.01}}
	return l
}

func TestEnemyTurnsAtWall(t *testing.T) {
	w, _ := newTestWorld(t, wallLayout(250))

	for i := 0; i < 60; i++ {
		w.Step(step, &Input{})
	}

	e := w.Enemies()[0]
	assert.Less(t, e.Body.VX, 0.0)
	assert.Equal(t, -1.0, e.Body.Facing)
	assert.LessOrEqual(t, e.Body.Right(), 300.0)
	assert.True(t, e.Body.Grounded)
}

func TestEnemyTurnsAtLevelEdge(t *testing.T) {
	w, _ := newTestWorld(t, wallLayout(960-34-0.2))

	for i := 0; i < 10; i++ {
		w.Step(step, &Input{})
	}

	e := w.Enemies()[0]
	assert.Less(t, e.Body.VX, 0.0)
	assert.LessOrEqual(t, e.Body.Right(), 960.0)
}

func TestResetIsIdempotent(t *testing.T) {
	w, _ := newTestWorld(t, leveldata.Default())
	var fresh Snapshot
	w.Snapshot(&fresh)

	placeOverEnemy(w, 5, 300)
	w.Step(step, &Input{})
	body := playerBody(w)
	body.X, body.Y = 310, 230
	for i := 0; i < 30; i++ {
		w.Step(step, &Input{Right: true, JumpPressed: i == 3})
	}
	require.NotZero(t, w.Score())

	w.Reset()
	var once Snapshot
	w.Snapshot(&once)
	w.Reset()
	var twice Snapshot
	w.Snapshot(&twice)

	assert.Equal(t, once, twice)
	assert.Equal(t, fresh, once)
	assert.Equal(t, 0.0, w.accumulator)
}

func TestSnapshotShape(t *testing.T) {
	w, _ := newTestWorld(t, leveldata.Default())
	var snap Snapshot
	w.Snapshot(&snap)

	kinds := map[collision.Kind]int{}
	for _, s := range snap.Solids {
		kinds[s.Kind]++
	}
	assert.Equal(t, 4, kinds[collision.KindPlatform])
	assert.Equal(t, 1, kinds[collision.KindPipe])
	assert.Equal(t, 4, kinds[collision.KindBlock])
	assert.Len(t, snap.Coins, 4)
	assert.Len(t, snap.Enemies, 1)
	assert.Equal(t, 960.0, snap.Width)
	assert.True(t, snap.Player.Alive)
}
