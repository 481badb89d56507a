// Package core is the headless simulation: level and actor state in a donburi
// world, fixed-step physics, rewards, and the loop driver. Nothing here
// imports ebitengine.
package core

import (
	"fmt"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

// World owns every piece of mutable simulation state. It is created once and
// reset in place.
type World struct {
	cfg    config.Config
	layout *leveldata.Layout

	ecs       donburi.World
	space     *colliderSpace
	colliders []*donburi.Entry // indexed by collider ID
	coins     []*donburi.Entry
	enemies   []*donburi.Entry
	player    *donburi.Entry
	game      *donburi.Entry

	playerOpts collision.Options
	enemyOpts  collision.Options

	audio    AudioSink
	onReward func(Reward)

	running     bool
	accumulator float64
}

// NewWorld builds a world for the layout. The layout is validated here; a
// malformed one is a construction error, never a runtime condition.
func NewWorld(cfg config.Config, layout *leveldata.Layout) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	w := &World{
		cfg:    cfg,
		layout: layout,
		ecs:    donburi.NewWorld(),
		space:  newColliderSpace(layout.Width, layout.Height, cfg.Collision.CellSize),
		audio:  silentAudio{},
	}

	base := collision.Options{
		Epsilon:       cfg.Collision.Epsilon,
		MotionEpsilon: cfg.Collision.MotionEpsilon,
		MaxPasses:     cfg.Collision.MaxPasses,
	}
	w.playerOpts = base
	w.playerOpts.CeilingKick = cfg.Player.CeilingKick
	w.playerOpts.BumpBlocks = true
	w.enemyOpts = base
	w.enemyOpts.CeilingKick = cfg.Enemy.CeilingKick

	w.spawnLevel()
	RewardEvent.Subscribe(w.ecs, w.grantReward)
	w.Reset()

	return w, nil
}

// SetAudio routes cues to sink. A nil sink silences the world.
func (w *World) SetAudio(sink AudioSink) {
	if sink == nil {
		sink = silentAudio{}
	}
	w.audio = sink
}

// SetRewardListener registers fn to receive every granted reward.
func (w *World) SetRewardListener(fn func(Reward)) {
	w.onReward = fn
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64, in *Input) {
	w.updatePlayer(dt, in)
	w.updateEnemies(dt)
	w.collectCoins()
	w.resolveContacts()
}

// Reset restores the level, the actors and the counters to their initial
// values. It does not change the running flag.
func (w *World) Reset() {
	for _, e := range w.colliders {
		if e.HasComponent(components.Block) {
			components.Block.Get(e).Hit = false
		}
	}
	for _, e := range w.coins {
		components.Coin.Get(e).Taken = false
	}
	for _, e := range w.enemies {
		w.respawnEnemy(e)
	}
	w.respawnPlayer()

	components.Game.Get(w.game).Score = 0
	w.accumulator = 0
}

// Score returns the current score.
func (w *World) Score() int {
	return components.Game.Get(w.game).Score
}

// Running reports whether the driver is stepping the world.
func (w *World) Running() bool {
	return w.running
}

// Config returns the tuning the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}

// Layout returns the level the world was built from.
func (w *World) Layout() *leveldata.Layout {
	return w.layout
}

func (w *World) play(id config.SoundID) {
	w.audio.Play(id)
}

func (w *World) respawnPlayer() {
	p := components.Player.Get(w.player)
	*components.Body.Get(w.player) = collision.Body{}
	body := components.Body.Get(w.player)
	body.X, body.Y = p.Spawn.X, p.Spawn.Y
	body.W, body.H = w.cfg.Player.Width, w.cfg.Player.Height
	body.Facing = 1

	p.Coyote = 0
	p.JumpsLeft = w.cfg.Player.MaxJumps
}

func (w *World) respawnEnemy(e *donburi.Entry) {
	en := components.Enemy.Get(e)
	en.Alive = true

	body := components.Body.Get(e)
	*body = collision.Body{Facing: 1, VX: w.cfg.Enemy.PatrolSpeed}
	body.X, body.Y = en.Spawn.X, en.Spawn.Y
	body.W, body.H = w.cfg.Enemy.Width, w.cfg.Enemy.Height
}
