package core

import (
	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
)

// Snapshot is a read-only copy of everything a renderer needs. Renderers
// switch on SolidView.Kind; the world never draws.
type Snapshot struct {
	Width, Height float64

	Solids  []SolidView
	Coins   []CoinView
	Player  ActorView
	Enemies []ActorView

	Score    int
	Grounded bool
	Running  bool
}

type SolidView struct {
	gamemath.Rect
	Kind collision.Kind
	Hit  bool
}

type CoinView struct {
	X, Y, R float64
	Taken   bool
}

type ActorView struct {
	gamemath.Rect
	VX, VY   float64
	Facing   float64
	Grounded bool
	Alive    bool
}

// Snapshot copies the world into dst, reusing its slices. Pass the same
// Snapshot every frame to avoid allocating.
func (w *World) Snapshot(dst *Snapshot) {
	dst.Width, dst.Height = w.layout.Width, w.layout.Height

	dst.Solids = dst.Solids[:0]
	for _, e := range w.colliders {
		c := components.Collider.Get(e)
		v := SolidView{Rect: components.Object.Get(e).Rect(), Kind: c.Kind}
		if e.HasComponent(components.Block) {
			v.Hit = components.Block.Get(e).Hit
		}
		dst.Solids = append(dst.Solids, v)
	}

	dst.Coins = dst.Coins[:0]
	for _, e := range w.coins {
		c := components.Coin.Get(e)
		dst.Coins = append(dst.Coins, CoinView{X: c.X, Y: c.Y, R: c.R, Taken: c.Taken})
	}

	dst.Player = actorView(components.Body.Get(w.player), true)

	dst.Enemies = dst.Enemies[:0]
	for _, e := range w.enemies {
		dst.Enemies = append(dst.Enemies, actorView(components.Body.Get(e), components.Enemy.Get(e).Alive))
	}

	dst.Score = w.Score()
	dst.Grounded = dst.Player.Grounded
	dst.Running = w.running
}

func actorView(b *collision.Body, alive bool) ActorView {
	return ActorView{
		Rect:     b.Rect,
		VX:       b.VX,
		VY:       b.VY,
		Facing:   b.Facing,
		Grounded: b.Grounded,
		Alive:    alive,
	}
}

// PlayerState exposes the player's ability state for tests and debug output.
type PlayerState struct {
	Body      collision.Body
	Coyote    float64
	JumpsLeft int
}

// Player returns a copy of the player's state.
func (w *World) Player() PlayerState {
	p := components.Player.Get(w.player)
	return PlayerState{
		Body:      *components.Body.Get(w.player),
		Coyote:    p.Coyote,
		JumpsLeft: p.JumpsLeft,
	}
}

// EnemyState is a copy of one enemy.
type EnemyState struct {
	Body  collision.Body
	Alive bool
}

// Enemies returns a copy of every enemy in spawn order.
func (w *World) Enemies() []EnemyState {
	out := make([]EnemyState, 0, len(w.enemies))
	for _, e := range w.enemies {
		out = append(out, EnemyState{Body: *components.Body.Get(e), Alive: components.Enemy.Get(e).Alive})
	}
	return out
}
