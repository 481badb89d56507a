package core

import (
	"math"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
)

// updateEnemies moves every living enemy along its patrol. Walls and the
// level edges turn it around.
func (w *World) updateEnemies(dt float64) {
	ec := &w.cfg.Enemy

	for _, e := range w.enemies {
		if !components.Enemy.Get(e).Alive {
			continue
		}
		body := components.Body.Get(e)

		w.applyGravity(body, dt)

		body.X += body.VX * dt
		clamped := gamemath.Clamp(body.X, 0, w.layout.Width-body.W)
		hitEdge := clamped != body.X
		body.X = clamped

		vx := body.VX
		res := collision.ResolveX(body, w.space.query(body.Rect), w.enemyOpts)
		if res.Collided || hitEdge {
			body.VX = -vx
			body.Facing = gamemath.Sign(body.VX)
		}

		body.Y += body.VY * dt
		collision.ResolveY(body, w.space.query(body.Rect), w.enemyOpts)
		body.Y = gamemath.Clamp(body.Y, w.cfg.Physics.CeilingY, w.layout.Height-body.H)

		if math.Abs(body.VX) < ec.MinPatrolSpeed {
			body.VX = body.Facing * ec.PatrolSpeed
		}
	}
}
