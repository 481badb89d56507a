package core

import (
	"math"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/shared/gamemath"
)

func (w *World) updatePlayer(dt float64, in *Input) {
	body := components.Body.Get(w.player)
	player := components.Player.Get(w.player)
	pc := &w.cfg.Player

	var left, right, jump bool
	if in != nil {
		jump = in.consumeJump()
		left, right = in.Left, in.Right
	}
	wasGrounded := body.Grounded

	// Horizontal: ease toward the target speed, then frame-rate independent friction
	accel, smoothing, friction := pc.AirMoveSpeed, pc.AirSmoothing, pc.AirFriction
	if body.Grounded {
		accel, smoothing, friction = pc.MoveSpeed, pc.GroundSmoothing, pc.GroundFriction
	}
	target := 0.0
	switch {
	case left:
		target = -accel
	case right:
		target = accel
	}
	body.VX = gamemath.Approach(body.VX, target, smoothing)
	body.VX = gamemath.ApplyFriction(body.VX, friction, dt, w.cfg.Timing.FrictionRefHz)
	body.VX = gamemath.SnapToZero(body.VX, pc.StopEpsilon)

	if left {
		body.Facing = -1
	} else if right {
		body.Facing = 1
	}

	w.applyGravity(body, dt)

	if body.Grounded {
		player.Coyote = pc.CoyoteTime
	} else {
		player.Coyote = math.Max(0, player.Coyote-dt)
	}

	if jump && (body.Grounded || player.Coyote > 0 || player.JumpsLeft > 0) {
		body.VY = -pc.JumpVelocity
		body.Grounded = false
		player.Coyote = 0
		player.JumpsLeft = max(0, player.JumpsLeft-1)
		w.play(config.SoundJump)
	}

	body.X += body.VX * dt
	body.X = gamemath.Clamp(body.X, 0, w.layout.Width-body.W)
	collision.ResolveX(body, w.space.query(body.Rect), w.playerOpts)

	body.Y += body.VY * dt
	res := collision.ResolveY(body, w.space.query(body.Rect), w.playerOpts)
	if res.Landed {
		player.JumpsLeft = pc.MaxJumps
		if !wasGrounded {
			w.play(config.SoundLand)
		}
	}
	for _, ev := range res.Events {
		if ev.Kind != collision.EventBlockHit {
			continue
		}
		r := components.Object.Get(w.colliders[ev.ColliderID]).Rect()
		cx, cy := r.Center()
		w.publishReward(Reward{Source: RewardBlock, Index: ev.ColliderID, Points: w.cfg.Rewards.Block, X: cx, Y: cy})
	}
	w.flushRewards()

	body.Y = gamemath.Clamp(body.Y, w.cfg.Physics.CeilingY, w.layout.Height-body.H)
}

func (w *World) applyGravity(body *collision.Body, dt float64) {
	phys := &w.cfg.Physics
	body.VY = gamemath.Clamp(body.VY+phys.Gravity*dt, -phys.MaxRiseSpeed, phys.MaxFallSpeed)
}
