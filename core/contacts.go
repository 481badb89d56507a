package core

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/shared/gamemath"
)

// collectCoins takes every untaken coin the player overlaps.
func (w *World) collectCoins() {
	pr := components.Body.Get(w.player).Rect

	for i, e := range w.coins {
		coin := components.Coin.Get(e)
		if coin.Taken || !pr.Overlaps(gamemath.CircleBounds(coin.X, coin.Y, coin.R)) {
			continue
		}
		coin.Taken = true
		w.publishReward(Reward{Source: RewardCoin, Index: i, Points: w.cfg.Rewards.Coin, X: coin.X, Y: coin.Y})
	}
	w.flushRewards()
}

// resolveContacts handles player/enemy overlap. Landing on an enemy while
// falling, with shallow penetration, kills it; any other contact hurts the
// player.
func (w *World) resolveContacts() {
	body := components.Body.Get(w.player)

	for i, e := range w.enemies {
		enemy := components.Enemy.Get(e)
		if !enemy.Alive {
			continue
		}
		eb := components.Body.Get(e)
		if !body.Overlaps(eb.Rect) {
			continue
		}

		if body.VY > 0 && body.Bottom()-eb.Y < w.cfg.Stomp.Threshold {
			enemy.Alive = false
			body.VY = -w.cfg.Player.JumpVelocity * w.cfg.Stomp.BounceFactor
			cx, cy := eb.Center()
			w.publishReward(Reward{Source: RewardStomp, Index: i, Points: w.cfg.Rewards.Stomp, X: cx, Y: cy})
			continue
		}

		// Stomps earlier in this pass are credited before the damage clears
		// the score.
		w.flushRewards()
		w.hurtPlayer()
		break
	}
	w.flushRewards()
}

// hurtPlayer sends the player back to its spawn and clears the score. There
// is no life counter.
func (w *World) hurtPlayer() {
	w.respawnPlayer()
	components.Game.Get(w.game).Score = 0
	w.play(config.SoundBump)
}
