package core

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RewardSource names the kind of transition that granted a reward.
type RewardSource int

const (
	RewardBlock RewardSource = iota + 1
	RewardCoin
	RewardStomp
)

func (s RewardSource) String() string {
	switch s {
	case RewardBlock:
		return "block"
	case RewardCoin:
		return "coin"
	case RewardStomp:
		return "stomp"
	default:
		return "unknown"
	}
}

// Reward is published once per stateful transition: a block's Hit going
// true, a coin's Taken going true, or an enemy's Alive going false. Index is
// the collider ID, coin index or enemy index. X and Y locate the source for
// HUD effects.
type Reward struct {
	Source RewardSource
	Index  int
	Points int
	X, Y   float64
}

// RewardEvent carries rewards from the systems that flip the flags to the
// aggregator that applies them.
var RewardEvent = events.NewEventType[Reward]()

func (w *World) publishReward(r Reward) {
	RewardEvent.Publish(w.ecs, r)
}

// flushRewards applies every reward published so far. Systems call it before
// returning, so cues fire within the step that caused them.
func (w *World) flushRewards() {
	RewardEvent.ProcessEvents(w.ecs)
}

func (w *World) grantReward(_ donburi.World, r Reward) {
	w.addScore(r.Points)

	switch r.Source {
	case RewardBlock:
		w.play(config.SoundBump)
	case RewardCoin, RewardStomp:
		w.play(config.SoundCoin)
	}

	if w.onReward != nil {
		w.onReward(r)
	}
}

func (w *World) addScore(points int) {
	g := components.Game.Get(w.game)
	g.Score = max(0, g.Score+points)
}
