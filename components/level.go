package components

import (
	"github.com/automoto/coinhop/collision"
	"github.com/yohamta/donburi"
)

// ColliderData identifies a piece of static level geometry. ID is the
// collider's index in level order and breaks resolver ties.
type ColliderData struct {
	ID   int
	Kind collision.Kind
}

// BlockData is the reward state of a bumpable block.
type BlockData struct {
	Hit bool
}

// CoinData is a circular pickup.
type CoinData struct {
	X, Y, R float64
	Taken   bool
}

// GameData is the singleton holding run-wide counters.
type GameData struct {
	Score int
}

var (
	Collider = donburi.NewComponentType[ColliderData]()
	Block    = donburi.NewComponentType[BlockData]()
	Coin     = donburi.NewComponentType[CoinData]()
	Game     = donburi.NewComponentType[GameData]()
)
