package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopupData is floating score text drawn in world space.
type PopupData struct {
	Text   string
	X, Y   float64
	Rise   *gween.Tween
	Fade   *gween.Tween
	Offset float32
	Alpha  float32
	Done   bool
}

// BumpData nudges a block up and back after it is hit. Index is the block's
// position in the snapshot's solid list.
type BumpData struct {
	Index  int
	Up     *gween.Tween
	Down   *gween.Tween
	Offset float32
	Done   bool
}

// HUDData mirrors the last HUD emission and running-state notification.
type HUDData struct {
	Score    int
	Grounded bool
	Running  bool
	Started  bool // true once the player has started at least once
}

var (
	Popup = donburi.NewComponentType[PopupData]()
	Bump  = donburi.NewComponentType[BumpData]()
	HUD   = donburi.NewComponentType[HUDData]()
)
