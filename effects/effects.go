// Package effects owns the short-lived presentation state spawned by rewards:
// floating score popups and block bumps. It runs on a donburi world of its
// own and never touches the simulation.
package effects

import (
	"fmt"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/core"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	popupDuration = 0.6
	popupRise     = 36
	bumpHeight    = 8
	bumpUp        = 0.06
	bumpDown      = 0.1
)

// SpawnReward creates the effects for one granted reward.
func SpawnReward(w donburi.World, r core.Reward) {
	spawnPopup(w, fmt.Sprintf("+%d", r.Points), r.X, r.Y)
	if r.Source == core.RewardBlock {
		spawnBump(w, r.Index)
	}
}

func spawnPopup(w donburi.World, label string, x, y float64) {
	e := w.Entry(w.Create(components.Popup))
	components.Popup.SetValue(e, components.PopupData{
		Text:  label,
		X:     x,
		Y:     y,
		Rise:  gween.New(0, popupRise, popupDuration, ease.OutQuad),
		Fade:  gween.New(1, 0, popupDuration, ease.Linear),
		Alpha: 1,
	})
}

func spawnBump(w donburi.World, index int) {
	// A block only bumps once per hit; drop any bump still running.
	components.Bump.Each(w, func(e *donburi.Entry) {
		if components.Bump.Get(e).Index == index {
			components.Bump.Get(e).Done = true
		}
	})

	e := w.Entry(w.Create(components.Bump))
	components.Bump.SetValue(e, components.BumpData{
		Index: index,
		Up:    gween.New(0, bumpHeight, bumpUp, ease.OutQuad),
		Down:  gween.New(bumpHeight, 0, bumpDown, ease.InQuad),
	})
}

// Update advances every effect by dt seconds and removes finished ones.
func Update(w donburi.World, dt float32) {
	var done []*donburi.Entry

	components.Popup.Each(w, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		var finished bool
		p.Offset, _ = p.Rise.Update(dt)
		p.Alpha, finished = p.Fade.Update(dt)
		if finished {
			p.Done = true
		}
		if p.Done {
			done = append(done, e)
		}
	})

	components.Bump.Each(w, func(e *donburi.Entry) {
		b := components.Bump.Get(e)
		if !b.Done {
			if v, finished := b.Up.Update(dt); !finished {
				b.Offset = v
			} else {
				b.Offset, b.Done = b.Down.Update(dt)
			}
		}
		if b.Done {
			done = append(done, e)
		}
	})

	for _, e := range done {
		e.Remove()
	}
}

// BlockOffset returns how far the block at index is currently raised.
func BlockOffset(w donburi.World, index int) float64 {
	offset := 0.0
	components.Bump.Each(w, func(e *donburi.Entry) {
		if b := components.Bump.Get(e); b.Index == index && !b.Done {
			offset = float64(b.Offset)
		}
	})
	return offset
}

// Clear removes every effect, for level resets.
func Clear(w donburi.World) {
	var all []*donburi.Entry
	components.Popup.Each(w, func(e *donburi.Entry) { all = append(all, e) })
	components.Bump.Each(w, func(e *donburi.Entry) { all = append(all, e) })
	for _, e := range all {
		e.Remove()
	}
}
