package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/core"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionData is the singleton tying the presentation world to the
// simulation it shows.
type SessionData struct {
	Driver   *core.Driver
	Canvas   *CanvasSlot
	Renderer *WorldRenderer
	Audio    *AudioSink
	Logger   *log.Logger
}

var Session = donburi.NewComponentType[SessionData]()

// GetSession returns the session singleton. The scene creates it before any
// system runs.
func GetSession(e *ecs.ECS) *SessionData {
	entry, ok := Session.First(e.World)
	if !ok {
		panic("session not created")
	}
	return Session.Get(entry)
}

// GetOrCreateHUD returns the HUD singleton, creating it if needed.
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	return getOrCreateHUD(e.World)
}

func getOrCreateHUD(w donburi.World) *components.HUDData {
	if _, ok := components.HUD.First(w); !ok {
		w.Entry(w.Create(components.HUD))
	}
	entry, _ := components.HUD.First(w)
	return components.HUD.Get(entry)
}

// HUDListener returns callbacks that mirror driver notifications into the
// HUD singleton of w.
func HUDListener(w donburi.World) (onHUD func(core.HUD), onRunning func(bool)) {
	onHUD = func(h core.HUD) {
		hud := getOrCreateHUD(w)
		hud.Score = h.Score
		hud.Grounded = h.Grounded
	}
	onRunning = func(running bool) {
		hud := getOrCreateHUD(w)
		hud.Running = running
		if running {
			hud.Started = true
		}
	}
	return onHUD, onRunning
}
