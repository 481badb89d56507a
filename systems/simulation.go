package systems

import (
	"github.com/automoto/coinhop/effects"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances popups and block bumps. Effects freeze while the
// simulation is paused.
func UpdateEffects(e *ecs.ECS) {
	if !GetSession(e).Driver.Running() {
		return
	}
	effects.Update(e.World, 1/float32(ebiten.TPS()))
}

// UpdateSimulation runs one host frame of the driver: fixed steps, then one
// render into the canvas and one HUD emission.
func UpdateSimulation(e *ecs.ECS) {
	GetSession(e).Driver.Frame()
}
