package systems

import (
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/controls"
	"github.com/automoto/coinhop/effects"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls feeds the action state to the simulation input and runs
// start/pause/reset commands.
func UpdateControls(e *ecs.ECS) {
	session := GetSession(e)
	input := getOrCreateInput(e)

	cmd := controls.Apply(input, session.Driver.Input())
	if cmd == controls.CommandReset {
		effects.Clear(e.World)
	}
	controls.Execute(cmd, session.Driver)

	if input.Action(cfg.ActionDebug).JustPressed {
		session.Renderer.Debug = !session.Renderer.Debug
		session.Logger.Debug("debug overlay", "enabled", session.Renderer.Debug)
	}
}
