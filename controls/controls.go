// Package controls turns buffered action state into simulation input and
// lifecycle commands.
package controls

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/core"
)

// Command is a lifecycle request raised by the player.
type Command int

const (
	CommandNone Command = iota
	CommandToggleRunning
	CommandReset
)

// Lifecycle is the part of the driver that commands act on.
type Lifecycle interface {
	Start()
	Stop()
	Reset()
	Running() bool
}

// Apply copies held directions into target and latches the jump edge. A
// press stays latched until a simulation step consumes it, so frames that
// run no step do not drop it.
func Apply(in *components.InputData, target *core.Input) Command {
	target.Left = in.Action(config.ActionMoveLeft).Pressed
	target.Right = in.Action(config.ActionMoveRight).Pressed
	if target.Left && target.Right {
		target.Left, target.Right = false, false
	}

	jump := in.Action(config.ActionJump)
	target.JumpHeld = jump.Pressed
	if jump.JustPressed {
		target.JumpPressed = true
	}

	switch {
	case in.Action(config.ActionReset).JustPressed:
		return CommandReset
	case in.Action(config.ActionStartPause).JustPressed:
		return CommandToggleRunning
	}
	return CommandNone
}

// Execute runs cmd against the driver.
func Execute(cmd Command, l Lifecycle) {
	switch cmd {
	case CommandToggleRunning:
		if l.Running() {
			l.Stop()
		} else {
			l.Start()
		}
	case CommandReset:
		l.Reset()
	}
}
