package components

import (
	"github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
)

// InputData holds two frames of action state so systems can detect edges.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// ActionState is the resolved state of one action this frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Action resolves the state of id from the two buffered frames.
func (in *InputData) Action(id config.ActionID) ActionState {
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
