package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionStartPause
	ActionReset
	ActionDebug
	ActionCount // Must be last - used for array sizing
)
