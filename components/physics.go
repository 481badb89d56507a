package components

import (
	"github.com/automoto/coinhop/collision"
	"github.com/yohamta/donburi"
)

// Body holds an actor's rectangle, velocity, grounded flag and facing.
var Body = donburi.NewComponentType[collision.Body]()
