package components

import (
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Coyote    float64 // seconds of jump grace left after leaving the ground
	JumpsLeft int
	Spawn     leveldata.SpawnPoint
}

var Player = donburi.NewComponentType[PlayerData]()
