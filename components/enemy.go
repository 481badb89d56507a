package components

import (
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Alive bool
	Spawn leveldata.SpawnPoint
}

var Enemy = donburi.NewComponentType[EnemyData]()
