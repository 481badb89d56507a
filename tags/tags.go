package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Platform = donburi.NewTag().SetName("Platform")
	Pipe     = donburi.NewTag().SetName("Pipe")
	Block    = donburi.NewTag().SetName("Block")
	Coin     = donburi.NewTag().SetName("Coin")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBlock = "block"
	ResolvProbe = "probe"
)
