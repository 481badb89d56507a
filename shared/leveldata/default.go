package leveldata

import (
	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/shared/gamemath"
)

const (
	// GroundY is the top of the ground strip in the default level.
	GroundY = 470
	// Tile is the edge length of bricks and blocks.
	Tile = 40
)

// Default returns the built-in level: a ground strip, a brick row interleaved
// with two blocks, a pipe, two more blocks, four coins, and one enemy.
func Default() *Layout {
	tile := func(x, y float64) gamemath.Rect {
		return gamemath.Rect{X: x, Y: y, W: Tile, H: Tile}
	}

	return &Layout{
		Name:   "default",
		Width:  960,
		Height: 540,
		Platforms: []Solid{
			{Rect: gamemath.Rect{X: 0, Y: GroundY, W: 960, H: 70}, Kind: collision.KindPlatform},
			{Rect: tile(300, 300), Kind: collision.KindPlatform},
			{Rect: tile(380, 300), Kind: collision.KindPlatform},
			{Rect: tile(460, 300), Kind: collision.KindPlatform},
			{Rect: gamemath.Rect{X: 820, Y: 350, W: 64, H: 120}, Kind: collision.KindPipe},
		},
		Blocks: []gamemath.Rect{
			tile(40, 300),
			tile(340, 300),
			tile(420, 300),
			tile(460, 80),
		},
		Coins: []Coin{
			{X: 320, Y: 240, R: 10},
			{X: 380, Y: 240, R: 10},
			{X: 440, Y: 240, R: 10},
			{X: 740, Y: 240, R: 10},
		},
		PlayerSpawn: &SpawnPoint{X: 60, Y: 400},
		EnemySpawns: []SpawnPoint{
			{X: 620, Y: GroundY - 34 - 0.01},
		},
	}
}
