package core

import (
	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spawnLevel creates one entity per layout element, in layout order.
// Platforms come first, then blocks, so collider IDs follow that order.
func (w *World) spawnLevel() {
	for _, p := range w.layout.Platforms {
		arch := archetypes.Platform
		if p.Kind == collision.KindPipe {
			arch = archetypes.Pipe
		}
		w.addCollider(arch.Spawn(w.ecs), p.Rect, p.Kind, tags.ResolvSolid)
	}
	for _, b := range w.layout.Blocks {
		w.addCollider(archetypes.Block.Spawn(w.ecs), b, collision.KindBlock, tags.ResolvSolid, tags.ResolvBlock)
	}

	for _, c := range w.layout.Coins {
		e := archetypes.Coin.Spawn(w.ecs)
		components.Coin.SetValue(e, components.CoinData{X: c.X, Y: c.Y, R: c.R})
		w.coins = append(w.coins, e)
	}

	w.player = archetypes.Player.Spawn(w.ecs)
	components.Player.Get(w.player).Spawn = *w.layout.PlayerSpawn

	for _, s := range w.layout.EnemySpawns {
		e := archetypes.Enemy.Spawn(w.ecs)
		components.Enemy.Get(e).Spawn = s
		w.enemies = append(w.enemies, e)
	}

	w.game = archetypes.Game.Spawn(w.ecs)
}

func (w *World) addCollider(e *donburi.Entry, r gamemath.Rect, kind collision.Kind, resolvTags ...string) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, resolvTags...)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Collider.SetValue(e, components.ColliderData{ID: len(w.colliders), Kind: kind})

	w.colliders = append(w.colliders, e)
	w.space.add(e)
}
