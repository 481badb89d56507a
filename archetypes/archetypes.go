package archetypes

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Collider,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Object,
		components.Collider,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
		components.Collider,
		components.Block,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
	)
	Game = newArchetype(
		components.Game,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
