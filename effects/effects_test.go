package effects

import (
	"testing"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func count(w donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCoinRewardSpawnsPopupOnly(t *testing.T) {
	w := donburi.NewWorld()

	SpawnReward(w, core.Reward{Source: core.RewardCoin, Points: 1, X: 320, Y: 240})

	assert.Equal(t, 1, count(w, components.Popup))
	assert.Equal(t, 0, count(w, components.Bump))

	var label string
	components.Popup.Each(w, func(e *donburi.Entry) { label = components.Popup.Get(e).Text })
	assert.Equal(t, "+1", label)
}

func TestBlockBumpRisesAndSettles(t *testing.T) {
	w := donburi.NewWorld()
	SpawnReward(w, core.Reward{Source: core.RewardBlock, Index: 5, Points: 1})
	require.Equal(t, 1, count(w, components.Bump))

	Update(w, 0.03)
	assert.Greater(t, BlockOffset(w, 5), 0.0)
	assert.Equal(t, 0.0, BlockOffset(w, 6))

	for i := 0; i < 60; i++ {
		Update(w, 1.0/60)
	}
	assert.Equal(t, 0.0, BlockOffset(w, 5))
	assert.Equal(t, 0, count(w, components.Bump))
	assert.Equal(t, 0, count(w, components.Popup))
}

func TestPopupFadesOut(t *testing.T) {
	w := donburi.NewWorld()
	SpawnReward(w, core.Reward{Source: core.RewardStomp, Points: 3})

	Update(w, 0.3)
	var p components.PopupData
	components.Popup.Each(w, func(e *donburi.Entry) { p = *components.Popup.Get(e) })
	assert.Equal(t, "+3", p.Text)
	assert.Greater(t, p.Offset, float32(0))
	assert.Less(t, p.Alpha, float32(1))
}

func TestClearRemovesEverything(t *testing.T) {
	w := donburi.NewWorld()
	SpawnReward(w, core.Reward{Source: core.RewardBlock, Index: 1, Points: 1})
	SpawnReward(w, core.Reward{Source: core.RewardCoin, Points: 1})

	Clear(w)

	assert.Equal(t, 0, count(w, components.Popup))
	assert.Equal(t, 0, count(w, components.Bump))
}
