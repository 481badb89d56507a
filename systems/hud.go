package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coinhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin = 12
	hudWidth  = 220
	hudHeight = 44
	hudTextX  = 22
	hudTextY  = 40
)

var colorHUDPanel = color.RGBA{0, 0, 0, 0x59}

// DrawHUD renders the coin counter panel in the top-left corner, in device
// pixels scaled by the canvas scale factor.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHUD(e)
	scale := 1.0
	if c := GetSession(e).Canvas.Canvas(); c != nil {
		scale = c.Scale()
	}

	vector.FillRect(screen,
		float32(hudMargin*scale), float32(hudMargin*scale),
		float32(hudWidth*scale), float32(hudHeight*scale),
		colorHUDPanel, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(hudTextX*scale, hudTextY*scale)
	text.DrawWithOptions(screen, fmt.Sprintf("Coins: %d", hud.Score), fonts.HUD.Get(), op)
}
