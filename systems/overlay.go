package systems

import (
	"image/color"

	"github.com/automoto/coinhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	colorOverlay     = color.RGBA{0, 0, 0, 0x8c}
	colorOverlayText = color.White
	colorOverlayHint = color.RGBA{0xcb, 0xd5, 0xe1, 0xff}
)

const controlsHint = "Arrows/A/D: Move   Space/W/Up: Jump   Enter: Start/Pause   R: Reset"

// DrawOverlay dims the screen and shows the start or pause prompt while the
// simulation is stopped.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHUD(e)
	if hud.Running {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), colorOverlay, false)

	title := "Press Enter to start"
	if hud.Started {
		title = "Paused"
	}
	drawCentered(screen, title, fonts.Title.Get(), width, height/2, colorOverlayText)
	drawCentered(screen, controlsHint, fonts.Small.Get(), width, height/2+40, colorOverlayHint)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (width-w)/2, y, clr)
}
