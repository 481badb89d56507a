package systems

import (
	"image/color"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/core"
	"github.com/automoto/coinhop/effects"
	"github.com/automoto/coinhop/fonts"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
)

// groundLine separates ground from floating brick platforms when choosing
// colors.
const groundLine = 450

var (
	colorSky        = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorCloud      = color.RGBA{0xd9, 0xd9, 0xd9, 0xd9}
	colorGround     = color.RGBA{0x14, 0x53, 0x2d, 0xff}
	colorGrass      = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
	colorBrick      = color.RGBA{0x9a, 0x34, 0x12, 0xff}
	colorBrickTop   = color.RGBA{0xc2, 0x41, 0x0c, 0xff}
	colorPipe       = color.RGBA{0x15, 0x80, 0x3d, 0xff}
	colorPipeRim    = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	colorBlock      = color.RGBA{0xf5, 0x9e, 0x0b, 0xff}
	colorBlockHit   = color.RGBA{0xa3, 0xa3, 0xa3, 0xff}
	colorInk        = color.RGBA{0x11, 0x18, 0x27, 0xff}
	colorCoin       = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	colorCoinEdge   = color.RGBA{0x85, 0x4d, 0x0e, 0xff}
	colorCoinShine  = color.RGBA{0x99, 0x99, 0x99, 0x99}
	colorOveralls   = color.RGBA{0x1d, 0x4e, 0xd8, 0xff}
	colorShirt      = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	colorSkin       = color.RGBA{0xf5, 0xc9, 0xa6, 0xff}
	colorCap        = color.RGBA{0xb9, 0x1c, 0x1c, 0xff}
	colorMoustache  = color.RGBA{0x7c, 0x2d, 0x12, 0xff}
	colorEnemy      = color.RGBA{0x92, 0x40, 0x0e, 0xff}
	colorEnemyFeet  = color.RGBA{0x45, 0x1a, 0x03, 0xff}
	colorEye        = color.White
	colorDebugSolid = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorDebugActor = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

var clouds = [][2]float64{{120, 90}, {360, 70}, {720, 110}}

// WorldRenderer draws simulation snapshots into a Canvas. Effects is the
// presentation world holding popups and block bumps.
type WorldRenderer struct {
	Effects donburi.World
	Debug   bool
}

func (r *WorldRenderer) Render(s core.Surface, snap *core.Snapshot) {
	canvas, ok := s.(*Canvas)
	if !ok {
		return
	}
	dst := canvas.Image()
	dst.Fill(colorSky)

	w, h := canvas.Size()
	v := fitView(w, h, snap.Width, snap.Height)

	for _, c := range clouds {
		drawCloud(dst, v, c[0], c[1])
	}

	for i, solid := range snap.Solids {
		switch solid.Kind {
		case collision.KindPipe:
			drawPipe(dst, v, solid.Rect)
		case collision.KindBlock:
			rect := solid.Rect
			if r.Effects != nil {
				rect.Y -= effects.BlockOffset(r.Effects, i)
			}
			drawBlock(dst, v, rect, solid.Hit)
		default:
			drawPlatform(dst, v, solid.Rect)
		}
	}

	for _, c := range snap.Coins {
		if !c.Taken {
			drawCoin(dst, v, c)
		}
	}

	for _, e := range snap.Enemies {
		if e.Alive {
			drawEnemy(dst, v, e)
		}
	}
	drawPlayer(dst, v, snap.Player)

	if r.Effects != nil {
		drawPopups(dst, v, r.Effects)
	}
	if r.Debug {
		drawColliders(dst, v, snap)
	}
}

func drawCloud(dst *ebiten.Image, v view, x, y float64) {
	v.circle(dst, x, y, 18, colorCloud)
	v.circle(dst, x+20, y-8, 22, colorCloud)
	v.circle(dst, x+44, y, 18, colorCloud)
}

func drawPlatform(dst *ebiten.Image, v view, r gamemath.Rect) {
	if r.Y >= groundLine {
		v.fill(dst, r, colorGround)
		v.fillRect(dst, r.X, r.Y, r.W, min(14, r.H), colorGrass)
		return
	}
	v.fill(dst, r, colorBrick)
	v.fillRect(dst, r.X, r.Y, r.W, min(6, r.H), colorBrickTop)
}

func drawPipe(dst *ebiten.Image, v view, r gamemath.Rect) {
	const rim = 18
	v.fillRect(dst, r.X+4, r.Y+rim, r.W-8, r.H-rim, colorPipe)
	v.fillRect(dst, r.X, r.Y, r.W, rim, colorPipeRim)
	v.stroke(dst, gamemath.Rect{X: r.X, Y: r.Y, W: r.W, H: rim}, 2, colorInk)
}

func drawBlock(dst *ebiten.Image, v view, r gamemath.Rect, hit bool) {
	fill, glyph := colorBlock, "?"
	if hit {
		fill, glyph = colorBlockHit, "!"
	}
	v.fill(dst, r, fill)
	v.stroke(dst, gamemath.Rect{X: r.X + 1.5, Y: r.Y + 1.5, W: r.W - 3, H: r.H - 3}, 3, colorInk)

	face := fonts.Glyph.Get()
	cx, cy := r.Center()
	ascent := float64(face.Metrics().Ascent.Ceil())
	v.text(dst, glyph, face, cx, cy+ascent/2-1, colorInk)
}

func drawCoin(dst *ebiten.Image, v view, c core.CoinView) {
	v.circle(dst, c.X, c.Y, c.R, colorCoin)
	v.ring(dst, c.X, c.Y, c.R, 3, colorCoinEdge)
	v.circle(dst, c.X-3, c.Y-3, c.R*0.35, colorCoinShine)
}

func drawEnemy(dst *ebiten.Image, v view, e core.ActorView) {
	r := e.Rect
	v.fillRect(dst, r.X+2, r.Y+4, r.W-4, r.H-10, colorEnemy)
	v.fillRect(dst, r.X, r.Y+r.H-8, 12, 8, colorEnemyFeet)
	v.fillRect(dst, r.Right()-12, r.Y+r.H-8, 12, 8, colorEnemyFeet)

	eyeX := r.X + r.W/2 + e.Facing*6
	v.fillRect(dst, eyeX-7, r.Y+10, 5, 7, colorEye)
	v.fillRect(dst, eyeX+2, r.Y+10, 5, 7, colorEye)
}

// drawPlayer mirrors every part around the body's center when facing left.
func drawPlayer(dst *ebiten.Image, v view, p core.ActorView) {
	x, y, w, h := p.X, p.Y, p.W, p.H
	part := func(dx, dy, pw, ph float64, clr color.Color) {
		if p.Facing < 0 {
			dx = w - dx - pw
		}
		v.fillRect(dst, x+dx, y+dy, pw, ph, clr)
	}

	part(4, h-10, 12, 8, colorInk)
	part(w-16, h-10, 12, 8, colorInk)
	part(6, 20, w-12, 22, colorOveralls)
	part(6, 14, w-12, 12, colorShirt)
	part(9, 2, w-18, 16, colorSkin)
	part(7, 0, w-14, 8, colorCap)
	part(21, 8, 3, 3, colorInk)
	part(14, 14, 14, 3, colorMoustache)
}

func drawPopups(dst *ebiten.Image, v view, w donburi.World) {
	face := fonts.Popup.Get()
	components.Popup.Each(w, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		clr := color.NRGBA{0xff, 0xff, 0xff, uint8(255 * max(0, min(1, p.Alpha)))}
		v.text(dst, p.Text, face, p.X, p.Y-float64(p.Offset), clr)
	})
}

func drawColliders(dst *ebiten.Image, v view, snap *core.Snapshot) {
	for _, s := range snap.Solids {
		v.stroke(dst, s.Rect, 1, colorDebugSolid)
	}
	v.stroke(dst, snap.Player.Rect, 1, colorDebugActor)
	for _, e := range snap.Enemies {
		if e.Alive {
			v.stroke(dst, e.Rect, 1, colorDebugActor)
		}
	}
}

// text draws s centered on cx with its baseline at y, in world units.
func (v view) text(dst *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(width)/2, 0)
	op.GeoM.Scale(v.scale, v.scale)
	sx, sy := v.point(cx, y)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}
