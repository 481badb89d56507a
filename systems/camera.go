package systems

import (
	"image/color"

	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// view maps world coordinates into a surface, fitting the whole world and
// centering it.
type view struct {
	scale      float64
	offX, offY float64
}

func fitView(surfaceW, surfaceH int, worldW, worldH float64) view {
	sw, sh := float64(surfaceW), float64(surfaceH)
	scale := min(sw/worldW, sh/worldH)
	return view{
		scale: scale,
		offX:  (sw - worldW*scale) / 2,
		offY:  (sh - worldH*scale) / 2,
	}
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(v.offX + x*v.scale), float32(v.offY + y*v.scale)
}

func (v view) fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	sx, sy := v.point(x, y)
	vector.FillRect(dst, sx, sy, float32(w*v.scale), float32(h*v.scale), clr, false)
}

func (v view) fill(dst *ebiten.Image, r gamemath.Rect, clr color.Color) {
	v.fillRect(dst, r.X, r.Y, r.W, r.H, clr)
}

func (v view) stroke(dst *ebiten.Image, r gamemath.Rect, width float64, clr color.Color) {
	sx, sy := v.point(r.X, r.Y)
	vector.StrokeRect(dst, sx, sy, float32(r.W*v.scale), float32(r.H*v.scale), float32(width*v.scale), clr, true)
}

func (v view) circle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	sx, sy := v.point(x, y)
	vector.FillCircle(dst, sx, sy, float32(r*v.scale), clr, true)
}

func (v view) ring(dst *ebiten.Image, x, y, r, width float64, clr color.Color) {
	sx, sy := v.point(x, y)
	vector.StrokeCircle(dst, sx, sy, float32(r*v.scale), float32(width*v.scale), clr, true)
}
