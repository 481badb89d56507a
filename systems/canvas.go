package systems

import (
	"github.com/automoto/coinhop/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Canvas is the offscreen image the world is rendered into. Its size is in
// device pixels; Scale is the device scale factor.
type Canvas struct {
	image *ebiten.Image
	scale float64
}

func (c *Canvas) Size() (int, int) {
	b := c.image.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Scale() float64 { return c.scale }

func (c *Canvas) Image() *ebiten.Image { return c.image }

// CanvasSlot owns the current canvas and recreates it when the window size
// changes. It hands the driver nil until a size is known.
type CanvasSlot struct {
	canvas *Canvas
}

func (s *CanvasSlot) Surface() core.Surface {
	if s.canvas == nil {
		return nil
	}
	return s.canvas
}

// Canvas returns the current canvas, or nil.
func (s *CanvasSlot) Canvas() *Canvas {
	return s.canvas
}

// Resize makes sure the canvas matches the given device size. A non-positive
// size drops the canvas.
func (s *CanvasSlot) Resize(width, height int, scale float64) {
	if width <= 0 || height <= 0 {
		s.release()
		return
	}
	if s.canvas != nil {
		w, h := s.canvas.Size()
		if w == width && h == height {
			s.canvas.scale = scale
			return
		}
	}
	s.release()
	s.canvas = &Canvas{image: ebiten.NewImage(width, height), scale: scale}
}

func (s *CanvasSlot) release() {
	if s.canvas != nil {
		s.canvas.image.Deallocate()
		s.canvas = nil
	}
}

// DrawWorld copies the rendered canvas to the screen.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	c := GetSession(e).Canvas.Canvas()
	if c == nil {
		return
	}
	screen.DrawImage(c.Image(), nil)
}
