// Package render draws hitboxes onto ebiten screens for debugging and
// tooling. It is a thin LinePainter implementation; all geometry comes from
// the hitbox package.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/hitbox"
)

// ScreenPainter strokes lines onto an ebiten image.
type ScreenPainter struct {
	Screen *ebiten.Image
	Color  color.Color
	Width  float32
}

// NewScreenPainter returns a painter with the default style (lightgrey,
// width 1, antialiased).
func NewScreenPainter(screen *ebiten.Image) *ScreenPainter {
	return &ScreenPainter{
		Screen: screen,
		Color:  colornames.Lightgrey,
		Width:  1,
	}
}

func (p *ScreenPainter) PaintLine(x1, y1, x2, y2 float32) {
	if p == nil || p.Screen == nil {
		return
	}
	vector.StrokeLine(p.Screen, x1, y1, x2, y2, p.Width, p.Color, true)
}

// DrawHitbox strokes every edge of h in the given color.
func DrawHitbox(screen *ebiten.Image, h *hitbox.Hitbox, clr color.Color) {
	if screen == nil || h == nil {
		return
	}
	h.Draw(&ScreenPainter{Screen: screen, Color: clr, Width: 1})
}

// DrawBounds outlines h's broad-phase rectangle, which is often the easiest
// way to see why two shapes were or weren't rejected early.
func DrawBounds(screen *ebiten.Image, h *hitbox.Hitbox, clr color.Color) {
	if screen == nil || h == nil {
		return
	}
	b := h.Bounds()
	pos := b.Position()
	vector.StrokeRect(screen, pos.X, pos.Y, b.Width, b.Height, 1, clr, true)
}
