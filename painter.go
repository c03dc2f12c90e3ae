package hitbox

// LinePainter receives one translated edge at a time when a hitbox is drawn.
// Implementations are purely observational; drawing makes no geometry
// decisions. See the render package for an ebiten-backed implementation.
type LinePainter interface {
	PaintLine(x1, y1, x2, y2 float32)
}

// PainterFunc adapts a plain function to the LinePainter interface.
type PainterFunc func(x1, y1, x2, y2 float32)

func (f PainterFunc) PaintLine(x1, y1, x2, y2 float32) {
	f(x1, y1, x2, y2)
}
