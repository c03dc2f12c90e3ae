// Command shapeedit builds hitbox shapes interactively. Left-click to add
// vertices; the polygon preview closes back to the first point as you go.
//
//	S  save the shape as yaml to -o
//	C  copy the yaml to the system clipboard
//	Z  remove the last vertex
//	R  start over
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/hitbox"
	"github.com/milk9111/hitbox/render"
	"github.com/milk9111/hitbox/shapes"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

type Editor struct {
	outPath   string
	shapeName string

	points  []hitbox.Point
	preview *hitbox.Hitbox

	status string
}

func NewEditor(outPath, shapeName string) *Editor {
	return &Editor{
		outPath:   outPath,
		shapeName: shapeName,
		status:    "click to add vertices",
	}
}

func (e *Editor) rebuildPreview() {
	if len(e.points) == 0 {
		e.preview = nil
		return
	}
	e.preview = hitbox.New(e.points)
}

func (e *Editor) spec() *shapes.Spec {
	return shapes.FromHitbox(e.shapeName, hitbox.New(e.points))
}

func (e *Editor) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		e.points = append(e.points, hitbox.Point{X: float32(x), Y: float32(y)})
		e.rebuildPreview()
		e.status = fmt.Sprintf("%d vertices", len(e.points))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if len(e.points) > 0 {
			e.points = e.points[:len(e.points)-1]
			e.rebuildPreview()
			e.status = fmt.Sprintf("%d vertices", len(e.points))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		e.points = nil
		e.rebuildPreview()
		e.status = "cleared"
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := e.spec().Save(e.outPath); err != nil {
			e.status = err.Error()
			break
		}
		e.status = "saved " + e.outPath
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		data, err := e.spec().Encode()
		if err != nil {
			e.status = err.Error()
			break
		}
		clipboard.Write(clipboard.FmtText, data)
		e.status = "copied yaml to clipboard"
	}

	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

	if e.preview != nil {
		render.DrawHitbox(screen, e.preview, colornames.Lightgreen)
	}
	for _, p := range e.points {
		vector.StrokeLine(screen, p.X-3, p.Y, p.X+3, p.Y, 1, colornames.White, true)
		vector.StrokeLine(screen, p.X, p.Y-3, p.X, p.Y+3, 1, colornames.White, true)
	}

	ebitenutil.DebugPrint(screen, "S save  C copy  Z undo  R reset\n"+e.status)
}

func (e *Editor) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	outPath := flag.String("o", "shape.yaml", "output yaml path")
	shapeName := flag.String("name", "shape", "shape name written into the yaml")
	flag.Parse()

	if err := clipboard.Init(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("shapeedit")

	if err := ebiten.RunGame(NewEditor(*outPath, *shapeName)); err != nil {
		log.Fatal(err)
	}
}
