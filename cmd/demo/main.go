// Command demo is a visual collision playground. A chipmunk space drops a
// handful of boxes onto the floor; each body is mirrored by a polygon
// hitbox, and one more hitbox follows the mouse. Hitboxes flash red while
// they intersect anything.
package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/hitbox"
	"github.com/milk9111/hitbox/render"
	"github.com/milk9111/hitbox/shapes"
)

const (
	screenWidth  = 800
	screenHeight = 600

	boxSize  = 40.0
	boxCount = 6
)

type Game struct {
	space *cp.Space

	bodies   []*cp.Body
	hitboxes []*hitbox.Hitbox
	cursor   *hitbox.Hitbox

	colliding       []bool
	cursorColliding bool

	lib       *shapes.Library
	watcher   *shapes.Watcher
	cursorKey string

	debug bool
}

func NewGame(shapesDir string, debug bool) (*Game, error) {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: 600})

	g := &Game{space: space, debug: debug}
	g.buildWalls()
	g.spawnBoxes()

	g.cursor = defaultCursorHitbox()
	if shapesDir != "" {
		lib, err := shapes.LoadLibrary(shapesDir)
		if err != nil {
			return nil, err
		}
		g.lib = lib
		g.refreshCursorShape()

		watcher, err := shapes.NewWatcher(shapesDir)
		if err != nil {
			return nil, err
		}
		g.watcher = watcher
	}

	g.colliding = make([]bool, len(g.hitboxes))
	return g, nil
}

func (g *Game) buildWalls() {
	walls := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: screenHeight}, cp.Vector{X: screenWidth, Y: screenHeight}},
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: screenHeight}},
		{cp.Vector{X: screenWidth, Y: 0}, cp.Vector{X: screenWidth, Y: screenHeight}},
	}
	for _, w := range walls {
		shape := cp.NewSegment(g.space.StaticBody, w.a, w.b, 1)
		shape.SetElasticity(0.5)
		shape.SetFriction(0.8)
		g.space.AddShape(shape)
	}
}

func (g *Game) spawnBoxes() {
	const mass = 1.0
	for i := 0; i < boxCount; i++ {
		moment := cp.MomentForBox(mass, boxSize, boxSize)
		body := cp.NewBody(mass, moment)
		body.SetPosition(cp.Vector{
			X: 100 + rand.Float64()*(screenWidth-200),
			Y: 50 + rand.Float64()*150,
		})

		shape := cp.NewBox(body, boxSize, boxSize, 0)
		shape.SetElasticity(0.4)
		shape.SetFriction(0.8)

		g.space.AddBody(body)
		g.space.AddShape(shape)

		g.bodies = append(g.bodies, body)
		// The mirrored hitbox shares the body's center, so local vertices
		// are centered on the origin. Rotation is not mirrored; hitboxes
		// stay axis-aligned.
		half := float32(boxSize / 2)
		g.hitboxes = append(g.hitboxes, hitbox.FromCoords(
			-half, -half,
			half, -half,
			half, half,
			-half, half,
		))
	}
}

func defaultCursorHitbox() *hitbox.Hitbox {
	return hitbox.FromCoords(-15, -15, 15, -15, 15, 15, -15, 15)
}

// refreshCursorShape picks the first library shape, falling back to the
// built-in square when the library is empty.
func (g *Game) refreshCursorShape() {
	names := g.lib.Names()
	if len(names) == 0 {
		g.cursorKey = ""
		g.cursor = defaultCursorHitbox()
		return
	}
	g.cursorKey = names[0]
	if h, ok := g.lib.Get(g.cursorKey); ok {
		g.cursor = h
	}
}

func (g *Game) Update() error {
	g.drainWatcher()

	g.space.Step(1.0 / 60.0)

	for i, body := range g.bodies {
		pos := body.Position()
		g.hitboxes[i].SetX(float32(pos.X))
		g.hitboxes[i].SetY(float32(pos.Y))
	}

	cx, cy := ebiten.CursorPosition()
	g.cursor.SetX(float32(cx))
	g.cursor.SetY(float32(cy))

	g.resolveCollisions()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if err := g.lib.Reload(path); err != nil {
				log.Printf("demo: reload %s: %v", path, err)
				continue
			}
			g.refreshCursorShape()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("demo: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) resolveCollisions() {
	for i := range g.colliding {
		g.colliding[i] = false
	}
	g.cursorColliding = false

	for i := 0; i < len(g.hitboxes); i++ {
		for j := i + 1; j < len(g.hitboxes); j++ {
			if g.hitboxes[i].Intersects(g.hitboxes[j]) {
				g.colliding[i] = true
				g.colliding[j] = true
			}
		}
		if g.hitboxes[i].Intersects(g.cursor) {
			g.colliding[i] = true
			g.cursorColliding = true
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

	for i, h := range g.hitboxes {
		clr := color.Color(colornames.Lightgrey)
		if g.colliding[i] {
			clr = colornames.Red
		}
		render.DrawHitbox(screen, h, clr)
		if g.debug {
			render.DrawBounds(screen, h, colornames.Yellow)
		}
	}

	cursorClr := color.Color(colornames.Lightgreen)
	if g.cursorColliding {
		cursorClr = colornames.Red
	}
	render.DrawHitbox(screen, g.cursor, cursorClr)
	if g.debug {
		render.DrawBounds(screen, g.cursor, colornames.Yellow)
	}

	msg := "move the mouse to push a hitbox around"
	if g.cursorKey != "" {
		msg += "\ncursor shape: " + g.cursorKey
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	shapesDir := flag.String("shapes", "", "directory of yaml shape files for the cursor hitbox")
	debug := flag.Bool("debug", false, "draw broad-phase bounds")
	flag.Parse()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("hitbox demo")

	game, err := NewGame(*shapesDir, *debug)
	if err != nil {
		log.Fatal(err)
	}
	if game.watcher != nil {
		defer game.watcher.Close()
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
