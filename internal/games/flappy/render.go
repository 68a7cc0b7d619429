package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▶'
	TubeChar      = '█'
	TubeCapTop    = '▀'
	TubeCapBottom = '▄'
	GroundChar    = '▓'
	GrassChar     = '▔'
)

// viewport maps world coordinates (y-up) onto screen cells (y-down).
type viewport struct {
	left, width, height float64
	sx, sy              float64 // Cells per world unit
}

func newViewport(dst *core.Screen, cameraX float64, world config.FlappyWorld) viewport {
	vw, vh := world.ViewportWidth(), world.ViewportHeight()
	return viewport{
		left:   cameraX - vw/2,
		width:  vw,
		height: vh,
		sx:     float64(dst.Width()) / vw,
		sy:     float64(dst.Height()) / vh,
	}
}

// cells converts a world rectangle into a cell rectangle. Any rectangle with
// a visible extent covers at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor((r.X - v.left) * v.sx))
	x1 := int(math.Ceil((r.Right() - v.left) * v.sx))
	y0 := int(math.Floor((v.height - r.Top()) * v.sy))
	y1 := int(math.Ceil((v.height - r.Y) * v.sy))
	return x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1)
}

func renderWorld(dst *core.Screen, w *World, cfg config.FlappyConfig) {
	if w == nil || w.Disposed() {
		return
	}
	vp := newViewport(dst, w.CameraX(), cfg.World)

	for _, t := range w.Tubes() {
		drawTube(dst, vp, t)
	}
	drawGround(dst, vp, w.Ground(), cfg.World)
	drawBird(dst, vp, w.Bird().Bounds())

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Passed: %d ", w.Passed()), core.ColorBrightWhite)

	if w.Crashed() {
		hint := "..."
		if w.CooldownElapsed() {
			hint = "Press SPACE or click to retry"
		}
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Passed: %d  |  hit the %s", w.Passed(), w.Cause()), hint)
	}
}

func drawTube(dst *core.Screen, vp viewport, t *Tube) {
	x, y, wd, h := vp.cells(t.TopBounds())
	dst.DrawRect(x, y, wd, h, TubeChar, core.ColorGreen)
	dst.DrawHLine(x, y+h-1, wd, TubeCapTop, core.ColorBrightGreen)

	x, y, wd, h = vp.cells(t.BottomBounds())
	dst.DrawRect(x, y, wd, h, TubeChar, core.ColorGreen)
	dst.DrawHLine(x, y, wd, TubeCapBottom, core.ColorBrightGreen)
}

func drawGround(dst *core.Screen, vp viewport, segments [2]core.Vec2, world config.FlappyWorld) {
	for _, g := range segments {
		x, y, w, h := vp.cells(core.NewRect(g.X, g.Y, world.GroundWidth, world.GroundHeight))
		dst.DrawRect(x, y, w, h, GroundChar, core.ColorOrange)
		dst.DrawHLine(x, y, w, GrassChar, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, vp viewport, box core.Rect) {
	x, y, w, h := vp.cells(box)
	dst.DrawRect(x, y, w, h, BirdChar, core.ColorBrightYellow)
	dst.SetColored(x+w-1, y, BeakChar, core.ColorOrange)
}

func renderMenu(dst *core.Screen, cfg config.FlappyConfig) {
	vp := newViewport(dst, cfg.World.ViewportWidth()/2, cfg.World)
	ground := [2]core.Vec2{
		{X: 0, Y: cfg.World.GroundYOffset},
		{X: cfg.World.GroundWidth, Y: cfg.World.GroundYOffset},
	}
	drawGround(dst, vp, ground, cfg.World)
	drawBird(dst, vp, core.NewRect(cfg.Bird.StartX, cfg.Bird.StartY, cfg.Bird.Width, cfg.Bird.Height))

	mid := dst.Height() / 3
	dst.DrawTextCentered(mid, "F L A P P Y   B I R D", core.ColorBrightYellow)
	dst.DrawTextCentered(mid+2, "Press SPACE or click to play", core.ColorWhite)
	dst.DrawTextCentered(mid+3, "P pause  |  Q quit", core.ColorGray)
}

func renderPaused(dst *core.Screen) {
	drawCenteredMessage(dst, "PAUSED", "Press P to resume")
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorBrightWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(y+1+i, l, c)
	}
}
