package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Tube is a gap obstacle: an upper and a lower barrier sharing one x.
// Tubes are recycled by Reposition instead of being reallocated.
type Tube struct {
	top       core.Vec2 // Bottom-left corner of the upper barrier
	bottom    core.Vec2 // Bottom-left corner of the lower barrier
	boundsTop core.Rect
	boundsBot core.Rect
	passed    bool

	rng *rand.Rand
	cfg config.FlappyTubes
}

// NewTube creates a tube at x with a random opening height.
func NewTube(x float64, rng *rand.Rand, cfg config.FlappyTubes) *Tube {
	t := &Tube{
		rng:       rng,
		cfg:       cfg,
		boundsTop: core.NewRect(0, 0, cfg.Width, cfg.Height),
		boundsBot: core.NewRect(0, 0, cfg.Width, cfg.Height),
	}
	t.place(x)
	return t
}

// Reposition moves the tube to x and draws a new opening height.
func (t *Tube) Reposition(x float64) {
	t.place(x)
}

func (t *Tube) place(x float64) {
	topY := float64(t.rng.Intn(t.cfg.Fluctuation)) + t.cfg.Gap + t.cfg.LowestOpening
	t.top = core.Vec2{X: x, Y: topY}
	t.bottom = core.Vec2{X: x, Y: topY - t.cfg.Gap - t.cfg.Height}

	t.boundsTop.SetPosition(t.top.X, t.top.Y)
	t.boundsBot.SetPosition(t.bottom.X, t.bottom.Y)
}

// Collides reports whether box overlaps either barrier.
func (t *Tube) Collides(box core.Rect) bool {
	return box.Overlaps(t.boundsTop) || box.Overlaps(t.boundsBot)
}

// Passed reports whether the bird has flown through this tube since it was placed.
func (t *Tube) Passed() bool {
	return t.passed
}

// SetPassed sets the passed flag.
func (t *Tube) SetPassed(passed bool) {
	t.passed = passed
}

// X returns the left edge shared by both barriers.
func (t *Tube) X() float64 {
	return t.top.X
}

// TopY returns the bottom edge of the upper barrier.
func (t *Tube) TopY() float64 {
	return t.top.Y
}

// BottomY returns the bottom edge of the lower barrier.
func (t *Tube) BottomY() float64 {
	return t.bottom.Y
}

// TopBounds returns the upper barrier's collision box.
func (t *Tube) TopBounds() core.Rect {
	return t.boundsTop
}

// BottomBounds returns the lower barrier's collision box.
func (t *Tube) BottomBounds() core.Rect {
	return t.boundsBot
}
