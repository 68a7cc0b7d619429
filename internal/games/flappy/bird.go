package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled actor.
//
// Gravity is applied once per update rather than per second, and the
// velocity is scaled by dt for the displacement and unscaled afterwards.
type Bird struct {
	position core.Vec2
	velocity core.Vec2
	bounds   core.Rect

	gravity     float64
	movement    float64
	bounce      float64
	worldHeight float64
	minDelta    float64
	maxDelta    float64

	audio      core.CuePlayer
	flapVolume float64
}

// NewBird creates a bird at rest at (x, y).
func NewBird(x, y float64, cfg config.FlappyConfig, audio core.CuePlayer) *Bird {
	if audio == nil {
		audio = core.NopCuePlayer{}
	}
	return &Bird{
		position:    core.Vec2{X: x, Y: y},
		bounds:      core.NewRect(x, y, cfg.Bird.Width, cfg.Bird.Height),
		gravity:     cfg.Bird.Gravity,
		movement:    cfg.Bird.Movement,
		bounce:      cfg.Bird.BounceVelocity,
		worldHeight: cfg.World.Height,
		minDelta:    cfg.Session.MinDelta,
		maxDelta:    cfg.Session.MaxDelta,
		audio:       audio,
		flapVolume:  cfg.Audio.FlapVolume,
	}
}

// Update advances the bird by dt seconds.
func (b *Bird) Update(dt float64) {
	dt = clampDelta(dt, b.minDelta, b.maxDelta)

	// No gravity while grounded, otherwise velocity would run away.
	if b.position.Y > 0 {
		b.velocity.Y += b.gravity
	}

	b.velocity = b.velocity.Scale(dt)
	b.position = b.position.Add(core.Vec2{X: b.movement * dt, Y: b.velocity.Y})
	b.position.Y = core.ClampF(b.position.Y, 0, b.worldHeight)
	b.velocity = b.velocity.Scale(1 / dt)

	b.bounds.SetPosition(b.position.X, b.position.Y)
}

// Bounce gives the bird an instant upward impulse.
func (b *Bird) Bounce() {
	b.velocity.Y = b.bounce
	b.audio.Play(core.CueFlap, b.flapVolume)
}

// SetY moves the bird vertically, keeping its bounds in sync.
func (b *Bird) SetY(y float64) {
	b.position.Y = y
	b.bounds.SetPosition(b.position.X, b.position.Y)
}

// Position returns the bird's bottom-left corner.
func (b *Bird) Position() core.Vec2 {
	return b.position
}

// Velocity returns the bird's velocity in units per second.
func (b *Bird) Velocity() core.Vec2 {
	return b.velocity
}

// Bounds returns the bird's collision box.
func (b *Bird) Bounds() core.Rect {
	return b.bounds
}

// clampDelta maps a frame time into [min, max]. Zero, negative and
// non-finite values become min so the velocity unscale never divides by zero.
func clampDelta(dt, min, max float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < min {
		if math.IsInf(dt, 1) {
			return max
		}
		return min
	}
	if dt > max {
		return max
	}
	return dt
}
