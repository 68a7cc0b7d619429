package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Cause names what ended a run.
type Cause string

const (
	CauseNone    Cause = ""
	CauseTube    Cause = "tube"
	CauseGround  Cause = "ground"
	CauseCeiling Cause = "ceiling"
)

// StepOutcome reports the events of a single World.Step.
type StepOutcome struct {
	Crashed          bool // The run ended during this step
	RestartRequested bool // Player asked to retry and the cooldown has elapsed
}

// World is the state of one run: the bird, the tube ring, the two ground
// segments and a camera that follows the bird horizontally.
//
// A World is single-use. Once Step reports RestartRequested, the owner
// disposes it and builds a fresh one.
type World struct {
	cfg   config.FlappyConfig
	rng   *rand.Rand
	clock core.Clock
	audio core.CuePlayer

	bird    *Bird
	tubes   []*Tube
	ground  [2]core.Vec2
	cameraX float64 // Camera centre

	passed    int
	crashed   bool
	cause     Cause
	startedAt time.Time
	crashedAt time.Time
	disposed  bool
}

// NewWorld builds a run with the bird at its start position and the tube
// ring laid out ahead of it.
func NewWorld(cfg config.FlappyConfig, rng *rand.Rand, clock core.Clock, audio core.CuePlayer) *World {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if audio == nil {
		audio = core.NopCuePlayer{}
	}

	w := &World{
		cfg:       cfg,
		rng:       rng,
		clock:     clock,
		audio:     audio,
		bird:      NewBird(cfg.Bird.StartX, cfg.Bird.StartY, cfg, audio),
		cameraX:   cfg.World.ViewportWidth() / 2,
		startedAt: clock.Now(),
	}

	w.ground[0] = core.Vec2{X: w.cameraLeft(), Y: cfg.World.GroundYOffset}
	w.ground[1] = core.Vec2{X: w.cameraLeft() + cfg.World.GroundWidth, Y: cfg.World.GroundYOffset}

	stride := cfg.Tubes.Stride()
	w.tubes = make([]*Tube, cfg.Tubes.Count)
	for i := range w.tubes {
		w.tubes[i] = NewTube(float64(i+2)*stride, rng, cfg.Tubes)
	}

	return w
}

// Step advances the world by dt seconds. jump is the primary action for
// this tick.
func (w *World) Step(jump bool, dt float64) StepOutcome {
	if w.disposed {
		return StepOutcome{}
	}

	if w.crashed {
		if jump && w.CooldownElapsed() {
			return StepOutcome{RestartRequested: true}
		}
		return StepOutcome{}
	}

	if jump {
		w.bird.Bounce()
	}

	w.updateGround()
	w.bird.Update(dt)
	w.cameraX = w.bird.Position().X + w.cfg.Session.CameraLead

	justCrashed := false
	crash := func(cause Cause) {
		// First cause in a tick wins and splat plays once
		if w.crashed {
			return
		}
		w.crashed = true
		w.cause = cause
		w.crashedAt = w.clock.Now()
		justCrashed = true
		w.audio.Play(core.CueSplat, w.cfg.Audio.SplatVolume)
	}

	birdBox := w.bird.Bounds()
	left := w.cameraLeft()
	recycleStep := w.cfg.Tubes.Stride() * float64(len(w.tubes))

	for _, t := range w.tubes {
		if left > t.X()+w.cfg.Tubes.Width {
			t.Reposition(t.X() + recycleStep)
			t.SetPassed(false)
		}

		if t.Collides(birdBox) {
			crash(CauseTube)
		}

		if !t.Passed() && birdBox.X > t.TopBounds().X {
			t.SetPassed(true)
			w.passed++
			w.audio.Play(core.CueSuccess, w.cfg.Audio.SuccessVolume)
		}
	}

	if w.bird.Position().Y <= w.cfg.World.GroundHeight+w.cfg.World.GroundYOffset {
		crash(CauseGround)
	}

	if ceiling := w.cfg.World.ViewportHeight(); w.bird.Position().Y > ceiling {
		w.bird.SetY(ceiling)
		crash(CauseCeiling)
	}

	return StepOutcome{Crashed: justCrashed}
}

// updateGround leapfrogs a segment once it has scrolled fully off the left edge.
// It runs before the camera moves, so it sees the previous tick's camera.
func (w *World) updateGround() {
	left := w.cameraLeft()
	for i := range w.ground {
		if left > w.ground[i].X+w.cfg.World.GroundWidth {
			w.ground[i].X += 2 * w.cfg.World.GroundWidth
		}
	}
}

// Dispose releases the world's entities. Step is a no-op afterwards.
func (w *World) Dispose() {
	w.bird = nil
	w.tubes = nil
	w.disposed = true
}

// Disposed reports whether Dispose has been called.
func (w *World) Disposed() bool {
	return w.disposed
}

// CooldownElapsed reports whether a retry would be accepted now.
func (w *World) CooldownElapsed() bool {
	return w.crashed && w.clock.Now().Sub(w.crashedAt) > w.cfg.Session.RestartDelay
}

// Summary describes the run so far.
func (w *World) Summary(seed int64) core.RunSummary {
	end := w.clock.Now()
	if w.crashed {
		end = w.crashedAt
	}
	return core.RunSummary{
		Passed:   w.passed,
		Cause:    string(w.cause),
		Duration: end.Sub(w.startedAt),
		Seed:     seed,
	}
}

func (w *World) cameraLeft() float64 {
	return w.cameraX - w.cfg.World.ViewportWidth()/2
}

// Bird returns the player actor.
func (w *World) Bird() *Bird { return w.bird }

// Tubes returns the tube ring in creation order.
func (w *World) Tubes() []*Tube { return w.tubes }

// Ground returns the bottom-left corners of the two ground segments.
func (w *World) Ground() [2]core.Vec2 { return w.ground }

// CameraX returns the horizontal centre of the camera.
func (w *World) CameraX() float64 { return w.cameraX }

// Passed returns the number of tubes passed this run.
func (w *World) Passed() int { return w.passed }

// Crashed reports whether the run has ended.
func (w *World) Crashed() bool { return w.crashed }

// Cause returns what ended the run, or CauseNone while flying.
func (w *World) Cause() Cause { return w.cause }
