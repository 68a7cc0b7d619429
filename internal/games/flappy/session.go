// Package flappy implements a Flappy Bird-style game.
// The player taps to keep a bird aloft while it flies through gaps in an
// endless ring of recycled tubes. One collision ends the run.
package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func init() {
	registry.Register("flappy", "Flappy Bird", func(deps registry.Deps) (registry.Game, error) {
		cfg, err := config.LoadFlappy(deps.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg,
			WithAudio(deps.Audio),
			WithClock(deps.Clock),
			WithLogger(deps.Logger),
		), nil
	})
}

// Session is the top-level controller. It owns the current scene, the pause
// flag and the random source shared by every run.
type Session struct {
	cfg    config.FlappyConfig
	audio  core.CuePlayer
	clock  core.Clock
	logger *log.Logger

	runtime  core.RuntimeConfig
	rng      *rand.Rand
	scene    Scene
	paused   bool
	restarts int
	runs     int
}

// Option configures a Session.
type Option func(*Session)

// WithAudio routes sound cues to p.
func WithAudio(p core.CuePlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.audio = p
		}
	}
}

// WithClock sets the wall clock used for run durations and the retry cooldown.
func WithClock(c core.Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger for scene transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session. Call Reset before the first Step.
func New(cfg config.FlappyConfig, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		audio:  core.NopCuePlayer{},
		clock:  core.SystemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !cfg.Audio.Enabled {
		s.audio = core.NopCuePlayer{}
	}
	return s
}

// ID returns the unique identifier for this game.
func (s *Session) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (s *Session) Title() string {
	return "Flappy Bird"
}

// Reset discards any current scene and returns to the start screen.
func (s *Session) Reset(rc core.RuntimeConfig) {
	if s.scene != nil {
		s.scene.Hide()
		s.scene.Dispose()
	}

	s.runtime = rc
	s.rng = rand.New(rand.NewSource(rc.Seed))
	s.paused = false
	s.restarts = 0
	s.runs = 0

	s.scene = newMenuScene(s)
	s.scene.Show()
	s.scene.Resize(rc.ScreenW, rc.ScreenH)
}

// Step advances the session by one frame of dt seconds.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
		if s.paused {
			s.scene.Pause()
		} else {
			s.scene.Resume()
		}
		s.logger.Debug("pause toggled", "paused", s.paused)
	}

	if s.paused {
		return core.StepResult{State: s.State()}
	}

	res := s.scene.Update(in, dt)
	if res.next != nil {
		s.setScene(res.next)
	}

	return core.StepResult{State: s.State(), RunEnded: res.runEnded}
}

func (s *Session) setScene(next Scene) {
	from := s.scene.State().Mode
	s.scene.Hide()
	s.scene.Dispose()

	s.scene = next
	s.scene.Show()
	s.scene.Resize(s.runtime.ScreenW, s.runtime.ScreenH)
	s.logger.Debug("scene changed", "from", from, "to", s.scene.State().Mode)
}

// Render draws the current scene into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.scene.Render(dst)
	if s.paused {
		renderPaused(dst)
	}
}

// Resize records new terminal dimensions.
func (s *Session) Resize(width, height int) {
	s.runtime.ScreenW = width
	s.runtime.ScreenH = height
	if s.scene != nil {
		s.scene.Resize(width, height)
	}
}

// State returns the current session state.
func (s *Session) State() core.GameState {
	st := s.scene.State()
	st.Paused = s.paused
	return st
}

// nextSeed returns the seed for the next run. The first run uses the
// session seed itself so a run can be replayed with --seed.
func (s *Session) nextSeed() int64 {
	s.runs++
	if s.runs == 1 {
		return s.runtime.Seed
	}
	return s.rng.Int63()
}

func (s *Session) rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
