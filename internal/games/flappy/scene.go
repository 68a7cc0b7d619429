package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Scene is one screen of the session. Exactly one scene is current at a
// time; the session drives its lifecycle.
type Scene interface {
	Show()
	Update(in core.InputFrame, dt float64) sceneResult
	Render(dst *core.Screen)
	Resize(width, height int)
	Pause()
	Resume()
	Hide()
	Dispose()
	State() core.GameState
}

// sceneResult carries a requested transition and any finished run.
type sceneResult struct {
	next     Scene
	runEnded *core.RunSummary
}

// menuScene waits for the primary action before starting a run.
type menuScene struct {
	session *Session
}

func newMenuScene(s *Session) *menuScene {
	return &menuScene{session: s}
}

func (m *menuScene) Show() {}

func (m *menuScene) Update(in core.InputFrame, _ float64) sceneResult {
	if in.Has(core.ActionJump) {
		return sceneResult{next: newPlayScene(m.session)}
	}
	return sceneResult{}
}

func (m *menuScene) Render(dst *core.Screen) {
	renderMenu(dst, m.session.cfg)
}

func (m *menuScene) Resize(int, int) {}
func (m *menuScene) Pause()          {}
func (m *menuScene) Resume()         {}
func (m *menuScene) Hide()           {}
func (m *menuScene) Dispose()        {}

func (m *menuScene) State() core.GameState {
	return core.GameState{Mode: core.ModeIdle, Restarts: m.session.restarts}
}

// playScene owns the current World. A retry after a crash tears the world
// down and builds a new one in place.
type playScene struct {
	session *Session
	world   *World
	seed    int64
}

func newPlayScene(s *Session) *playScene {
	p := &playScene{session: s}
	p.newWorld()
	return p
}

func (p *playScene) newWorld() {
	p.seed = p.session.nextSeed()
	p.world = NewWorld(p.session.cfg, p.session.rngFor(p.seed), p.session.clock, p.session.audio)
}

func (p *playScene) Show() {}

func (p *playScene) Update(in core.InputFrame, dt float64) sceneResult {
	out := p.world.Step(in.Has(core.ActionJump), dt)

	if out.Crashed {
		summary := p.world.Summary(p.seed)
		p.session.logger.Debug("run ended", "passed", summary.Passed, "cause", summary.Cause, "duration", summary.Duration)
		return sceneResult{runEnded: &summary}
	}

	if out.RestartRequested {
		p.world.Dispose()
		p.newWorld()
		p.session.restarts++
		p.session.logger.Debug("run restarted", "restarts", p.session.restarts, "seed", p.seed)
	}

	return sceneResult{}
}

func (p *playScene) Render(dst *core.Screen) {
	renderWorld(dst, p.world, p.session.cfg)
}

func (p *playScene) Resize(int, int) {}
func (p *playScene) Pause()          {}
func (p *playScene) Resume()         {}
func (p *playScene) Hide()           {}

func (p *playScene) Dispose() {
	if p.world != nil {
		p.world.Dispose()
	}
}

func (p *playScene) State() core.GameState {
	return core.GameState{
		Mode:     core.ModeActive,
		Passed:   p.world.Passed(),
		Crashed:  p.world.Crashed(),
		Cause:    string(p.world.Cause()),
		Restarts: p.session.restarts,
	}
}
