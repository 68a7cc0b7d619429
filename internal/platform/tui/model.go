package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Muter is the part of the audio player the model controls.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Options configures a Model.
type Options struct {
	Game    registry.Game
	Store   *storage.Store // Optional run journal
	Audio   Muter          // Optional; nil hides the mute toggle
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Name    string // Player name recorded in logs
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	audio    Muter
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Name != "" {
		logger = logger.With("player", opts.Name)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   opts.Game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		store:  opts.Store,
		audio:  opts.Audio,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MouseAction(msg); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
		}
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("game closed", "restarts", m.state.Restarts)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(a)
	}

	return m, nil
}

// handleResize resizes the playfield. The run keeps going; the world is
// drawn through a fixed viewport, so only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 0))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.input, dt)
	m.state = result.State
	if result.RunEnded != nil {
		m.saveRun(*result.RunEnded)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Failures are logged; the game continues.
func (m Model) saveRun(run core.RunSummary) {
	m.logger.Info("run ended", "passed", run.Passed, "cause", run.Cause, "duration", run.Duration.Round(time.Millisecond))
	if m.store == nil {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Passed:   run.Passed,
		Cause:    run.Cause,
		Duration: run.Duration,
		Seed:     run.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	muted := ""
	if m.audio != nil && m.audio.Muted() {
		muted = "muted"
	}
	return RenderScreen(m.screen) + "\n" + renderFooter(m.help.View(m.keys), muted)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
