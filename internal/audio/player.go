// Package audio plays the game's sound cues and background music through
// the system speaker. Every sound is synthesized, so there are no assets to load.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into a single speaker stream. It is safe for concurrent
// use. Until Init succeeds every call is a no-op, so a machine without an
// audio device still runs the game silently.
type Player struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	mixer    *beep.Mixer
	music    *beep.Ctrl
	cfg      config.FlappyAudio
	logger   *log.Logger
	ready    bool // Cues are mixed
	attached bool // The mixer is playing on the speaker
	muted    bool
}

// NewPlayer creates a player. Call Init to open the audio device.
func NewPlayer(cfg config.FlappyAudio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		rate:   sampleRate,
		mixer:  &beep.Mixer{},
		cfg:    cfg,
		logger: logger,
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.ready = true
	p.attached = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Play implements core.CuePlayer.
func (p *Player) Play(cue core.Cue, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted || volume <= 0 {
		return
	}

	s := cueSound(cue, p.rate)
	if s == nil {
		p.logger.Warn("unknown cue", "cue", cue)
		return
	}
	p.add(newVolume(s, volume))
}

// PlayMusic starts the background loop. Calling it again is a no-op.
func (p *Player) PlayMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.music != nil || p.cfg.MusicVolume <= 0 {
		return
	}

	p.music = &beep.Ctrl{Streamer: newVolume(newMusicLoop(p.rate), p.cfg.MusicVolume), Paused: p.muted}
	p.add(p.music)
}

// SetMuted silences cues and pauses the music.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if p.music != nil {
		p.withSpeaker(func() { p.music.Paused = muted })
	}
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	p.withSpeaker(p.mixer.Clear)
	if p.attached {
		speaker.Close()
	}
	p.music = nil
	p.ready = false
	p.attached = false
}

func (p *Player) add(s beep.Streamer) {
	p.withSpeaker(func() { p.mixer.Add(s) })
}

// withSpeaker runs fn while the speaker goroutine is blocked.
func (p *Player) withSpeaker(fn func()) {
	if p.attached {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
