package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// newTestPlayer returns a player that mixes cues without opening a device.
func newTestPlayer() *Player {
	p := NewPlayer(config.DefaultFlappyConfig().Audio, nil)
	p.ready = true
	return p
}

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if math.IsNaN(v) || math.Abs(v) > 1 {
					t.Fatalf("sample %d out of range: %v", total+i, v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("stream still running after %d samples", total)
		}
	}
}

func TestCueSoundsAreFinite(t *testing.T) {
	limit := sampleRate.N(2 * time.Second)

	for _, cue := range []core.Cue{core.CueFlap, core.CueSplat, core.CueSuccess} {
		t.Run(cue.String(), func(t *testing.T) {
			s := cueSound(cue, sampleRate)
			if s == nil {
				t.Fatal("no sound for cue")
			}
			if n := drain(t, s, limit); n == 0 {
				t.Error("cue produced no samples")
			}
		})
	}

	if cueSound(core.Cue(99), sampleRate) != nil {
		t.Error("unknown cue should have no sound")
	}
}

func TestSuccessSoundLength(t *testing.T) {
	n := drain(t, successSound(sampleRate), sampleRate.N(time.Second))
	want := sampleRate.N(80*time.Millisecond) + sampleRate.N(160*time.Millisecond)
	if n != want {
		t.Errorf("chime is %d samples, expected %d", n, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(0, 0, time.Second, WaveSquare, rate)
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("envelope streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full scale, got %v", buf[50][0])
	}
	if buf[99][0] >= 0.2 {
		t.Errorf("release should fade out, got %v", buf[99][0])
	}
	if _, ok := env.Stream(buf); ok {
		t.Error("envelope should end after its duration")
	}
}

func TestMusicLoopNeverEnds(t *testing.T) {
	m := newMusicLoop(sampleRate)
	buf := make([][2]float64, 4096)
	for i := 0; i < 50; i++ {
		n, ok := m.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("music stopped at buffer %d", i)
		}
	}
}

func TestPlayerNotReadyIsSilent(t *testing.T) {
	p := NewPlayer(config.DefaultFlappyConfig().Audio, nil)
	p.Play(core.CueFlap, 1)
	p.PlayMusic()
	p.Close()

	if p.mixer.Len() != 0 {
		t.Errorf("uninitialized player queued %d streamers", p.mixer.Len())
	}
}

func TestPlayerMixesCues(t *testing.T) {
	p := newTestPlayer()

	p.Play(core.CueFlap, 0.07)
	p.Play(core.CueSuccess, 1)
	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, expected 2", p.mixer.Len())
	}

	p.Play(core.CueSplat, 0)
	if p.mixer.Len() != 2 {
		t.Error("zero-volume cue should be dropped")
	}
}

func TestPlayerMute(t *testing.T) {
	p := newTestPlayer()
	p.PlayMusic()
	p.PlayMusic()
	if p.mixer.Len() != 1 {
		t.Fatalf("music added %d times, expected once", p.mixer.Len())
	}

	p.SetMuted(true)
	if !p.Muted() || !p.music.Paused {
		t.Error("mute should pause the music")
	}
	p.Play(core.CueFlap, 1)
	if p.mixer.Len() != 1 {
		t.Error("muted player should drop cues")
	}

	p.SetMuted(false)
	if p.music.Paused {
		t.Error("unmute should resume the music")
	}
}

func TestPlayerCloseClearsMixer(t *testing.T) {
	p := newTestPlayer()
	p.PlayMusic()
	p.Play(core.CueFlap, 1)

	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("Close left %d streamers", p.mixer.Len())
	}

	p.Play(core.CueFlap, 1)
	if p.mixer.Len() != 0 {
		t.Error("closed player should be silent")
	}
}
