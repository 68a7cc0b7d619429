package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator is a finite tone whose pitch glides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	total         int
	pos           int
	wave          Wave
	rate          beep.SampleRate
	noise         *rand.Rand
}

func newOscillator(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		total:   rate.N(d),
		wave:    wave,
		rate:    rate,
		noise:   rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(o.pos) / float64(o.total)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. effects.Volume works in log2 steps,
// so zero needs the Silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// flapSound is a short upward chirp.
func flapSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	osc := newOscillator(420, 880, d, WaveSquare, rate)
	return newVolume(newEnvelope(osc, d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.5)
}

// splatSound is a noise burst over a falling thump.
func splatSound(rate beep.SampleRate) beep.Streamer {
	d := 250 * time.Millisecond
	noise := newEnvelope(newOscillator(1, 1, d, WaveNoise, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate)
	thump := newEnvelope(newOscillator(140, 45, d, WaveSine, rate), d, 2*time.Millisecond, 150*time.Millisecond, rate)
	return beep.Take(rate.N(d), beep.Mix(newVolume(noise, 0.4), newVolume(thump, 0.6)))
}

// successSound is a two-note chime.
func successSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			// Only fails above the Nyquist frequency
			return beep.Silence(rate.N(d))
		}
		return newEnvelope(beep.Take(rate.N(d), tone), d, 3*time.Millisecond, d/2, rate)
	}
	return newVolume(beep.Seq(note(987.77, 80*time.Millisecond), note(1318.51, 160*time.Millisecond)), 0.5)
}

// cueSound builds a fresh streamer for cue.
func cueSound(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueFlap:
		return flapSound(rate)
	case core.CueSplat:
		return splatSound(rate)
	case core.CueSuccess:
		return successSound(rate)
	default:
		return nil
	}
}

// musicLoop is an endless arpeggio over a soft bass note.
type musicLoop struct {
	rate  beep.SampleRate
	pos   int
	step  int
	notes []float64
}

func newMusicLoop(rate beep.SampleRate) *musicLoop {
	return &musicLoop{
		rate:  rate,
		step:  rate.N(200 * time.Millisecond),
		notes: []float64{523.25, 659.25, 783.99, 659.25, 587.33, 698.46, 880.00, 698.46},
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		noteIdx := (m.pos / m.step) % len(m.notes)
		inNote := m.pos % m.step
		t := float64(m.pos) / float64(m.rate)

		decay := math.Exp(-float64(inNote) / float64(m.rate) * 12)
		lead := 0.5 * decay * math.Sin(2*math.Pi*m.notes[noteIdx]*t)
		bass := 0.25 * math.Sin(2*math.Pi*m.notes[0]/4*t)

		v := lead + bass
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
