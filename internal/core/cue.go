package core

// Cue identifies a sound effect the simulation wants played.
// Games never touch audio handles directly; the platform decides how a cue sounds.
type Cue int

const (
	CueFlap    Cue = iota // Player impulse
	CueSplat              // Collision
	CueSuccess            // Obstacle passed
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueSplat:
		return "splat"
	case CueSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// CuePlayer plays a cue at the given volume in [0, 1].
type CuePlayer interface {
	Play(cue Cue, volume float64)
}

// NopCuePlayer discards every cue.
type NopCuePlayer struct{}

// Play implements CuePlayer.
func (NopCuePlayer) Play(Cue, float64) {}
