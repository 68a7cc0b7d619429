package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:         480,
			Height:        800,
			GroundYOffset: -45,
			GroundWidth:   336,
			GroundHeight:  112,
		},
		Bird: FlappyBird{
			StartX:         40,
			StartY:         300,
			Width:          34,
			Height:         24,
			Gravity:        -15,
			Movement:       180,
			BounceVelocity: 250,
		},
		Tubes: FlappyTubes{
			Count:         5,
			Width:         52,
			Height:        320,
			Spacing:       125,
			Fluctuation:   130,
			Gap:           90,
			LowestOpening: 120,
		},
		Session: FlappySession{
			CameraLead:   80,
			RestartDelay: time.Second,
			MinDelta:     0.0001,
			MaxDelta:     0.1,
		},
		Audio: FlappyAudio{
			Enabled:       true,
			FlapVolume:    0.07,
			SplatVolume:   0.1,
			SuccessVolume: 1.0,
			MusicVolume:   0.05,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
