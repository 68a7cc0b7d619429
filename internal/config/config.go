// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World   FlappyWorld   `yaml:"world"`
	Bird    FlappyBird    `yaml:"bird"`
	Tubes   FlappyTubes   `yaml:"tubes"`
	Session FlappySession `yaml:"session"`
	Audio   FlappyAudio   `yaml:"audio"`
}

// FlappyWorld defines world and ground dimensions.
// The camera shows half the world in each direction.
type FlappyWorld struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundYOffset float64 `yaml:"ground_y_offset"`
	GroundWidth   float64 `yaml:"ground_width"`
	GroundHeight  float64 `yaml:"ground_height"`
}

// FlappyBird defines the player's start position, size and physics.
type FlappyBird struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Gravity        float64 `yaml:"gravity"`         // Added to vertical velocity once per update
	Movement       float64 `yaml:"movement"`        // Horizontal speed, units per second
	BounceVelocity float64 `yaml:"bounce_velocity"` // Vertical velocity set by a flap
}

// FlappyTubes defines the obstacle ring.
type FlappyTubes struct {
	Count         int     `yaml:"count"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Spacing       float64 `yaml:"spacing"`
	Fluctuation   int     `yaml:"fluctuation"`
	Gap           float64 `yaml:"gap"`
	LowestOpening float64 `yaml:"lowest_opening"`
}

// FlappySession defines camera and restart behavior.
type FlappySession struct {
	CameraLead   float64       `yaml:"camera_lead"`
	RestartDelay time.Duration `yaml:"restart_delay"`
	MinDelta     float64       `yaml:"min_delta"` // Seconds
	MaxDelta     float64       `yaml:"max_delta"` // Seconds
}

// FlappyAudio defines cue volumes in [0, 1].
type FlappyAudio struct {
	Enabled       bool    `yaml:"enabled"`
	FlapVolume    float64 `yaml:"flap_volume"`
	SplatVolume   float64 `yaml:"splat_volume"`
	SuccessVolume float64 `yaml:"success_volume"`
	MusicVolume   float64 `yaml:"music_volume"`
}

// ViewportWidth returns the camera viewport width in world units.
func (w FlappyWorld) ViewportWidth() float64 {
	return w.Width / 2
}

// ViewportHeight returns the camera viewport height in world units.
func (w FlappyWorld) ViewportHeight() float64 {
	return w.Height / 2
}

// Stride returns the distance between neighbouring tubes.
func (t FlappyTubes) Stride() float64 {
	return t.Width + t.Spacing
}

// Validate reports every invalid field at once.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	volume := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.ground_width", c.World.GroundWidth)
	positive("world.ground_height", c.World.GroundHeight)
	positive("bird.width", c.Bird.Width)
	positive("bird.height", c.Bird.Height)
	positive("bird.movement", c.Bird.Movement)
	positive("tubes.width", c.Tubes.Width)
	positive("tubes.height", c.Tubes.Height)
	positive("tubes.gap", c.Tubes.Gap)
	positive("session.min_delta", c.Session.MinDelta)

	if c.Tubes.Count < 1 {
		errs = append(errs, fmt.Errorf("tubes.count must be at least 1, got %d", c.Tubes.Count))
	}
	if c.Tubes.Spacing < 0 {
		errs = append(errs, fmt.Errorf("tubes.spacing must not be negative, got %v", c.Tubes.Spacing))
	}
	if c.Tubes.Fluctuation < 1 {
		errs = append(errs, fmt.Errorf("tubes.fluctuation must be at least 1, got %d", c.Tubes.Fluctuation))
	}
	if c.Session.MaxDelta < c.Session.MinDelta {
		errs = append(errs, fmt.Errorf("session.max_delta (%v) must not be below session.min_delta (%v)",
			c.Session.MaxDelta, c.Session.MinDelta))
	}
	if c.Session.RestartDelay < 0 {
		errs = append(errs, fmt.Errorf("session.restart_delay must not be negative, got %v", c.Session.RestartDelay))
	}
	if c.Bird.StartY < 0 || c.Bird.StartY > c.World.Height {
		errs = append(errs, fmt.Errorf("bird.start_y must be within [0, world.height], got %v", c.Bird.StartY))
	}

	volume("audio.flap_volume", c.Audio.FlapVolume)
	volume("audio.splat_volume", c.Audio.SplatVolume)
	volume("audio.success_volume", c.Audio.SuccessVolume)
	volume("audio.music_volume", c.Audio.MusicVolume)

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c FlappyConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
