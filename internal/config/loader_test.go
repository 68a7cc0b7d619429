package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseFlappy(defaultFlappyYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig() disagree:\n yaml: %+v\n code: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestLoadFlappyFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Tubes.Count != 5 || cfg.Session.RestartDelay != time.Second {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadFlappyLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("tubes:\n  count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Tubes.Count != 3 {
		t.Errorf("Tubes.Count = %d, expected 3 from ./configs", cfg.Tubes.Count)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "bird:\n  bounce_velocity: 300\nsession:\n  restart_delay: 1500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy(%q) failed: %v", path, err)
	}

	if cfg.Bird.BounceVelocity != 300 {
		t.Errorf("BounceVelocity = %v, expected 300", cfg.Bird.BounceVelocity)
	}
	if cfg.Session.RestartDelay != 1500*time.Millisecond {
		t.Errorf("RestartDelay = %v, expected 1.5s", cfg.Session.RestartDelay)
	}
	// Fields absent from the file keep their defaults
	if cfg.Tubes.Gap != 90 {
		t.Errorf("Tubes.Gap = %v, expected default 90", cfg.Tubes.Gap)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "tubes: [unclosed", "failed to parse"},
		{"invalid values", "tubes:\n  count: 0\n  gap: -1\n", "tubes.count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFlappy(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Tubes.Count = 0
	cfg.Session.MinDelta = 0
	cfg.Audio.FlapVolume = 1.5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"tubes.count", "session.min_delta", "audio.flap_volume"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("validation error does not mention %s: %v", field, err)
		}
	}

	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	data, err := DefaultFlappyConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "restart_delay: 1s") {
		t.Errorf("durations should marshal as strings, got:\n%s", data)
	}

	cfg, err := parseFlappy(data)
	if err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config changed on reload")
	}
}

func TestViewportAndStride(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if cfg.World.ViewportWidth() != 240 || cfg.World.ViewportHeight() != 400 {
		t.Errorf("viewport = %vx%v, expected 240x400", cfg.World.ViewportWidth(), cfg.World.ViewportHeight())
	}
	if cfg.Tubes.Stride() != 177 {
		t.Errorf("Stride() = %v, expected 177", cfg.Tubes.Stride())
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if got := GetDefaultYAML("flappy"); len(got) == 0 {
		t.Error("expected embedded flappy defaults")
	}
	if got := GetDefaultYAML("snake"); got != nil {
		t.Errorf("unknown game should have no defaults, got %d bytes", len(got))
	}
}
