package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game on the title screen.

Controls:
  Space/Up/Click - Flap (also starts and retries)
  P/Esc          - Pause
  M              - Mute
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --mute --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	deps := registry.Deps{ConfigPath: flagConfig, Logger: logger}
	var muter tui.Muter
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer player.Close()
			player.SetMuted(flagMute)
			player.PlayMusic()
			deps.Audio = player
			muter = player
		}
	}

	game, err := registry.Create(gameID, deps)
	if err != nil {
		return err
	}

	// Open the run journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Game:   game,
		Store:  store,
		Audio:  muter,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	})
}
