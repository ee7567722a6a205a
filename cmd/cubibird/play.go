package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubibird/internal/assets"
	"github.com/vovakirdan/cubibird/internal/core"
	"github.com/vovakirdan/cubibird/internal/platform/tui"
	"github.com/vovakirdan/cubibird/internal/storage"
)

var (
	flagName string
	flagHold int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Flap (hold briefly for a longer climb)
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot to ~/.cubibird/screenshots
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  cubibird play
  cubibird play --name Ann
  cubibird play --seed 42
  cubibird play --config ./my-cubibird.yaml --theme ./night.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", tui.DefaultPlayerName, "Default player name offered by the prompt")
	playCmd.Flags().IntVar(&flagHold, "hold", int(tui.DefaultHoldWindow/time.Millisecond), "Milliseconds a key counts as held after a press")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, fileErr := openLogFile(); fileErr == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "cubibird")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open runs database: %v\n", err)
		logger.Warn("playing without storage", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", "seed", flagSeed, "width", width, "height", height)
	err = tui.Run(ctx, tui.Options{
		Game: cfg,
		Screen: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Theme:      assets.LoadTheme(flagTheme, logger),
		Store:      store,
		Logger:     logger,
		PlayerName: flagName,
		HoldWindow: time.Duration(flagHold) * time.Millisecond,
	})
	logger.Info("session ended")

	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
