// Package tui provides the Bubble Tea front end for Cubibird: the local
// terminal program and the per-session model served over SSH.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/game"
	"github.com/vovakirdan/cubibird/internal/storage"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report no key release, so one is synthesized when it expires.
const DefaultHoldWindow = 150 * time.Millisecond

// frameMsg carries a snapshot published by the runner.
type frameMsg game.Snapshot

// runnerDoneMsg reports that the runner goroutine returned.
type runnerDoneMsg struct{ err error }

// releaseMsg fires when the hold window of press number gen expires.
type releaseMsg struct{ gen int }

// runSavedMsg reports the outcome of persisting a finished run.
type runSavedMsg struct {
	name  string
	score int
	err   error
}

// screenshotMsg reports where a screenshot was written.
type screenshotMsg struct {
	path string
	err  error
}

// runRunner drives the runner until ctx is cancelled.
func runRunner(ctx context.Context, r *game.Runner) tea.Cmd {
	return func() tea.Msg {
		return runnerDoneMsg{err: r.Run(ctx)}
	}
}

// waitForFrame blocks until the runner publishes the next snapshot.
func waitForFrame(frames <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-frames
		if !ok {
			return nil
		}
		return frameMsg(snap)
	}
}

// releaseAfter schedules the synthetic release for press number gen.
func releaseAfter(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return releaseMsg{gen: gen}
	})
}

// saveRun persists a finished run. Only runs that scored are kept.
func saveRun(store *storage.Store, name string, score int) tea.Cmd {
	if store == nil || score <= 0 {
		return nil
	}
	return func() tea.Msg {
		_, err := store.SaveRun(name, score)
		return runSavedMsg{name: name, score: score, err: err}
	}
}

// saveScreenshot writes a plain-text frame to ~/.cubibird/screenshots.
func saveScreenshot(frame string) tea.Cmd {
	return func() tea.Msg {
		dir := config.UserPath("screenshots")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return screenshotMsg{err: fmt.Errorf("tui: cannot create screenshot directory: %w", err)}
		}

		name := fmt.Sprintf("cubibird_%s.txt", time.Now().Format("20060102_150405"))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(frame), 0o600); err != nil {
			return screenshotMsg{err: fmt.Errorf("tui: cannot write screenshot: %w", err)}
		}
		return screenshotMsg{path: path}
	}
}
