package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubibird/internal/assets"
	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/core"
	"github.com/vovakirdan/cubibird/internal/game"
	"github.com/vovakirdan/cubibird/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
)

// slowConfig starts runs immediately and ticks rarely, so velocities only
// change through events during a test.
func slowConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Countdown.Seconds = 0
	cfg.Physics.Gravity = 0
	cfg.Physics.TickMS = 10000
	return cfg
}

func newTestModel(t *testing.T, cfg config.Config, store *storage.Store) Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return NewModel(ctx, Options{
		Game:   cfg,
		Screen: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1},
		Theme:  assets.DefaultTheme(),
		Store:  store,
	})
}

// startRunner runs the model's runner the way the Bubble Tea command would.
func startRunner(t *testing.T, m Model) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.runner.Run(m.ctx)
	}()
	t.Cleanup(func() {
		m.cancel()
		<-done
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestModelStartsWithPrompt(t *testing.T) {
	m := newTestModel(t, slowConfig(), nil)

	if !m.Prompting() {
		t.Fatal("model should open the name prompt first")
	}

	m, cmd := update(t, m, keyEnter)
	if m.Prompting() {
		t.Error("enter should close the prompt")
	}
	if cmd == nil {
		t.Error("closing the first prompt should start the runner")
	}
	if m.name != DefaultPlayerName {
		t.Errorf("name = %q, expected %q", m.name, DefaultPlayerName)
	}

	startRunner(t, m)
	waitFor(t, "the run to start", func() bool {
		s := m.runner.Latest()
		return s.Phase == game.PhaseRunning && s.Name == DefaultPlayerName
	})
}

func TestModelEscapeUsesEmptyName(t *testing.T) {
	m := newTestModel(t, slowConfig(), nil)
	m, _ = update(t, m, keyEsc)
	startRunner(t, m)

	waitFor(t, "the restart", func() bool {
		s := m.runner.Latest()
		return s.Phase == game.PhaseRunning && s.Name == ""
	})
}

func TestModelSynthesizesRelease(t *testing.T) {
	m := newTestModel(t, slowConfig(), nil)
	m, _ = update(t, m, keyEnter)
	startRunner(t, m)
	waitFor(t, "running", func() bool { return m.runner.Latest().Phase == game.PhaseRunning })

	m, cmd := update(t, m, keySpace)
	if cmd == nil {
		t.Fatal("a press should schedule a release")
	}
	waitFor(t, "the impulse", func() bool { return m.runner.Latest().Body.VY == -10 })

	// A second press extends the hold; the first timer is stale
	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, releaseMsg{gen: 1})
	time.Sleep(20 * time.Millisecond)
	if vy := m.runner.Latest().Body.VY; vy != -10 {
		t.Fatalf("stale release changed VY to %d", vy)
	}

	m, _ = update(t, m, releaseMsg{gen: 2})
	waitFor(t, "the release", func() bool { return m.runner.Latest().Body.VY == 0 })
}

func TestModelGameOverOpensPrompt(t *testing.T) {
	m := newTestModel(t, slowConfig(), nil)
	m, _ = update(t, m, keyEnter)

	over := m.runner.Latest()
	over.Phase = game.PhaseOver
	over.GameOver = true
	over.ShowLeaderboard = true
	m, _ = update(t, m, frameMsg(over))

	m, _ = update(t, m, keyR)
	if !m.Prompting() {
		t.Error("restart after game over should ask for a name")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, slowConfig(), store)
	m, _ = update(t, m, keyEnter)

	over := m.runner.Latest()
	over.Phase = game.PhaseOver
	over.GameOver = true
	over.ShowLeaderboard = true
	over.Score = 4
	over.Leaderboard = []game.RankedEntry{{Rank: 1, Name: "Player", Score: 4}}

	m, _ = update(t, m, frameMsg(over))
	if !m.saved {
		t.Fatal("first game-over frame should save the run")
	}
	if m.board.rows != 1 {
		t.Errorf("leaderboard rows = %d, expected 1", m.board.rows)
	}

	// A repeated frame of the same run does not save again
	m, cmd := update(t, m, frameMsg(over))
	if !m.saved {
		t.Error("saved flag should stay set")
	}
	if _, isBatch := cmd().(tea.BatchMsg); isBatch {
		t.Error("repeated game-over frame should only wait for the next frame")
	}

	// The save command writes exactly one run
	msg := saveRun(store, over.Name, over.Score)()
	if saved, ok := msg.(runSavedMsg); !ok || saved.err != nil {
		t.Fatalf("saveRun() = %#v", msg)
	}
	runs, _ := store.TopRuns(10)
	if len(runs) != 1 || runs[0].Score != 4 {
		t.Errorf("stored runs = %+v", runs)
	}

	// The next run resets the flag
	next := over
	next.Phase = game.PhaseAwaitingStart
	next.GameOver = false
	m, _ = update(t, m, frameMsg(next))
	if m.saved {
		t.Error("a new run should clear the saved flag")
	}
}

func TestSaveRunSkipsEmptyRuns(t *testing.T) {
	if saveRun(nil, "Ann", 10) != nil {
		t.Error("no store means nothing to save")
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if saveRun(store, "Ann", 0) != nil {
		t.Error("runs that did not score are not saved")
	}
}

func TestModelSeedsFromStorage(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("Ann", 8)
	store.SaveRun("Bob", 15)

	m := newTestModel(t, slowConfig(), store)
	s := m.Snapshot()
	if s.Highest != 15 {
		t.Errorf("highest = %d, expected 15", s.Highest)
	}
	if len(s.Leaderboard) != 2 || s.Leaderboard[0].Name != "Bob" {
		t.Errorf("leaderboard = %+v", s.Leaderboard)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, slowConfig(), nil)
	if m.View() == "" {
		t.Error("prompt view should not be empty")
	}

	m, _ = update(t, m, keyEnter)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("game view should not be empty")
	}
}
