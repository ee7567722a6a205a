package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubibird/internal/assets"
	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/core"
	"github.com/vovakirdan/cubibird/internal/game"
	"github.com/vovakirdan/cubibird/internal/storage"
)

// Options configures a play session.
type Options struct {
	Game       config.Config
	Screen     core.RuntimeConfig
	Theme      assets.Theme
	Store      *storage.Store // Optional
	Logger     *log.Logger    // Optional
	PlayerName string         // Default prompt value
	HoldWindow time.Duration
}

// Model is the Bubble Tea model for one player. It owns a game runner and
// only ever reads the snapshots the runner publishes.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	runner *game.Runner

	snap   game.Snapshot
	screen *core.Screen
	theme  assets.Theme
	store  *storage.Store
	logger *log.Logger

	keys  KeyMap
	help  help.Model
	board Leaderboard

	prompt    NamePrompt
	prompting bool
	started   bool // Runner goroutine launched
	name      string

	hold       time.Duration
	releaseGen int
	saved      bool // Current run already persisted

	width, height int
	status        string
	quitting      bool
}

// NewModel creates a model whose runner lives until ctx is cancelled or
// the player quits.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Screen.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	name := opts.PlayerName
	if name == "" {
		name = DefaultPlayerName
	}
	hold := opts.HoldWindow
	if hold <= 0 {
		hold = DefaultHoldWindow
	}

	g := game.New(opts.Game, seed, name)
	if entries, err := storedEntries(opts.Store, opts.Game.HighScores.Capacity); err != nil {
		logger.Warn("could not load stored runs", "error", err)
	} else {
		g.SeedHighScores(entries)
	}
	if opts.Store != nil {
		if best, err := opts.Store.HighScore(); err == nil {
			g.SetHighest(best)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	runner := game.NewRunner(g, game.WithLogger(logger))

	h := help.New()
	h.ShowAll = false

	return Model{
		ctx:       ctx,
		cancel:    cancel,
		runner:    runner,
		snap:      runner.Latest(),
		screen:    core.NewScreen(opts.Screen.ScreenW, core.Max(0, opts.Screen.ScreenH-1)),
		theme:     opts.Theme,
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      h,
		board:     NewLeaderboard(),
		prompt:    NewNamePrompt(name),
		prompting: true,
		name:      name,
		hold:      hold,
		width:     opts.Screen.ScreenW,
		height:    opts.Screen.ScreenH,
	}
}

// Init starts the name prompt. The runner starts once a name is chosen.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)

	case frameMsg:
		return m.handleFrame(game.Snapshot(msg))

	case releaseMsg:
		if msg.gen == m.releaseGen {
			m.runner.Send(game.Release())
		}
		return m, nil

	case runSavedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save run", "name", msg.name, "score", msg.score, "error", msg.err)
		} else {
			m.logger.Info("run saved", "name", msg.name, "score", msg.score)
		}
		return m, nil

	case screenshotMsg:
		if msg.err != nil {
			m.logger.Warn("screenshot failed", "error", msg.err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", msg.path)
			m.status = "saved " + msg.path
		}
		return m, nil

	case runnerDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("runner stopped", "error", msg.err)
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.prompting {
		return m.updatePrompt(msg)
	}
	return m, nil
}

// updatePrompt routes input to the name prompt and starts the next run
// when it finishes.
func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return m.quit()
	}

	prompt, name, done, cmd := m.prompt.Update(msg)
	m.prompt = prompt
	if !done {
		return m, cmd
	}

	m.prompting = false
	m.name = name
	m.status = ""
	m.runner.Send(game.Restart(name))
	m.logger.Info("run started", "name", name)

	if m.started {
		return m, nil
	}
	m.started = true
	return m, tea.Batch(runRunner(m.ctx, m.runner), waitForFrame(m.runner.Frames()))
}

// handleKey processes keyboard input while playing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		return m.quit()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionScreenshot:
		return m, saveScreenshot(m.frame().String())

	case core.ActionRestart:
		if m.snap.GameOver {
			return m.askName()
		}
		return m, nil

	case core.ActionFlap:
		if m.snap.GameOver {
			return m.askName()
		}
		m.runner.Send(game.Press())
		m.releaseGen++
		return m, releaseAfter(m.hold, m.releaseGen)
	}

	return m, nil
}

// askName opens the prompt for the next run.
func (m Model) askName() (tea.Model, tea.Cmd) {
	m.prompt = NewNamePrompt(m.name)
	m.prompting = true
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// handleFrame stores a new snapshot and persists the run the first time
// it is seen as over. Stale frames of a finished run never save twice
// because the flag only resets once a frame of the next run arrives.
func (m Model) handleFrame(snap game.Snapshot) (tea.Model, tea.Cmd) {
	m.snap = snap
	next := waitForFrame(m.runner.Frames())

	if !snap.GameOver {
		m.saved = false
		return m, next
	}
	if m.saved {
		return m, next
	}

	m.saved = true
	m.board.SetEntries(snap.Leaderboard)
	m.logger.Info("run finished", "name", snap.Name, "score", snap.Score)
	return m, tea.Batch(next, saveRun(m.store, snap.Name, snap.Score))
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(0, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// frame renders the latest snapshot into the screen buffer.
func (m Model) frame() *core.Screen {
	game.Render(m.screen, m.snap, m.theme)
	return m.screen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.prompting {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.prompt.View())
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}

	if m.snap.ShowLeaderboard {
		panel := m.board.View(m.snap.Score, "space/r: play again  q: quit")
		body := lipgloss.Place(m.width, core.Max(0, m.height-1), lipgloss.Center, lipgloss.Center, panel)
		return body + "\n" + helpStyle.Render(footer)
	}

	return RenderScreen(m.frame()) + "\n" + helpStyle.Render(footer)
}

// Snapshot returns the last snapshot the model received.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// Prompting reports whether the name prompt is open.
func (m Model) Prompting() bool {
	return m.prompting
}

// Run starts the local Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
