// Package game implements the Cubibird game loop: a body falls under
// gravity, flaps on a single control and must avoid obstacle pairs that
// scroll in from the right. Scoring is one point per obstacle that leaves
// the playfield.
//
// Game is single-threaded and owned by exactly one writer (see Runner).
// Renderers only ever see Snapshot values.
package game

import (
	"math/rand"

	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/core"
)

// Body is the player-controlled object. Coordinates are world units.
type Body struct {
	X, Y   int // Top-left corner of the sprite
	VX, VY int // Velocity per tick
}

// Game holds the complete simulation state.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	body      Body
	obstacles []Obstacle
	score     int
	highest   int
	ticks     int

	phase     Phase
	countdown int
	counting  bool
	name      string

	scores    *HighScores
	showBoard bool
}

// New creates a game in the AwaitingStart phase.
// The seed drives obstacle placement for the whole lifetime of the game,
// so equal seeds and equal event sequences produce equal runs.
func New(cfg config.Config, seed int64, name string) *Game {
	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: make([]Obstacle, 0, 16),
		scores:    NewHighScores(cfg.HighScores.Capacity),
	}
	g.Restart(name)
	return g
}

// Restart resets the body, score, tick counter and obstacles and returns to
// AwaitingStart with a fresh countdown. Highest score and the leaderboard
// survive restarts.
func (g *Game) Restart(name string) {
	g.name = name
	g.body = Body{
		X: g.cfg.Player.StartX,
		Y: g.cfg.Playfield.Height / 2,
	}
	g.obstacles = g.obstacles[:0]
	g.score = 0
	g.ticks = 0
	g.phase = PhaseAwaitingStart
	g.countdown = g.cfg.Countdown.Seconds
	g.counting = false
	g.showBoard = false

	if g.cfg.Countdown.AutoStart {
		g.beginCountdown()
	}
}

// beginCountdown starts counting. A zero-length countdown starts the run
// immediately.
func (g *Game) beginCountdown() {
	if g.counting {
		return
	}
	g.counting = true
	if g.countdown <= 0 {
		g.start()
	}
}

func (g *Game) start() {
	g.counting = false
	g.countdown = 0
	g.phase = PhaseRunning
}

// Handle applies one event to the state machine.
func (g *Game) Handle(ev Event) {
	switch ev.Kind {
	case EventPress:
		switch g.phase {
		case PhaseAwaitingStart:
			g.beginCountdown()
		case PhaseRunning:
			g.body.VY = g.cfg.Physics.Impulse
		case PhaseOver:
			g.Restart(g.name)
		}

	case EventRelease:
		// Releasing the control always kills vertical speed, which together
		// with gravity gives the flap feel.
		g.body.VY = 0

	case EventSecond:
		if g.phase != PhaseAwaitingStart || !g.counting {
			return
		}
		g.countdown--
		if g.countdown <= 0 {
			g.start()
		}

	case EventRestart:
		g.Restart(ev.Name)
	}
}

// Tick advances the simulation by one step. It does nothing unless the
// game is running.
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}

	ended := false

	// Vertical integration with clamping to the ground bands
	g.body.Y += g.body.VY
	top, bottom := g.verticalBounds()
	switch {
	case g.body.Y > bottom:
		g.body.Y = bottom
		g.body.VY = 0
		ended = true
	case g.body.Y < top:
		g.body.Y = top
		g.body.VY = 0
		ended = true
	default:
		g.body.VY += g.cfg.Physics.Gravity
	}

	// Horizontal integration
	g.body.X = core.Clamp(g.body.X+g.body.VX, 0, g.cfg.Playfield.Width-g.cfg.Player.Size)

	// Scroll and recycle obstacles
	var removed int
	g.obstacles, removed = ScrollObstacles(g.obstacles, g.cfg.Obstacles.Speed)
	g.score += removed

	if g.ticks%g.cfg.Obstacles.SpawnEvery == 0 {
		g.spawnPair()
	}

	if !ended && FirstHit(g.Hitbox(), g.obstacles) >= 0 {
		ended = true
	}

	g.ticks++

	if ended {
		g.endRun()
	}
}

// verticalBounds returns the allowed range of the body's top edge.
func (g *Game) verticalBounds() (top, bottom int) {
	margin := g.cfg.Playfield.GroundMargin
	return margin, g.cfg.Playfield.Height - g.cfg.Player.Size - margin
}

func (g *Game) spawnPair() {
	split := 0
	if n := g.cfg.SplitRange(); n > 0 {
		split = g.rng.Intn(n)
	}
	top, bottom := SpawnPair(g.cfg.Playfield.Width, split, g.cfg)
	g.obstacles = append(g.obstacles, top, bottom)
}

// endRun moves to Over and records the run exactly once.
func (g *Game) endRun() {
	if g.phase == PhaseOver {
		return
	}
	g.phase = PhaseOver
	g.counting = false
	if g.score > g.highest {
		g.highest = g.score
	}
	g.scores.Insert(HighScoreEntry{Name: g.name, Score: g.score})
	g.showBoard = true
}

// Hitbox returns the body's collision box: the sprite bounds inset by the
// configured margin.
func (g *Game) Hitbox() core.Rect {
	p := g.cfg.Player
	return core.NewRect(g.body.X+p.HitboxInset, g.body.Y+p.HitboxInset, p.HitboxSize, p.HitboxSize)
}

// SeedHighScores preloads leaderboard entries, e.g. from storage, and
// raises the highest score accordingly.
func (g *Game) SeedHighScores(entries []HighScoreEntry) {
	for _, e := range entries {
		g.scores.Insert(e)
		if e.Score > g.highest {
			g.highest = e.Score
		}
	}
}

// SetHighest raises the highest score shown in the HUD. Lower values are
// ignored.
func (g *Game) SetHighest(score int) {
	if score > g.highest {
		g.highest = score
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Counting reports whether the countdown is running.
func (g *Game) Counting() bool { return g.counting }

// Score returns the score of the current run.
func (g *Game) Score() int { return g.score }

// Ticks returns the tick counter of the current run.
func (g *Game) Ticks() int { return g.ticks }

// Name returns the current player name.
func (g *Game) Name() string { return g.name }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }
