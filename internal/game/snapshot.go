package game

// NightScore is the score from which the background switches to night.
const NightScore = 20

// World is the geometry a renderer needs to project a snapshot.
type World struct {
	Width        int
	Height       int
	GroundMargin int
	BodySize     int
}

// Snapshot is an immutable copy of everything a renderer or leaderboard
// presenter may read. It shares no memory with the live game.
type Snapshot struct {
	World     World
	Phase     Phase
	Body      Body
	Obstacles []Obstacle
	Score     int
	Highest   int
	Ticks     int
	Countdown int
	Counting  bool
	Name      string

	ShowInstructions bool
	GameOver         bool
	ShowLeaderboard  bool
	Leaderboard      []RankedEntry
	Night            bool
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		World: World{
			Width:        g.cfg.Playfield.Width,
			Height:       g.cfg.Playfield.Height,
			GroundMargin: g.cfg.Playfield.GroundMargin,
			BodySize:     g.cfg.Player.Size,
		},
		Phase:            g.phase,
		Body:             g.body,
		Obstacles:        obstacles,
		Score:            g.score,
		Highest:          g.highest,
		Ticks:            g.ticks,
		Countdown:        g.countdown,
		Counting:         g.counting,
		Name:             g.name,
		ShowInstructions: g.phase == PhaseAwaitingStart,
		GameOver:         g.phase == PhaseOver,
		ShowLeaderboard:  g.showBoard,
		Leaderboard:      g.scores.Ranked(),
		Night:            g.score >= NightScore,
	}
}
