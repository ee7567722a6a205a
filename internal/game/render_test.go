package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cubibird/internal/assets"
	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/core"
)

func renderToString(s Snapshot) (*core.Screen, string) {
	screen := core.NewScreen(80, 24)
	Render(screen, s, assets.DefaultTheme())
	return screen, screen.String()
}

func TestRenderAwaitingStart(t *testing.T) {
	g := New(config.DefaultConfig(), 1, "Tester")
	screen, out := renderToString(g.Snapshot())

	for _, want := range []string{"Score: 0", "Highest Score: 0", "Press SPACE to Start", "Avoid Obstacles!", "[ 3 ]"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame should contain %q:\n%s", want, out)
		}
	}

	th := assets.DefaultTheme()
	if screen.Get(0, 23) != th.Ground.Rune {
		t.Errorf("bottom ground band missing, got %q", screen.Get(0, 23))
	}
}

func TestRenderBody(t *testing.T) {
	g := New(config.DefaultConfig(), 1, "Tester")
	screen, _ := renderToString(g.Snapshot())
	th := assets.DefaultTheme()

	// Body at (100, 360) with size 70 maps to columns 6..9 and rows 12..13
	if c := screen.GetCell(6, 13); c.Rune != th.Body.Rune || c.Color != th.Body.Color {
		t.Errorf("body cell = %+v", c)
	}
	if screen.Get(9, 12) != th.BodyEye.Rune {
		t.Errorf("eye cell = %q", screen.Get(9, 12))
	}
}

func TestRenderObstacles(t *testing.T) {
	cfg := config.DefaultConfig()
	top, bottom := SpawnPair(640, 100, cfg)
	s := New(cfg, 1, "Tester").Snapshot()
	s.Obstacles = []Obstacle{top, bottom}

	screen, _ := renderToString(s)
	th := assets.DefaultTheme()

	// Top obstacle spans rows 0..4 at column 40; its cap faces the gap
	if screen.Get(40, 4) != th.ObstacleCap.Rune {
		t.Errorf("top cap = %q", screen.Get(40, 4))
	}
	if screen.Get(40, 3) != th.Obstacle.Rune {
		t.Errorf("top body = %q", screen.Get(40, 3))
	}
	// Bottom obstacle starts at y=440, row 14
	if screen.Get(40, 14) != th.ObstacleCap.Rune {
		t.Errorf("bottom cap = %q", screen.Get(40, 14))
	}
	// The gap between them stays clear
	if screen.Get(40, 10) == th.Obstacle.Rune {
		t.Error("gap should be empty")
	}
}

func TestRenderGameOver(t *testing.T) {
	s := New(config.DefaultConfig(), 1, "Tester").Snapshot()
	s.Phase = PhaseOver
	s.GameOver = true
	s.ShowInstructions = false
	s.Score = 12

	_, out := renderToString(s)
	if !strings.Contains(out, "Game Over!") {
		t.Errorf("frame should announce game over:\n%s", out)
	}
	if strings.Contains(out, "Press SPACE to Start") {
		t.Error("instructions should be hidden after game over")
	}
	if !strings.Contains(out, "Score: 12") {
		t.Error("frame should show the final score")
	}
}

func TestRenderNight(t *testing.T) {
	s := New(config.DefaultConfig(), 1, "Tester").Snapshot()
	s.Night = true

	_, out := renderToString(s)
	if !strings.ContainsRune(out, assets.DefaultTheme().NightBackground.Rune) {
		t.Error("night frame should show the night background")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	s := New(config.DefaultConfig(), 1, "Tester").Snapshot()
	Render(core.NewScreen(0, 0), s, assets.DefaultTheme())
}
