package game

import (
	"fmt"

	"github.com/vovakirdan/cubibird/internal/assets"
	"github.com/vovakirdan/cubibird/internal/core"
)

// Instruction lines shown while awaiting the start.
var instructions = []string{
	"Press SPACE to Start",
	"Use SPACE to Control the Bird",
	"Avoid Obstacles!",
}

// Render draws a snapshot into dst, scaling world units onto the grid.
func Render(dst *core.Screen, s Snapshot, th assets.Theme) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	p := projection{world: s.World, w: w, h: h}

	drawBackground(dst, s.Night, th)

	// Ground bands
	ground := s.World.GroundMargin
	dst.DrawRect(p.rect(core.NewRect(0, 0, s.World.Width, ground)), th.Ground.Rune, th.Ground.Color)
	dst.DrawRect(p.rect(core.NewRect(0, s.World.Height-ground, s.World.Width, ground)), th.Ground.Rune, th.Ground.Color)

	for _, o := range s.Obstacles {
		drawObstacle(dst, p, o, th)
	}

	drawBody(dst, p, s, th)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score), th.Text)
	dst.DrawTextCentered(0, fmt.Sprintf(" Highest Score: %d ", s.Highest), th.Text)

	if s.ShowInstructions {
		mid := h / 2
		for i, line := range instructions {
			dst.DrawTextCentered(mid-5+i, line, th.Text)
		}
		if s.Countdown > 0 {
			dst.DrawTextCentered(mid, fmt.Sprintf("[ %d ]", s.Countdown), th.Alert)
		}
	}

	if s.GameOver {
		drawCenteredMessage(dst, "Game Over!", fmt.Sprintf("Score: %d  |  SPACE or R to restart", s.Score), th)
	}
}

// projection maps world rectangles onto screen cells. Anything with a
// non-zero size stays at least one cell wide and tall.
type projection struct {
	world World
	w, h  int
}

func (p projection) x(v int) int { return core.Scale(v, p.world.Width, p.w) }
func (p projection) y(v int) int { return core.Scale(v, p.world.Height, p.h) }

func (p projection) rect(r core.Rect) core.Rect {
	if r.W <= 0 || r.H <= 0 {
		return core.Rect{}
	}
	x0, y0 := p.x(r.X), p.y(r.Y)
	x1, y1 := p.x(r.Right()), p.y(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawBackground(dst *core.Screen, night bool, th assets.Theme) {
	if !night {
		dst.Fill(th.DayBackground.Rune, th.DayBackground.Color)
		return
	}
	dst.Clear()
	// Sparse stars
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%23 == 0 {
				dst.Set(x, y, th.NightBackground.Rune, th.NightBackground.Color)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, p projection, o Obstacle, th assets.Theme) {
	r := p.rect(ObstacleBounds(o))
	if r.W == 0 {
		return
	}
	dst.DrawRect(r, th.Obstacle.Rune, th.Obstacle.Color)

	// Cap on the edge facing the gap
	capY := r.Y
	if o.Y == 0 {
		capY = r.Bottom() - 1
	}
	dst.DrawHLine(r.X, capY, r.W, th.ObstacleCap.Rune, th.ObstacleCap.Color)
}

func drawBody(dst *core.Screen, p projection, s Snapshot, th assets.Theme) {
	size := s.World.BodySize
	r := p.rect(core.NewRect(s.Body.X, s.Body.Y, size, size))
	if r.W == 0 {
		return
	}
	dst.DrawRect(r, th.Body.Rune, th.Body.Color)
	dst.Set(r.Right()-1, r.Y, th.BodyEye.Rune, th.BodyEye.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, th assets.Theme) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, th.Text)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, th.Alert)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, th.Text)
}
