package game

import (
	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/core"
)

// Obstacle is one half of an obstacle pair. It is a plain record; bounds
// checks are free functions below.
type Obstacle struct {
	X      int // Left edge, decreases every tick
	Y      int // Top edge
	Width  int
	Height int
}

// ObstacleBounds returns the collision rectangle of an obstacle.
func ObstacleBounds(o Obstacle) core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// PastLeftEdge reports whether the obstacle's right edge has crossed the
// left boundary of the playfield.
func PastLeftEdge(o Obstacle) bool {
	return o.X+o.Width < 0
}

// SpawnPair builds the top and bottom obstacles for a split point.
// The top obstacle hangs from the ceiling down to split+margin; the bottom
// one starts exactly gap units lower and stops at the lower ground band.
func SpawnPair(x, split int, cfg config.Config) (top, bottom Obstacle) {
	margin := cfg.Playfield.GroundMargin
	bottomY := split + cfg.Obstacles.Gap + margin

	top = Obstacle{
		X:      x,
		Y:      0,
		Width:  cfg.Obstacles.Width,
		Height: split + margin,
	}
	bottom = Obstacle{
		X:      x,
		Y:      bottomY,
		Width:  cfg.Obstacles.Width,
		Height: cfg.Playfield.Height - bottomY - margin,
	}
	return top, bottom
}

// ScrollObstacles shifts every obstacle left by speed and drops the ones
// that scrolled past the left edge. The slice is compacted in place so
// creation order is preserved. Returns the survivors and how many were
// removed.
func ScrollObstacles(obstacles []Obstacle, speed int) ([]Obstacle, int) {
	kept := obstacles[:0]
	removed := 0
	for _, o := range obstacles {
		o.X -= speed
		if PastLeftEdge(o) {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	return kept, removed
}

// FirstHit returns the index of the first obstacle overlapping box, or -1.
func FirstHit(box core.Rect, obstacles []Obstacle) int {
	for i, o := range obstacles {
		if box.Intersects(ObstacleBounds(o)) {
			return i
		}
	}
	return -1
}
