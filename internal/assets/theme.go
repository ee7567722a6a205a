// Package assets provides the visual theme used to draw the game.
// A theme file replaces the sprite images of a graphical build: when it
// cannot be loaded the game logs the problem and keeps the built-in look.
package assets

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cubibird/internal/core"
)

// Glyph is a single themed cell.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Theme holds every glyph the renderer paints.
type Theme struct {
	DayBackground   Glyph
	NightBackground Glyph
	Ground          Glyph
	Body            Glyph
	BodyEye         Glyph
	Obstacle        Glyph
	ObstacleCap     Glyph
	Text            core.Color
	Alert           core.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		DayBackground:   Glyph{Rune: ' ', Color: core.ColorDefault},
		NightBackground: Glyph{Rune: '·', Color: core.ColorBlue},
		Ground:          Glyph{Rune: '▒', Color: core.ColorGray},
		Body:            Glyph{Rune: '█', Color: core.ColorBrightYellow},
		BodyEye:         Glyph{Rune: '▶', Color: core.ColorOrange},
		Obstacle:        Glyph{Rune: '█', Color: core.ColorGreen},
		ObstacleCap:     Glyph{Rune: '▓', Color: core.ColorBrightGreen},
		Text:            core.ColorBrightWhite,
		Alert:           core.ColorBrightRed,
	}
}

// glyphFile is the YAML form of a Glyph.
type glyphFile struct {
	Char  string `yaml:"char"`
	Color string `yaml:"color"`
}

// themeFile is the YAML form of a Theme. Missing entries keep defaults.
type themeFile struct {
	DayBackground   *glyphFile `yaml:"day_background"`
	NightBackground *glyphFile `yaml:"night_background"`
	Ground          *glyphFile `yaml:"ground"`
	Body            *glyphFile `yaml:"body"`
	BodyEye         *glyphFile `yaml:"body_eye"`
	Obstacle        *glyphFile `yaml:"obstacle"`
	ObstacleCap     *glyphFile `yaml:"obstacle_cap"`
	Text            string     `yaml:"text"`
	Alert           string     `yaml:"alert"`
}

// ParseTheme decodes a YAML theme on top of the default theme.
func ParseTheme(data []byte) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("assets: cannot parse theme: %w", err)
	}

	t := DefaultTheme()
	glyphs := []struct {
		name string
		src  *glyphFile
		dst  *Glyph
	}{
		{"day_background", f.DayBackground, &t.DayBackground},
		{"night_background", f.NightBackground, &t.NightBackground},
		{"ground", f.Ground, &t.Ground},
		{"body", f.Body, &t.Body},
		{"body_eye", f.BodyEye, &t.BodyEye},
		{"obstacle", f.Obstacle, &t.Obstacle},
		{"obstacle_cap", f.ObstacleCap, &t.ObstacleCap},
	}
	for _, g := range glyphs {
		if g.src == nil {
			continue
		}
		if err := applyGlyph(g.dst, *g.src); err != nil {
			return Theme{}, fmt.Errorf("assets: %s: %w", g.name, err)
		}
	}

	if f.Text != "" {
		c, ok := core.ParseColor(f.Text)
		if !ok {
			return Theme{}, fmt.Errorf("assets: text: unknown color %q", f.Text)
		}
		t.Text = c
	}
	if f.Alert != "" {
		c, ok := core.ParseColor(f.Alert)
		if !ok {
			return Theme{}, fmt.Errorf("assets: alert: unknown color %q", f.Alert)
		}
		t.Alert = c
	}
	return t, nil
}

func applyGlyph(dst *Glyph, src glyphFile) error {
	if src.Char != "" {
		runes := []rune(src.Char)
		if len(runes) != 1 {
			return fmt.Errorf("char must be a single character, got %q", src.Char)
		}
		dst.Rune = runes[0]
	}
	if src.Color != "" {
		c, ok := core.ParseColor(src.Color)
		if !ok {
			return fmt.Errorf("unknown color %q", src.Color)
		}
		dst.Color = c
	}
	return nil
}

// LoadTheme reads a theme file. An empty path selects the default theme.
// Any failure is logged and the default theme is returned, so a broken
// asset never keeps the game from running.
func LoadTheme(path string, logger *log.Logger) Theme {
	if path == "" {
		return DefaultTheme()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("could not load theme, using defaults", "path", path, "error", err)
		return DefaultTheme()
	}

	t, err := ParseTheme(data)
	if err != nil {
		logger.Warn("could not parse theme, using defaults", "path", path, "error", err)
		return DefaultTheme()
	}
	return t
}
