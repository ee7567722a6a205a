package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubibird/internal/game"
	"github.com/vovakirdan/cubibird/internal/storage"
)

// Leaderboard presents the ranked high-score list after a run.
type Leaderboard struct {
	table table.Model
	rows  int
}

// NewLeaderboard creates an empty leaderboard table.
func NewLeaderboard() Leaderboard {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Score", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return Leaderboard{table: t}
}

// LeaderboardRows converts ranked entries to table rows.
func LeaderboardRows(entries []game.RankedEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.Rank),
			e.Name,
			strconv.Itoa(e.Score),
		}
	}
	return rows
}

// SetEntries replaces the rows shown.
func (l *Leaderboard) SetEntries(entries []game.RankedEntry) {
	l.rows = len(entries)
	l.table.SetRows(LeaderboardRows(entries))
	l.table.SetHeight(max(1, len(entries)))
	l.table.GotoTop()
}

// View renders the leaderboard panel with the final score of the run.
func (l Leaderboard) View(score int, hint string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))
	scoreStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Game Over!"))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d", score)))
	b.WriteString("\n\n")
	b.WriteString("HIGH SCORES\n")

	if l.rows == 0 {
		b.WriteString(hintStyle.Italic(true).Render("No scores recorded yet."))
	} else {
		b.WriteString(l.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(hint))

	return panelStyle.Render(b.String())
}

// storedEntries loads the best stored runs for seeding a new game.
func storedEntries(store *storage.Store, limit int) ([]game.HighScoreEntry, error) {
	if store == nil {
		return nil, nil
	}
	runs, err := store.TopRuns(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]game.HighScoreEntry, len(runs))
	for i, r := range runs {
		entries[i] = game.HighScoreEntry{Name: r.Name, Score: r.Score}
	}
	return entries, nil
}
