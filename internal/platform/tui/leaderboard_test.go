package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/cubibird/internal/game"
	"github.com/vovakirdan/cubibird/internal/storage"
)

func TestLeaderboardRows(t *testing.T) {
	hs := game.NewHighScores(5)
	for i, s := range []int{10, 50, 30, 20, 40, 5} {
		hs.Insert(game.HighScoreEntry{Name: string(rune('A' + i)), Score: s})
	}

	rows := LeaderboardRows(hs.Ranked())
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	want := [][]string{
		{"#1", "B", "50"},
		{"#2", "E", "40"},
		{"#3", "C", "30"},
		{"#4", "D", "20"},
		{"#5", "A", "10"},
	}
	for i, row := range rows {
		for j, cell := range row {
			if cell != want[i][j] {
				t.Errorf("rows[%d][%d] = %q, expected %q", i, j, cell, want[i][j])
			}
		}
	}
}

func TestLeaderboardView(t *testing.T) {
	l := NewLeaderboard()

	empty := l.View(0, "hint")
	if !strings.Contains(empty, "No scores recorded yet.") {
		t.Errorf("empty board should say so:\n%s", empty)
	}

	l.SetEntries([]game.RankedEntry{{Rank: 1, Name: "Ann", Score: 12}})
	view := l.View(12, "hint")
	for _, want := range []string{"Game Over!", "Score: 12", "Ann", "#1", "hint"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestStoredEntries(t *testing.T) {
	entries, err := storedEntries(nil, 5)
	if err != nil || entries != nil {
		t.Errorf("storedEntries(nil) = %v, %v", entries, err)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i, s := range []int{3, 9, 1, 7, 5, 8} {
		if _, err := store.SaveRun(string(rune('a'+i)), s); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err = storedEntries(store, 5)
	if err != nil {
		t.Fatalf("storedEntries() failed: %v", err)
	}
	if len(entries) != 5 || entries[0].Score != 9 || entries[4].Score != 3 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
