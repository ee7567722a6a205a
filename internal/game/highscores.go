package game

import "sort"

// HighScoreEntry is one leaderboard row.
type HighScoreEntry struct {
	Name  string
	Score int
}

// RankedEntry is a leaderboard row with its 1-based rank, as handed to the
// leaderboard presenter.
type RankedEntry struct {
	Rank  int
	Name  string
	Score int
}

// HighScores is a bounded list of entries kept sorted by score descending.
// Entries with equal scores keep insertion order.
type HighScores struct {
	capacity int
	entries  []HighScoreEntry
}

// NewHighScores creates an empty list holding at most capacity entries.
func NewHighScores(capacity int) *HighScores {
	if capacity < 1 {
		capacity = 1
	}
	return &HighScores{
		capacity: capacity,
		entries:  make([]HighScoreEntry, 0, capacity+1),
	}
}

// Insert adds an entry, re-sorts, and evicts the lowest entry when the list
// grows past capacity.
func (h *HighScores) Insert(e HighScoreEntry) {
	h.entries = append(h.entries, e)
	sort.SliceStable(h.entries, func(i, j int) bool {
		return h.entries[i].Score > h.entries[j].Score
	})
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}

// Len returns the number of entries.
func (h *HighScores) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, best first.
func (h *HighScores) Entries() []HighScoreEntry {
	out := make([]HighScoreEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Ranked returns the entries with their ranks, best first.
func (h *HighScores) Ranked() []RankedEntry {
	out := make([]RankedEntry, len(h.entries))
	for i, e := range h.entries {
		out[i] = RankedEntry{Rank: i + 1, Name: e.Name, Score: e.Score}
	}
	return out
}
