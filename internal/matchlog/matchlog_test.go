package matchlog

import (
	"os"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir, err := os.MkdirTemp("", "ninukictl-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Username != "Player" {
		t.Errorf("expected username 'Player', got %q", prefs.Username)
	}
	if prefs.Difficulty != DifficultyMedium {
		t.Errorf("expected medium difficulty by default")
	}
	if !prefs.SoundEnabled {
		t.Errorf("expected sound enabled by default")
	}
}

func TestDifficultyDepth(t *testing.T) {
	cases := map[Difficulty]int{
		DifficultyEasy:   4,
		DifficultyMedium: 8,
		DifficultyHard:   14,
	}
	for d, want := range cases {
		if got := d.Depth(); got != want {
			t.Errorf("Difficulty(%d).Depth() = %d, want %d", d, got, want)
		}
	}
}

func TestSaveAndLoadPreferences(t *testing.T) {
	s := openTestStore(t)
	prefs := DefaultPreferences()
	prefs.Username = "Alice"
	prefs.Difficulty = DifficultyHard
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if loaded.Username != "Alice" || loaded.Difficulty != DifficultyHard {
		t.Fatalf("loaded preferences mismatch: %+v", loaded)
	}
}

func TestLoadPreferencesDefaultsWhenMissing(t *testing.T) {
	s := openTestStore(t)
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.Username != "Player" {
		t.Fatalf("expected defaults, got %+v", prefs)
	}
}

func TestRecordMatchAccumulatesStats(t *testing.T) {
	s := openTestStore(t)

	if err := s.RecordMatch(MatchResult{Won: true, Kind: WinFive, Difficulty: DifficultyMedium}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}
	if err := s.RecordMatch(MatchResult{Won: true, Kind: WinCapture, Difficulty: DifficultyMedium}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}
	if err := s.RecordMatch(MatchResult{Won: false, Difficulty: DifficultyMedium}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 3 || stats.Wins != 2 || stats.Losses != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.CurrentStreak != 0 {
		t.Fatalf("expected streak reset after a loss, got %d", stats.CurrentStreak)
	}
	if stats.WinsByKind[string(WinFive)] != 1 || stats.WinsByKind[string(WinCapture)] != 1 {
		t.Fatalf("expected one win of each kind, got %+v", stats.WinsByKind)
	}
	if got := stats.WinRate(); got < 66.0 || got > 67.0 {
		t.Fatalf("expected ~66.67%% win rate, got %f", got)
	}
}
