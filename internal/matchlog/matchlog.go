package matchlog

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Difficulty selects the engine's configured search depth for CLI play.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Depth returns the alpha-beta max depth associated with a difficulty
// level. Medium and Hard fall within the original engine's "Recommended
// range: 8-14"; Easy sits below it.
func (d Difficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 14
	default:
		return 8
	}
}

// WinKind records which rule ended a match.
type WinKind string

const (
	WinFive    WinKind = "five"
	WinCapture WinKind = "capture"
	WinNone    WinKind = "none"
)

// Preferences stores CLI session settings.
type Preferences struct {
	Username     string     `json:"username"`
	Difficulty   Difficulty `json:"difficulty"`
	SoundEnabled bool       `json:"sound_enabled"`
	LastPlayed   time.Time  `json:"last_played"`
}

// DefaultPreferences returns the CLI's default settings.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:     "Player",
		Difficulty:   DifficultyMedium,
		SoundEnabled: true,
	}
}

// Stats accumulates win/loss history across sessions.
type Stats struct {
	GamesPlayed     int            `json:"games_played"`
	Wins            int            `json:"wins"`
	Losses          int            `json:"losses"`
	WinsByKind      map[string]int `json:"wins_by_kind"`
	WinsByDiff      map[string]int `json:"wins_by_difficulty"`
	TotalPlayTime   time.Duration  `json:"total_play_time"`
	LongestWinStrk  int            `json:"longest_win_streak"`
	CurrentStreak   int            `json:"current_streak"`
}

// NewStats returns empty match history.
func NewStats() *Stats {
	return &Stats{
		WinsByKind: make(map[string]int),
		WinsByDiff: make(map[string]int),
	}
}

// WinRate returns the win percentage, 0 when no games are recorded.
func (s *Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// MatchResult is one completed CLI match.
type MatchResult struct {
	Won        bool
	Kind       WinKind
	Difficulty Difficulty
	Duration   time.Duration
}

// Store wraps BadgerDB for the CLI's preferences and match history.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the on-disk store.
func Open() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the store at an explicit directory, used directly by tests
// to avoid touching the real user data directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SavePreferences persists prefs, stamping LastPlayed.
func (s *Store) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads saved preferences, or defaults if none exist.
func (s *Store) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})
	return prefs, err
}

// SaveStats persists stats.
func (s *Store) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads saved stats, or empty stats if none exist.
func (s *Store) LoadStats() (*Stats, error) {
	stats := NewStats()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}

// RecordMatch loads stats, folds in result, and saves them back.
func (s *Store) RecordMatch(result MatchResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	diffKey := "medium"
	switch result.Difficulty {
	case DifficultyEasy:
		diffKey = "easy"
	case DifficultyHard:
		diffKey = "hard"
	}

	if result.Won {
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		stats.WinsByKind[string(result.Kind)]++
		stats.WinsByDiff[diffKey]++
	} else {
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}
