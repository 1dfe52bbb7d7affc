// Package stats persists per-difficulty aggregate records across game
// sessions. The store is loaded once at startup and rewritten after every
// completed game, so an abrupt exit loses at most nothing. Persistence
// failures degrade the store to in-memory operation instead of stopping
// play.
package stats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/termsweeper/termsweeper/game"
)

// FileName is the statistics file, colocated with the executable.
const FileName = "termsweeper_stats.yaml"

// ErrPersistence wraps statistics load/save failures. Non-fatal: callers
// keep playing with an in-memory store.
var ErrPersistence = errors.New("statistics persistence unavailable")

// Record aggregates completed games for one difficulty mode.
type Record struct {
	GamesPlayed  int
	GamesWon     int
	TotalTimeWon time.Duration
	BestTime     time.Duration // zero until the first win
}

// WinRatio returns wins over games played, zero for an empty record.
func (record Record) WinRatio() float64 {
	if record.GamesPlayed == 0 {
		return 0
	}
	return float64(record.GamesWon) / float64(record.GamesPlayed)
}

// AverageTimeWon returns the mean duration of won games, zero if none.
func (record Record) AverageTimeWon() time.Duration {
	if record.GamesWon == 0 {
		return 0
	}
	return record.TotalTimeWon / time.Duration(record.GamesWon)
}

// fileRecord is the on-disk shape. Durations are whole seconds so the file
// stays stable and hand-editable.
type fileRecord struct {
	GamesPlayed     int   `yaml:"games_played"`
	GamesWon        int   `yaml:"games_won"`
	TotalTimeWonSec int64 `yaml:"total_time_won_sec"`
	BestTimeSec     int64 `yaml:"best_time_sec"`
}

// Store holds one Record per difficulty name. Unknown names found in the
// file are preserved and written back untouched, so older builds can read
// files produced after new modes are added.
type Store struct {
	path    string
	records map[string]Record
}

// NewStore builds an empty store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[string]Record),
	}
}

// DefaultPath places the statistics file next to the executable, matching
// where the game has historically kept its save data. Falls back to the
// working directory when the executable path cannot be resolved.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads the backing file into the store. A missing file is a normal
// first run and leaves the store zeroed. Any other failure zeroes the
// store and returns an ErrPersistence wrap; gameplay continues in-memory.
func (store *Store) Load() error {
	store.records = make(map[string]Record)

	raw, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: reading %s: %v", ErrPersistence, store.path, err)
	}

	var onDisk map[string]fileRecord
	if err := yaml.Unmarshal(raw, &onDisk); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrPersistence, store.path, err)
	}

	for name, fr := range onDisk {
		store.records[name] = Record{
			GamesPlayed:  fr.GamesPlayed,
			GamesWon:     fr.GamesWon,
			TotalTimeWon: time.Duration(fr.TotalTimeWonSec) * time.Second,
			BestTime:     time.Duration(fr.BestTimeSec) * time.Second,
		}
	}
	return nil
}

// Save writes the full snapshot back to the backing file.
func (store *Store) Save() error {
	onDisk := make(map[string]fileRecord, len(store.records))
	for name, record := range store.records {
		onDisk[name] = fileRecord{
			GamesPlayed:     record.GamesPlayed,
			GamesWon:        record.GamesWon,
			TotalTimeWonSec: int64(record.TotalTimeWon / time.Second),
			BestTimeSec:     int64(record.BestTime / time.Second),
		}
	}

	raw, err := yaml.Marshal(onDisk)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrPersistence, store.path, err)
	}
	if err := os.WriteFile(store.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, store.path, err)
	}
	return nil
}

// Record folds one completed game into the matching difficulty's record
// and immediately saves. Best time only moves on wins. Satisfies
// game.Recorder.
func (store *Store) Record(difficulty game.Difficulty, won bool, duration time.Duration) {
	record := store.records[difficulty.Name]
	record.GamesPlayed++
	if won {
		record.GamesWon++
		record.TotalTimeWon += duration
		if record.BestTime == 0 || duration < record.BestTime {
			record.BestTime = duration
		}
	}
	store.records[difficulty.Name] = record

	if err := store.Save(); err != nil {
		logrus.WithError(err).Warn("statistics not saved; continuing in-memory")
	}
}

// Get returns the record for a difficulty name, zeroed if none exists yet.
func (store *Store) Get(name string) Record {
	return store.records[name]
}

// Totals folds every record into one lifetime aggregate for the menu
// footer. BestTime is the minimum across modes.
func (store *Store) Totals() Record {
	var totals Record
	for _, record := range store.records {
		totals.GamesPlayed += record.GamesPlayed
		totals.GamesWon += record.GamesWon
		totals.TotalTimeWon += record.TotalTimeWon
		if record.BestTime > 0 && (totals.BestTime == 0 || record.BestTime < totals.BestTime) {
			totals.BestTime = record.BestTime
		}
	}
	return totals
}
