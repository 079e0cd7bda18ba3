// Package stats persists run statistics across simulation sessions.
// The simulation core only emits run-ended events; this store is the
// external collaborator that remembers them.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	statsFile = "stats.json"

	// recentCap bounds the per-run duration history kept on disk.
	recentCap = 100
)

// Stats is the persisted shape.
type Stats struct {
	TotalRuns         int       `json:"total_runs"`
	LongestRunSeconds float64   `json:"longest_run_seconds"`
	RecentSeconds     []float64 `json:"recent_seconds"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Store struct {
	baseDir string
	stats   Stats
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the data directory and loads any existing statistics.
// A missing or unreadable stats file starts the counters from zero.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var st Stats
	if err := json.Unmarshal(data, &st); err != nil {
		// corrupt file: keep zeros rather than refuse to run
		return nil
	}
	s.stats = st
	return nil
}

// Record folds a completed run into the statistics and persists them.
func (s *Store) Record(d time.Duration) error {
	secs := d.Seconds()

	s.stats.TotalRuns++
	if secs > s.stats.LongestRunSeconds {
		s.stats.LongestRunSeconds = secs
	}
	s.stats.RecentSeconds = append(s.stats.RecentSeconds, secs)
	if len(s.stats.RecentSeconds) > recentCap {
		s.stats.RecentSeconds = s.stats.RecentSeconds[len(s.stats.RecentSeconds)-recentCap:]
	}
	s.stats.UpdatedAt = time.Now()

	return s.save()
}

// Stats returns a copy of the current statistics.
func (s *Store) Stats() Stats {
	st := s.stats
	st.RecentSeconds = append([]float64(nil), s.stats.RecentSeconds...)
	return st
}

func (s *Store) save() error {
	f, err := os.Create(s.path())
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s.stats)
}

func (s *Store) path() string {
	return filepath.Join(s.baseDir, statsFile)
}
