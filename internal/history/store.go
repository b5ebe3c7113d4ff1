// Package history keeps a small persistent record of completed downloads,
// newest first, capped to a fixed number of entries.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MaxRecords caps the history length; older entries fall off the end.
const MaxRecords = 100

// File permissions for the history file and its directory.
const (
	filePermissions = 0644
	dirPermissions  = 0755
)

// Record is one completed download.
type Record struct {
	Title        string    `json:"title"`
	Uploader     string    `json:"uploader,omitempty"`
	URL          string    `json:"webpage_url"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// Store persists records as a JSON array. A store with an empty path is
// memory-only. Safe for concurrent use.
type Store struct {
	path    string
	mu      sync.Mutex
	records []Record
}

// NewStore creates a store backed by path and loads any existing history.
// An unreadable or corrupt file starts the history fresh rather than
// failing.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		s.records = nil
	}
	return s
}

// Add prepends a record, trims to MaxRecords, and persists.
func (s *Store) Add(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.DownloadedAt.IsZero() {
		record.DownloadedAt = time.Now()
	}
	s.records = append([]Record{record}, s.records...)
	if len(s.records) > MaxRecords {
		s.records = s.records[:MaxRecords]
	}
	return s.persist()
}

// All returns a copy of the history, newest first.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// persist writes the history file. Caller holds the lock.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirPermissions); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	data, err := json.MarshalIndent(s.records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
