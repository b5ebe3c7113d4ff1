package staging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSweepRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "stale.mp4")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatalf("Failed to age fixture: %v", err)
	}

	fresh := filepath.Join(dir, "fresh.mp4")
	if err := os.WriteFile(fresh, []byte("new"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	reaper := NewReaper(1*time.Hour, 1*time.Minute, dir)

	removed := reaper.Sweep()
	if removed != 1 {
		t.Errorf("Expected 1 file reaped, got %d", removed)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Expected stale file to be reaped")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("Expected fresh file to survive the sweep")
	}
}

func TestSweepMissingDirectory(t *testing.T) {
	reaper := NewReaper(1*time.Hour, 1*time.Minute, filepath.Join(t.TempDir(), "gone"))

	if removed := reaper.Sweep(); removed != 0 {
		t.Errorf("Expected no removals for missing directory, got %d", removed)
	}
}

func TestNewReaperDefaults(t *testing.T) {
	reaper := NewReaper(0, 0)

	if reaper.grace != DefaultReapGrace {
		t.Errorf("Expected default grace %v, got %v", DefaultReapGrace, reaper.grace)
	}
	if reaper.interval != DefaultReapInterval {
		t.Errorf("Expected default interval %v, got %v", DefaultReapInterval, reaper.interval)
	}
}
