package staging

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Reaper defaults. The grace period must exceed the longest plausible
// single-request duration so an in-flight download or serve is never swept.
const (
	DefaultReapGrace    = 1 * time.Hour
	DefaultReapInterval = 15 * time.Minute
)

// Reaper sweeps abandoned staged artifacts and orphaned credential copies.
// It is a maintenance task running outside the request path; request-scoped
// cleanup does not depend on it.
type Reaper struct {
	dirs     []string
	grace    time.Duration
	interval time.Duration
}

// NewReaper creates a reaper over the given directories. Non-positive grace
// or interval values fall back to the defaults.
func NewReaper(grace, interval time.Duration, dirs ...string) *Reaper {
	if grace <= 0 {
		grace = DefaultReapGrace
	}
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	return &Reaper{dirs: dirs, grace: grace, interval: interval}
}

// Start runs periodic sweeps until ctx is cancelled.
func (r *Reaper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := r.Sweep(); removed > 0 {
					log.Printf("Reaped %d stale staged file(s)", removed)
				}
			}
		}
	}()
}

// Sweep removes regular files older than the grace period from every watched
// directory and returns how many were removed. Errors are best-effort only.
func (r *Reaper) Sweep() int {
	cutoff := time.Now().Add(-r.grace)
	removed := 0
	for _, dir := range r.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(cutoff) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
	}
	return removed
}
