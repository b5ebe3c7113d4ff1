// Package staging owns the ephemeral staging directory: collision-free
// output templates for the engine, traversal-safe lookup of staged
// artifacts, one-time consumption, and best-effort reaping of stale files.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xtraact/relay/internal/model"
)

// Directory permissions for the staging root.
const DefaultDirPermissions = 0755

// Engine output filename template, prefixed per request for uniqueness.
const outputNameTemplate = "%(title)s.%(ext)s"

// Store is the staging directory shared by all concurrent requests. The
// directory is threaded in explicitly; no component references an ambient
// path.
type Store struct {
	dir string
}

// NewStore creates the staging directory if needed and returns a store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("staging directory is required")
	}
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the staging root.
func (s *Store) Dir() string {
	return s.dir
}

// OutputTemplate returns the engine output path template for one request.
// The token prefix keeps concurrent requests from colliding on a filename.
func (s *Store) OutputTemplate(token string) string {
	return filepath.Join(s.dir, token+"_"+outputNameTemplate)
}

// Resolve maps a public serving key to a staged file path. Any name carrying
// a path separator, a parent-directory segment, or an absolute marker is
// rejected with NotFound before the filesystem is consulted.
func (s *Store) Resolve(filename string) (string, error) {
	if !safeServingKey(filename) {
		return "", model.NewError(model.ErrorKindNotFound, "File not found.")
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", model.NewError(model.ErrorKindNotFound, "File not found.")
	}
	return path, nil
}

// Consume resolves filename and returns its path together with a release
// function that deletes the artifact. Release is safe to call on every exit
// path; only the first call acts, so a partially failed transfer still
// consumes the artifact.
func (s *Store) Consume(filename string) (string, func(), error) {
	path, err := s.Resolve(filename)
	if err != nil {
		return "", nil, err
	}
	var once sync.Once
	release := func() {
		once.Do(func() {
			os.Remove(path)
		})
	}
	return path, release, nil
}

// safeServingKey reports whether filename is a bare name inside the staging
// directory. Checks are path-semantic, not substring matches: restricted
// filenames keep their dots, so a staged title like "Video..._Part.mp4"
// must stay servable.
func safeServingKey(filename string) bool {
	if filename == "" || filename == "." || filename == ".." {
		return false
	}
	if strings.ContainsAny(filename, `/\`) {
		return false
	}
	if filepath.IsAbs(filename) || filepath.Base(filename) != filename {
		return false
	}
	return true
}
