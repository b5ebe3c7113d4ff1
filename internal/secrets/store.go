package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xtraact/relay/internal/model"
)

// Secret file naming
const (
	CookieFileSuffix = "_cookies.txt"
	ProxyFileName    = ".proxy"
)

// Store locates read-only secret material in a host-provided directory.
// It never mutates the originals.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory does not have to
// exist; every lookup then degrades to "absent".
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// CookiesPath returns the path of the credential material for platform and
// whether it exists on the host.
func (s *Store) CookiesPath(platform model.Platform) (string, bool) {
	if s.dir == "" || platform == "" {
		return "", false
	}
	path := filepath.Join(s.dir, string(platform)+CookieFileSuffix)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// ProxyURL reads the optional proxy endpoint, trimmed of surrounding
// whitespace. Returns false when the file is absent or empty after trimming.
func (s *Store) ProxyURL() (string, bool) {
	if s.dir == "" {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(s.dir, ProxyFileName))
	if err != nil {
		return "", false
	}
	proxy := strings.TrimSpace(string(data))
	if proxy == "" {
		return "", false
	}
	return proxy, true
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// String implements fmt.Stringer without exposing secret contents.
func (s *Store) String() string {
	return fmt.Sprintf("secrets.Store(%s)", s.dir)
}
