package secrets

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xtraact/relay/internal/model"
)

// Copy naming and permissions
const (
	copyPrefix      = "cookies-"
	copyExtension   = ".txt"
	copyPermissions = 0600
)

// Handle is one request-scoped writable credential copy. Release deletes the
// copy and is safe to call from any exit path; only the first call acts.
type Handle struct {
	path string
	once sync.Once
}

// Path returns the writable copy's path, or "" for a credential-free handle.
func (h *Handle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

// Release deletes the writable copy exactly once. A nil or credential-free
// handle is a no-op.
func (h *Handle) Release() {
	if h == nil || h.path == "" {
		return
	}
	h.once.Do(func() {
		if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove credential copy %s: %v", h.path, err)
		}
	})
}

// Provisioner produces ephemeral credential copies from the read-only store.
// Copies land in workDir under a unique name so concurrent requests never
// collide.
type Provisioner struct {
	store   *Store
	workDir string

	// required flags platforms whose missing credentials are a
	// configuration error worth logging, not just absent material.
	required map[model.Platform]bool
}

// NewProvisioner creates a provisioner writing copies under workDir.
func NewProvisioner(store *Store, workDir string, required map[model.Platform]bool) *Provisioner {
	if required == nil {
		required = map[model.Platform]bool{}
	}
	return &Provisioner{store: store, workDir: workDir, required: required}
}

// Provision locates credential material for platform and copies it to a new
// uniquely-named writable path. A nil handle with nil error means valid
// credential-free operation. An unreadable source degrades to credential-free
// with a warning; it never fails the request.
func (p *Provisioner) Provision(platform model.Platform) (*Handle, error) {
	source, ok := p.store.CookiesPath(platform)
	if !ok {
		if p.required[platform] {
			log.Printf("Warning: no credentials configured for %s; downloads may be rejected", platform)
		}
		return nil, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		credErr := model.WrapError(model.ErrorKindCredential,
			fmt.Sprintf("credential material for %s is unreadable", platform), err)
		log.Printf("Warning: %v (continuing without credentials)", credErr)
		return nil, nil
	}

	target := filepath.Join(p.workDir, copyPrefix+string(platform)+"-"+copyToken()+copyExtension)
	if err := os.WriteFile(target, data, copyPermissions); err != nil {
		credErr := model.WrapError(model.ErrorKindCredential,
			fmt.Sprintf("failed to stage credential copy for %s", platform), err)
		log.Printf("Warning: %v (continuing without credentials)", credErr)
		return nil, nil
	}

	return &Handle{path: target}, nil
}

// copyToken generates a unique token using UUID v7 for time-ordered names,
// with a timestamp fallback if UUID generation fails.
func copyToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
