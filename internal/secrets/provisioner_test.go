package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtraact/relay/internal/model"
)

func newTestProvisioner(t *testing.T, cookies string) (*Provisioner, string) {
	t.Helper()
	secretsDir := t.TempDir()
	workDir := t.TempDir()
	if cookies != "" {
		source := filepath.Join(secretsDir, "youtube"+CookieFileSuffix)
		if err := os.WriteFile(source, []byte(cookies), 0644); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}
	}
	return NewProvisioner(NewStore(secretsDir), workDir, nil), workDir
}

func TestProvisionCopiesByteForByte(t *testing.T) {
	content := "# Netscape HTTP Cookie File\n.youtube.com\tTRUE\t/\tTRUE\t0\tSID\tabc\n"
	provisioner, workDir := newTestProvisioner(t, content)

	handle, err := provisioner.Provision(model.PlatformYouTube)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if handle == nil {
		t.Fatal("Expected a handle, got nil")
	}
	defer handle.Release()

	if filepath.Dir(handle.Path()) != workDir {
		t.Errorf("Expected copy under %s, got %s", workDir, handle.Path())
	}

	data, err := os.ReadFile(handle.Path())
	if err != nil {
		t.Fatalf("Failed to read copy: %v", err)
	}
	if string(data) != content {
		t.Error("Expected copy to match source byte for byte")
	}
}

func TestProvisionUniqueCopies(t *testing.T) {
	provisioner, _ := newTestProvisioner(t, "cookies")

	first, err := provisioner.Provision(model.PlatformYouTube)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer first.Release()

	second, err := provisioner.Provision(model.PlatformYouTube)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer second.Release()

	if first.Path() == second.Path() {
		t.Errorf("Expected unique copy paths, both are %s", first.Path())
	}
}

func TestProvisionAbsentMaterial(t *testing.T) {
	provisioner, _ := newTestProvisioner(t, "")

	handle, err := provisioner.Provision(model.PlatformYouTube)
	if err != nil {
		t.Fatalf("Expected credential-free operation, got error %v", err)
	}
	if handle != nil {
		t.Errorf("Expected nil handle for absent material, got %s", handle.Path())
	}
}

func TestHandleReleaseDeletesOnce(t *testing.T) {
	provisioner, _ := newTestProvisioner(t, "cookies")

	handle, err := provisioner.Provision(model.PlatformYouTube)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	path := handle.Path()

	handle.Release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected copy to be deleted: %s", path)
	}

	// Second release must be a no-op.
	handle.Release()
}

func TestNilHandleRelease(t *testing.T) {
	var handle *Handle
	handle.Release()

	if handle.Path() != "" {
		t.Error("Expected empty path for nil handle")
	}
}

func TestCopyNameCarriesPlatform(t *testing.T) {
	provisioner, _ := newTestProvisioner(t, "cookies")

	handle, err := provisioner.Provision(model.PlatformYouTube)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer handle.Release()

	name := filepath.Base(handle.Path())
	if !strings.HasPrefix(name, copyPrefix+"youtube-") {
		t.Errorf("Expected copy name to carry the platform, got %s", name)
	}
}
