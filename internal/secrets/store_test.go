package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xtraact/relay/internal/model"
)

func TestCookiesPath(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "youtube"+CookieFileSuffix)
	if err := os.WriteFile(source, []byte("# cookies"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store := NewStore(dir)

	path, ok := store.CookiesPath(model.PlatformYouTube)
	if !ok {
		t.Fatal("Expected cookies to be found")
	}
	if path != source {
		t.Errorf("Expected path %s, got %s", source, path)
	}

	if _, ok := store.CookiesPath(model.PlatformTikTok); ok {
		t.Error("Expected no cookies for unconfigured platform")
	}
}

func TestCookiesPathMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	if _, ok := store.CookiesPath(model.PlatformYouTube); ok {
		t.Error("Expected no cookies when secrets directory is absent")
	}
}

func TestProxyURL(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ProxyFileName), []byte("  http://proxy.example:8080\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store := NewStore(dir)

	proxy, ok := store.ProxyURL()
	if !ok {
		t.Fatal("Expected proxy to be found")
	}
	if proxy != "http://proxy.example:8080" {
		t.Errorf("Expected trimmed proxy URL, got '%s'", proxy)
	}
}

func TestProxyURLAbsentOrEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if _, ok := store.ProxyURL(); ok {
		t.Error("Expected no proxy when file is absent")
	}

	if err := os.WriteFile(filepath.Join(dir, ProxyFileName), []byte("   \n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, ok := store.ProxyURL(); ok {
		t.Error("Expected no proxy when file is empty after trimming")
	}
}
