package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "chartaxes")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(root, "chartaxes"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := c.(interface{ Dir() string }); ok {
		t.Error("newCache(true) should not return a file cache")
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	fc, ok := c.(interface{ Dir() string })
	if !ok {
		t.Fatalf("newCache(false) = %T, want a file cache", c)
	}
	if !strings.HasSuffix(fc.Dir(), "chartaxes") {
		t.Errorf("Dir() = %q, should end with 'chartaxes'", fc.Dir())
	}
}

func TestCachePathCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	cmd := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cache", "path"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	if got, want := strings.TrimSpace(out.String()), filepath.Join(root, "chartaxes"); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	entry := filepath.Join(root, "chartaxes", "ab", "abcdef.json")
	if err := os.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(entry, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	cmd.SetArgs([]string{"cache", "clear"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, err := os.Stat(entry); !os.IsNotExist(err) {
		t.Errorf("entry still exists after clear (stat err = %v)", err)
	}
}
