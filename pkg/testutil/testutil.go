// Package testutil holds helpers shared by the ansiprint package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// Dirs are the per-test XDG directories set up by Isolate.
type Dirs struct {
	Config string
	State  string
}

// Isolate points the XDG config and state directories at fresh temp dirs
// and clears NO_COLOR and every ANSIPRINT_ variable, so neither the user's
// files nor their environment reach the code under test.
func Isolate(t *testing.T) Dirs {
	t.Helper()

	dirs := Dirs{Config: t.TempDir(), State: t.TempDir()}
	t.Setenv("XDG_CONFIG_HOME", dirs.Config)
	t.Setenv("XDG_STATE_HOME", dirs.State)
	t.Setenv("NO_COLOR", "")
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "ANSIPRINT_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	xdg.Reload()
	return dirs
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}
