package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultBaseDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := DefaultBaseDir()
	if err != nil {
		t.Fatalf("DefaultBaseDir: %v", err)
	}
	if dir != filepath.Join(home, ".vo_sim") {
		t.Errorf("expected %s, got %s", filepath.Join(home, ".vo_sim"), dir)
	}
}

func TestGlobalConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GlobalConfigFile()
	if err != nil {
		t.Fatalf("GlobalConfigFile: %v", err)
	}
	expected := filepath.Join(home, ".config", "vosim", "config.toml")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
