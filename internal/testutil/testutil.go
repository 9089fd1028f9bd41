// Package testutil provides common test helpers for the cswap project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempStore creates a temporary cookie store directory populated with the
// given files (name -> content) and returns its path.
func TempStore(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

// SoberStore creates a store with an active "cookies" file (content "A")
// and two backups: cookies_work ("B") and cookies_home ("C").
func SoberStore(t *testing.T) string {
	t.Helper()

	return TempStore(t, map[string]string{
		"cookies":      "A",
		"cookies_work": "B",
		"cookies_home": "C",
	})
}

// WriteFile writes content to path with 0600 permissions, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: write failed: %v", err)
	}
}

// ReadFile reads path and returns its content as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: read failed: %v", err)
	}
	return string(data)
}

// DirNames returns the names of all entries in dir.
func DirNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("DirNames: read dir failed: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempHistoryFile creates a temporary history.json with the given content
// and returns its path.
func TempHistoryFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempHistoryFile: write failed: %v", err)
	}

	return path
}
