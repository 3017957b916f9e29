// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/paramset/config"
)

// LoadFixture loads a fixture file from the testdata directory.
// The path is relative to the testdata directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	fullPath := filepath.Join("testdata", path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return data
}

// TempFile creates a temporary file with the given content.
// Returns the file path. File is automatically cleaned up when the test ends.
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to create temp file %s: %v", name, err)
	}

	return path
}

// TempFileString creates a temporary file with string content.
func TempFileString(t *testing.T, name, content string) string {
	t.Helper()
	return TempFile(t, name, []byte(content))
}

// CopyFixture copies a fixture file to a temporary location.
// Returns the path to the copy.
func CopyFixture(t *testing.T, fixturePath string) string {
	t.Helper()

	data := LoadFixture(t, fixturePath)
	return TempFile(t, filepath.Base(fixturePath), data)
}

// TempConfig writes tree to a temporary config file named name; the
// extension picks the format.
func TempConfig(t *testing.T, name string, tree *config.Node) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := config.Save(path, tree); err != nil {
		t.Fatalf("failed to write config %s: %v", name, err)
	}
	return path
}

// MissingPath returns a path inside a fresh temporary directory that does
// not exist.
func MissingPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", name)
}
