// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustChdir changes the current working directory to dir.
// It returns a cleanup function that restores the original directory.
// The test fails immediately if the directory change fails.
func MustChdir(t testing.TB, dir string) func() {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	}
}

// MustWriteFile writes content to path, creating parent directories as
// needed. The test fails immediately on error.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustMkdirAll creates a directory and all parents.
// The test fails immediately on error.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// WriteSkillRepo creates a minimal valid skill repository under dir with the
// given manifest content. Returns dir for convenience.
func WriteSkillRepo(t testing.TB, dir, manifest string) string {
	t.Helper()
	MustWriteFile(t, filepath.Join(dir, "SKILL.md"), manifest)
	return dir
}
