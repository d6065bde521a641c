// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"path/filepath"
	"testing"

	"skillpack-cli/internal/testutil"
)

func TestLoadProjectOptionsMissing(t *testing.T) {
	opts, err := LoadProjectOptions(t.TempDir())
	if err != nil {
		t.Fatalf("LoadProjectOptions() error = %v", err)
	}
	if opts.Name != "" || opts.OutputDir != "" {
		t.Errorf("missing file should yield zero options, got %+v", opts)
	}
}

func TestLoadProjectOptions(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ProjectFileName), `name = "custom-name"
output_dir = "dist"
`)

	opts, err := LoadProjectOptions(dir)
	if err != nil {
		t.Fatalf("LoadProjectOptions() error = %v", err)
	}
	if opts.Name != "custom-name" {
		t.Errorf("Name = %q, want %q", opts.Name, "custom-name")
	}
	if opts.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, "dist")
	}
}

func TestLoadProjectOptionsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ProjectFileName), `name = unquoted`)

	if _, err := LoadProjectOptions(dir); err == nil {
		t.Fatal("LoadProjectOptions() succeeded with malformed TOML")
	}
}

func TestLoadProjectOptionsInvalidName(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ProjectFileName), `name = "Not-Valid"`)

	if _, err := LoadProjectOptions(dir); err == nil {
		t.Fatal("LoadProjectOptions() succeeded with invalid skill name")
	}
}
