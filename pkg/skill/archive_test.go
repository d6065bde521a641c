// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"skillpack-cli/internal/testutil"
)

// writeFullRepo creates a repository with a manifest, mixed references and
// assets including content that must be excluded from the archive.
func writeFullRepo(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "django-best-practices")
	testutil.MustMkdirAll(t, dir)
	testutil.WriteSkillRepo(t, dir, validManifest)

	testutil.MustWriteFile(t, filepath.Join(dir, ReferencesDir, "models.md"), "# Models\n")
	testutil.MustWriteFile(t, filepath.Join(dir, ReferencesDir, "views.md"), "# Views\n")
	testutil.MustWriteFile(t, filepath.Join(dir, ReferencesDir, "notes.txt"), "scratch notes\n")
	testutil.MustWriteFile(t, filepath.Join(dir, ReferencesDir, "NOTES.MD"), "# Uppercase extension\n")
	testutil.MustMkdirAll(t, filepath.Join(dir, ReferencesDir, "drafts"))
	testutil.MustWriteFile(t, filepath.Join(dir, ReferencesDir, "drafts", "wip.md"), "# WIP\n")

	testutil.MustWriteFile(t, filepath.Join(dir, AssetsDir, "template.html"), "<html></html>\n")
	testutil.MustWriteFile(t, filepath.Join(dir, AssetsDir, "data.json"), "{}\n")
	testutil.MustMkdirAll(t, filepath.Join(dir, AssetsDir, "img"))
	testutil.MustWriteFile(t, filepath.Join(dir, AssetsDir, "img", "logo.png"), "png-bytes")

	return dir
}

// archiveEntries opens the archive and returns its entry names sorted.
func archiveEntries(t *testing.T, archivePath string) []string {
	t.Helper()
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestBuildArchiveEntrySet(t *testing.T) {
	dir := writeFullRepo(t)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	want := []string{
		"django-best-practices/SKILL.md",
		"django-best-practices/assets/data.json",
		"django-best-practices/assets/template.html",
		"django-best-practices/references/models.md",
		"django-best-practices/references/views.md",
	}

	got := archiveEntries(t, result.ArchivePath)
	if len(got) != len(want) {
		t.Fatalf("archive has %d entries %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Result.Entries reports the same set
	reported := append([]string(nil), result.Entries...)
	sort.Strings(reported)
	for i := range want {
		if reported[i] != want[i] {
			t.Errorf("result.Entries[%d] = %q, want %q", i, reported[i], want[i])
		}
	}
}

func TestBuildArchiveExcludesNonMarkdownAndSubdirs(t *testing.T) {
	dir := writeFullRepo(t)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	for _, name := range archiveEntries(t, result.ArchivePath) {
		switch name {
		case "django-best-practices/references/notes.txt":
			t.Error("non-markdown reference leaked into the archive")
		case "django-best-practices/references/NOTES.MD":
			t.Error("uppercase-extension reference leaked into the archive")
		case "django-best-practices/references/drafts/wip.md":
			t.Error("nested reference leaked into the archive")
		case "django-best-practices/assets/img/logo.png":
			t.Error("nested asset leaked into the archive")
		}
	}
}

func TestBuildArchiveFrontmatterlessManifest(t *testing.T) {
	// A manifest with no YAML frontmatter still packages; the skill name
	// falls back to the directory name and the problem surfaces as a warning.
	dir := filepath.Join(t.TempDir(), "plain-skill")
	testutil.MustMkdirAll(t, dir)
	manifest := "Just instructions, no frontmatter.\n"
	testutil.WriteSkillRepo(t, dir, manifest)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	if result.Name != "plain-skill" {
		t.Errorf("Name = %q, want directory name %q", result.Name, "plain-skill")
	}
	if result.ManifestParseErr == nil {
		t.Error("ManifestParseErr = nil, want the frontmatter parse failure")
	}
	if len(result.Warnings) == 0 {
		t.Error("Warnings is empty, want a frontmatter warning")
	}

	got := archiveEntries(t, result.ArchivePath)
	if len(got) != 1 || got[0] != "plain-skill/SKILL.md" {
		t.Errorf("entries = %v, want only plain-skill/SKILL.md", got)
	}
}

func TestBuildArchiveEmptyManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "empty-manifest")
	testutil.MustMkdirAll(t, dir)
	testutil.WriteSkillRepo(t, dir, "")

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	got := archiveEntries(t, result.ArchivePath)
	if len(got) != 1 || got[0] != "empty-manifest/SKILL.md" {
		t.Errorf("entries = %v, want only empty-manifest/SKILL.md", got)
	}
}

func TestBuildArchiveUnconventionalNameWarns(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "My_Skill")
	testutil.MustMkdirAll(t, dir)
	testutil.WriteSkillRepo(t, dir, `---
description: Directory name breaks the naming rules
---
Body.
`)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	if result.Name != "My_Skill" {
		t.Errorf("Name = %q, want %q", result.Name, "My_Skill")
	}
	if len(result.Warnings) == 0 {
		t.Error("Warnings is empty, want a naming warning")
	}

	got := archiveEntries(t, result.ArchivePath)
	if len(got) != 1 || got[0] != "My_Skill/SKILL.md" {
		t.Errorf("entries = %v, want only My_Skill/SKILL.md", got)
	}
}

func TestBuildArchiveValidRepoNoWarnings(t *testing.T) {
	dir := writeFullRepo(t)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none for a valid repository", result.Warnings)
	}
	if result.ManifestParseErr != nil {
		t.Errorf("ManifestParseErr = %v, want nil", result.ManifestParseErr)
	}
}

func TestBuildArchiveManifestBytesPreserved(t *testing.T) {
	dir := writeFullRepo(t)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	r, err := zip.OpenReader(result.ArchivePath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "django-best-practices/SKILL.md" {
			continue
		}
		if f.Method != zip.Deflate {
			t.Errorf("manifest entry method = %d, want Deflate", f.Method)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open manifest entry: %v", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read manifest entry: %v", err)
		}
		if string(data) != validManifest {
			t.Error("manifest entry content differs from source SKILL.md")
		}
		return
	}
	t.Fatal("manifest entry not found in archive")
}

func TestBuildArchiveMissingManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "no-manifest")
	testutil.MustMkdirAll(t, dir)
	testutil.MustWriteFile(t, filepath.Join(dir, ReferencesDir, "guide.md"), "# Guide\n")

	_, err := BuildArchive(dir, BuildOptions{})
	if err == nil {
		t.Fatal("BuildArchive() succeeded without SKILL.md")
	}
	if !errors.Is(err, ErrManifestMissing) {
		t.Errorf("error does not wrap ErrManifestMissing: %v", err)
	}

	// No partial artifact may be left behind
	if _, statErr := os.Stat(filepath.Join(dir, "no-manifest"+ArchiveExt)); !os.IsNotExist(statErr) {
		t.Error("archive artifact exists despite missing manifest")
	}
}

func TestBuildArchiveManifestOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bare-skill")
	testutil.MustMkdirAll(t, dir)
	testutil.WriteSkillRepo(t, dir, `---
name: bare-skill
description: No references or assets
---
Body.
`)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	got := archiveEntries(t, result.ArchivePath)
	if len(got) != 1 || got[0] != "bare-skill/SKILL.md" {
		t.Errorf("entries = %v, want only the manifest", got)
	}
	if result.Size <= 0 {
		t.Errorf("Size = %d, want > 0", result.Size)
	}
}

func TestBuildArchiveEmptyDirsContributeNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "empty-dirs")
	testutil.MustMkdirAll(t, dir)
	testutil.WriteSkillRepo(t, dir, `---
name: empty-dirs
description: Empty references and assets
---
Body.
`)
	testutil.MustMkdirAll(t, filepath.Join(dir, ReferencesDir))
	testutil.MustMkdirAll(t, filepath.Join(dir, AssetsDir))

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	got := archiveEntries(t, result.ArchivePath)
	if len(got) != 1 {
		t.Errorf("entries = %v, want only the manifest", got)
	}
}

func TestBuildArchiveNameOverride(t *testing.T) {
	dir := writeFullRepo(t)

	result, err := BuildArchive(dir, BuildOptions{Name: "renamed-skill"})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	if result.Name != "renamed-skill" {
		t.Errorf("Name = %q, want %q", result.Name, "renamed-skill")
	}
	if filepath.Base(result.ArchivePath) != "renamed-skill"+ArchiveExt {
		t.Errorf("ArchivePath = %q, want basename %q", result.ArchivePath, "renamed-skill"+ArchiveExt)
	}

	for _, name := range archiveEntries(t, result.ArchivePath) {
		if filepath.Dir(name) == "django-best-practices" {
			t.Errorf("entry %q still uses the manifest name prefix", name)
		}
	}
}

func TestBuildArchiveInvalidNameOverride(t *testing.T) {
	dir := writeFullRepo(t)

	if _, err := BuildArchive(dir, BuildOptions{Name: "Bad Name"}); err == nil {
		t.Fatal("BuildArchive() accepted an invalid name override")
	}
}

func TestBuildArchiveOutputPathOverride(t *testing.T) {
	dir := writeFullRepo(t)
	out := filepath.Join(t.TempDir(), "custom.skill")

	result, err := BuildArchive(dir, BuildOptions{OutputPath: out})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}
	if result.ArchivePath != out {
		t.Errorf("ArchivePath = %q, want %q", result.ArchivePath, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("archive missing at override path: %v", err)
	}
}

func TestBuildArchiveProjectOptions(t *testing.T) {
	dir := writeFullRepo(t)
	testutil.MustWriteFile(t, filepath.Join(dir, ProjectFileName), `name = "project-name"
output_dir = "dist"
`)

	result, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	if result.Name != "project-name" {
		t.Errorf("Name = %q, want project file name", result.Name)
	}
	wantPath := filepath.Join(dir, "dist", "project-name"+ArchiveExt)
	if result.ArchivePath != wantPath {
		t.Errorf("ArchivePath = %q, want %q", result.ArchivePath, wantPath)
	}
}

func TestBuildArchiveOutputDirFallback(t *testing.T) {
	dir := writeFullRepo(t)
	outDir := filepath.Join(t.TempDir(), "global-out")

	result, err := BuildArchive(dir, BuildOptions{OutputDir: outDir})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	wantPath := filepath.Join(outDir, "django-best-practices"+ArchiveExt)
	if result.ArchivePath != wantPath {
		t.Errorf("ArchivePath = %q, want %q", result.ArchivePath, wantPath)
	}
}

func TestBuildArchiveProjectOutputDirBeatsFallback(t *testing.T) {
	dir := writeFullRepo(t)
	testutil.MustWriteFile(t, filepath.Join(dir, ProjectFileName), `output_dir = "dist"`)
	fallback := filepath.Join(t.TempDir(), "fallback")

	result, err := BuildArchive(dir, BuildOptions{OutputDir: fallback})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	wantPath := filepath.Join(dir, "dist", "django-best-practices"+ArchiveExt)
	if result.ArchivePath != wantPath {
		t.Errorf("ArchivePath = %q, want project output_dir to win: %q", result.ArchivePath, wantPath)
	}
}

func TestBuildArchiveOptionNameBeatsProjectName(t *testing.T) {
	dir := writeFullRepo(t)
	testutil.MustWriteFile(t, filepath.Join(dir, ProjectFileName), `name = "project-name"`)

	result, err := BuildArchive(dir, BuildOptions{Name: "flag-name"})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}
	if result.Name != "flag-name" {
		t.Errorf("Name = %q, want explicit option to win", result.Name)
	}
}

func TestBuildArchiveIdempotentEntrySet(t *testing.T) {
	dir := writeFullRepo(t)

	first, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("first BuildArchive() error = %v", err)
	}
	firstEntries := archiveEntries(t, first.ArchivePath)

	second, err := BuildArchive(dir, BuildOptions{})
	if err != nil {
		t.Fatalf("second BuildArchive() error = %v", err)
	}
	secondEntries := archiveEntries(t, second.ArchivePath)

	if len(firstEntries) != len(secondEntries) {
		t.Fatalf("entry counts differ: %d vs %d", len(firstEntries), len(secondEntries))
	}
	for i := range firstEntries {
		if firstEntries[i] != secondEntries[i] {
			t.Errorf("entry[%d] differs: %q vs %q", i, firstEntries[i], secondEntries[i])
		}
	}
}
