// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"archive/zip"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// BuildOptions contains options for building a skill archive
type BuildOptions struct {
	// OutputPath overrides the archive location (default: <root>/<name>.skill,
	// or the output_dir from skillpack.toml when set)
	OutputPath string
	// OutputDir is a fallback directory used when neither OutputPath nor the
	// project file set one. Relative paths resolve against the working
	// directory.
	OutputDir string
	// Name overrides the skill name used for the archive file and the
	// internal namespace prefix
	Name string
}

// BuildResult describes a successfully built archive
type BuildResult struct {
	// Name is the skill name used as the namespace prefix
	Name string
	// ArchivePath is the absolute path to the written archive
	ArchivePath string
	// Entries lists the internal archive paths that were written
	Entries []string
	// Size is the final archive size in bytes
	Size int64
	// Warnings lists non-fatal problems found while building (unparseable
	// frontmatter, unconventional names). The archive is still produced.
	Warnings []string
	// ManifestParseErr is set when SKILL.md exists but its frontmatter could
	// not be parsed; the skill name falls back to the directory name.
	ManifestParseErr error
}

// BuildArchive packages a skill repository into a .skill zip archive.
//
// The manifest's existence is the only build precondition, checked before the
// output file is created so a missing SKILL.md never leaves a partial
// artifact behind. A manifest with unparseable frontmatter or an
// unconventional resolved name still packages, reported through
// BuildResult.Warnings; strict checks live in Validate. References and
// assets are best-effort: a missing directory contributes zero entries.
// Returns the build result or an error.
func BuildArchive(root string, opts BuildOptions) (*BuildResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat repository: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absRoot)
	}

	manifestPath := filepath.Join(absRoot, ManifestName)
	manifestInfo, err := os.Stat(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ManifestMissingError{Root: absRoot}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", ManifestName, err)
	}
	if manifestInfo.IsDir() {
		return nil, fmt.Errorf("%s must be a file, not a directory", ManifestName)
	}

	result := &BuildResult{}

	manifest, parseErr := ParseManifestFile(manifestPath)
	if parseErr != nil {
		result.ManifestParseErr = parseErr
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s: %v; falling back to the directory name", ManifestName, parseErr))
	}

	project, err := LoadProjectOptions(absRoot)
	if err != nil {
		return nil, err
	}

	// Name precedence: explicit option, project file, manifest/directory.
	// Only the explicit option is held to the naming rules; a repository
	// with an unconventional name still packages, with a warning.
	name := resolveName(absRoot, manifest)
	if project.Name != "" {
		name = project.Name
	}
	if opts.Name != "" {
		if err := ValidateName(opts.Name); err != nil {
			return nil, err
		}
		name = opts.Name
	} else if err := ValidateName(name); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}

	outputPath, err := resolveOutputPath(absRoot, name, project, opts)
	if err != nil {
		return nil, err
	}

	zipFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	result.Name = name
	result.ArchivePath = outputPath

	fail := func(err error) (*BuildResult, error) {
		// Clean up on failure
		zipWriter.Close()
		zipFile.Close()
		os.Remove(outputPath)
		return nil, err
	}

	// Add SKILL.md (required)
	manifestEntry := path.Join(name, ManifestName)
	if err := addArchiveEntry(zipWriter, manifestPath, manifestEntry); err != nil {
		return fail(err)
	}
	result.Entries = append(result.Entries, manifestEntry)

	// Add references (*.md only, non-recursive)
	refEntries, err := addDirEntries(zipWriter, absRoot, name, ReferencesDir, func(e os.DirEntry) bool {
		return !e.IsDir() && filepath.Ext(e.Name()) == ReferenceExt
	})
	if err != nil {
		return fail(err)
	}
	result.Entries = append(result.Entries, refEntries...)

	// Add assets (any regular file, non-recursive)
	assetEntries, err := addDirEntries(zipWriter, absRoot, name, AssetsDir, func(e os.DirEntry) bool {
		return !e.IsDir()
	})
	if err != nil {
		return fail(err)
	}
	result.Entries = append(result.Entries, assetEntries...)

	// Flush and finalize before statting for the size
	if err := zipWriter.Close(); err != nil {
		return fail(fmt.Errorf("failed to finalize archive: %w", err))
	}
	if err := zipFile.Close(); err != nil {
		return fail(fmt.Errorf("failed to close archive file: %w", err))
	}

	info, err = os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	result.Size = info.Size()

	return result, nil
}

// resolveOutputPath determines the absolute archive path from the explicit
// option, the project options, or the default <root>/<name>.skill.
func resolveOutputPath(root, name string, project *ProjectOptions, opts BuildOptions) (string, error) {
	outputPath := opts.OutputPath
	if outputPath == "" {
		outDir := root
		switch {
		case project.OutputDir != "":
			// Project file paths resolve against the repository root
			outDir = project.OutputDir
			if !filepath.IsAbs(outDir) {
				outDir = filepath.Join(root, outDir)
			}
		case opts.OutputDir != "":
			outDir = opts.OutputDir
		}
		if outDir != root {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return "", fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		outputPath = filepath.Join(outDir, name+ArchiveExt)
	}

	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	return absOutputPath, nil
}

// addDirEntries adds the files of a single repository subdirectory that pass
// the include filter. A missing directory is skipped silently.
func addDirEntries(zw *zip.Writer, root, name, dir string, include func(os.DirEntry) bool) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s directory: %w", dir, err)
	}

	var added []string
	for _, entry := range entries {
		if !include(entry) {
			continue
		}

		zipPath := path.Join(name, dir, entry.Name())
		srcPath := filepath.Join(root, dir, entry.Name())
		if err := addArchiveEntry(zw, srcPath, zipPath); err != nil {
			return nil, err
		}
		added = append(added, zipPath)
	}

	return added, nil
}

// addArchiveEntry writes a single file into the archive at zipPath using
// Deflate compression and the source file's mode bits.
func addArchiveEntry(zw *zip.Writer, srcPath, zipPath string) error {
	fileData, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", srcPath, err)
	}

	fileInfo, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	header, err := zip.FileInfoHeader(fileInfo)
	if err != nil {
		return fmt.Errorf("failed to create file header: %w", err)
	}
	header.Name = zipPath
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create archive entry: %w", err)
	}

	if _, err := writer.Write(fileData); err != nil {
		return fmt.Errorf("failed to write file data: %w", err)
	}

	return nil
}
