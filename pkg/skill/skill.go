// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// ManifestName is the required manifest file at the repository root.
	ManifestName = "SKILL.md"
	// ReferencesDir is the subdirectory holding reference documents.
	ReferencesDir = "references"
	// AssetsDir is the subdirectory holding arbitrary asset files.
	AssetsDir = "assets"
	// ArchiveExt is the extension of the packaged archive.
	ArchiveExt = ".skill"
	// ReferenceExt is the only extension included from the references directory.
	ReferenceExt = ".md"
)

// ErrManifestMissing is the sentinel error wrapped by ManifestMissingError.
var ErrManifestMissing = errors.New("skill manifest not found")

// skillNameRegex validates skill names used as the archive namespace prefix.
// Must start with a lowercase letter, contain only lowercase alphanumerics,
// with optional single-hyphen-separated segments (e.g., "django-best-practices").
var skillNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ManifestMissingError is returned when a repository has no SKILL.md.
// It wraps ErrManifestMissing for errors.Is() compatibility.
type ManifestMissingError struct {
	// Root is the repository root that was inspected.
	Root string
}

// Error implements the error interface.
func (e *ManifestMissingError) Error() string {
	return fmt.Sprintf("%s not found in %s", ManifestName, e.Root)
}

// Unwrap returns ErrManifestMissing for errors.Is() compatibility.
func (e *ManifestMissingError) Unwrap() error { return ErrManifestMissing }

// ValidationIssue represents a single validation problem in a skill repository
type ValidationIssue struct {
	// Type categorizes the issue (e.g., "structure", "naming", "manifest")
	Type string
	// Message describes the specific problem
	Message string
	// Path is the relative path within the repository where the issue was found (optional)
	Path string
}

// Error implements the error interface for ValidationIssue
func (v ValidationIssue) Error() string {
	if v.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", v.Type, v.Path, v.Message)
	}
	return fmt.Sprintf("[%s] %s", v.Type, v.Message)
}

// ValidationResult contains the result of skill repository validation
type ValidationResult struct {
	// Valid is true if the repository passed all validation checks
	Valid bool
	// Root is the absolute path to the validated repository
	Root string
	// Name is the resolved skill name (frontmatter name, falling back to the directory name)
	Name string
	// ManifestPath is the path to the SKILL.md within the repository
	ManifestPath string
	// Manifest is the parsed manifest, when parsing succeeded
	Manifest *Manifest
	// Issues contains all validation problems found
	Issues []ValidationIssue
}

// AddIssue adds a validation issue to the result
func (r *ValidationResult) AddIssue(issueType, message, path string) {
	r.Issues = append(r.Issues, ValidationIssue{
		Type:    issueType,
		Message: message,
		Path:    path,
	})
	r.Valid = false
}

// Skill represents a validated skill repository
type Skill struct {
	// Root is the absolute path to the repository directory
	Root string
	// Name is the skill name used for the archive namespace
	Name string
	// ManifestPath is the absolute path to the SKILL.md
	ManifestPath string
	// Manifest holds the parsed frontmatter and body
	Manifest *Manifest
}

// ValidateName checks if a skill name is valid.
// Returns nil if valid, or an error describing the problem.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}

	if !skillNameRegex.MatchString(name) {
		return fmt.Errorf("skill name '%s' is invalid: must start with a lowercase letter and contain only lowercase alphanumeric characters, with optional hyphen-separated segments (e.g., 'django-best-practices')", name)
	}

	return nil
}

// Validate performs comprehensive validation of a skill repository at the
// given path. Returns a ValidationResult with all issues found, or an error
// if the path cannot be accessed.
func Validate(root string) (*ValidationResult, error) {
	// Convert to absolute path
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	result := &ValidationResult{
		Valid:  true,
		Root:   absRoot,
		Issues: []ValidationIssue{},
	}

	// Check if path exists
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddIssue("structure", "path does not exist", "")
			return result, nil
		}
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	// Check if it's a directory
	if !info.IsDir() {
		result.AddIssue("structure", "path is not a directory", "")
		return result, nil
	}

	// Check for SKILL.md (required)
	manifestPath := filepath.Join(absRoot, ManifestName)
	manifestInfo, err := os.Stat(manifestPath)
	switch {
	case err != nil && os.IsNotExist(err):
		result.AddIssue("structure", fmt.Sprintf("missing required %s", ManifestName), "")
	case err != nil:
		result.AddIssue("structure", fmt.Sprintf("cannot access %s: %v", ManifestName, err), "")
	case manifestInfo.IsDir():
		result.AddIssue("structure", fmt.Sprintf("%s must be a file, not a directory", ManifestName), "")
	default:
		result.ManifestPath = manifestPath

		manifest, parseErr := ParseManifestFile(manifestPath)
		if parseErr != nil {
			result.AddIssue("manifest", parseErr.Error(), ManifestName)
		} else {
			result.Manifest = manifest
			if manifest.Description == "" {
				result.AddIssue("manifest", "frontmatter is missing a description", ManifestName)
			}
		}
	}

	// Resolve and validate the skill name
	result.Name = resolveName(absRoot, result.Manifest)
	if err := ValidateName(result.Name); err != nil {
		result.AddIssue("naming", err.Error(), "")
	}

	// References and assets directories are optional, but when present they
	// must be directories
	for _, dir := range []string{ReferencesDir, AssetsDir} {
		dirPath := filepath.Join(absRoot, dir)
		dirInfo, err := os.Stat(dirPath)
		if err != nil {
			continue // absent is fine
		}
		if !dirInfo.IsDir() {
			result.AddIssue("structure", fmt.Sprintf("%s must be a directory, not a file", dir), dir)
		}
	}

	return result, nil
}

// Load loads and validates a skill repository at the given path.
// Returns a Skill struct if valid, or an error with validation details.
// A missing manifest is reported as a ManifestMissingError so callers can
// detect the documented precondition failure with errors.Is.
func Load(root string) (*Skill, error) {
	result, err := Validate(root)
	if err != nil {
		return nil, err
	}

	if !result.Valid {
		if result.ManifestPath == "" {
			return nil, &ManifestMissingError{Root: result.Root}
		}

		// Collect all issues into error message
		var msgs []string
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.Error())
		}
		return nil, fmt.Errorf("invalid skill repository: %s", strings.Join(msgs, "; "))
	}

	return &Skill{
		Root:         result.Root,
		Name:         result.Name,
		ManifestPath: result.ManifestPath,
		Manifest:     result.Manifest,
	}, nil
}

// ContainsPath checks if the given path is inside this skill repository.
func (s *Skill) ContainsPath(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	relPath, err := filepath.Rel(s.Root, absPath)
	if err != nil {
		return false
	}

	return !strings.HasPrefix(relPath, "..")
}

// resolveName picks the skill name from the manifest frontmatter, falling
// back to the repository directory name.
func resolveName(absRoot string, manifest *Manifest) string {
	if manifest != nil && manifest.Name != "" {
		return manifest.Name
	}
	return filepath.Base(absRoot)
}
