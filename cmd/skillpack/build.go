// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"skillpack-cli/internal/issue"
	"skillpack-cli/internal/logging"
	"skillpack-cli/pkg/skill"

	"github.com/spf13/cobra"
)

var (
	// buildOutput is the explicit archive output path
	buildOutput string
	// buildName overrides the skill name from the manifest
	buildName string

	// buildCmd packages a skill repository into a .skill archive
	buildCmd = &cobra.Command{
		Use:   "build [path]",
		Short: "Package a skill repository into a .skill archive",
		Long: `Package a skill repository into a distributable .skill archive.

The repository must contain a SKILL.md manifest at its root. The archive
contains, namespaced under the skill name:
  - SKILL.md (always)
  - references/*.md (markdown files only, non-recursive)
  - assets/* (regular files only, non-recursive)

The skill name comes from the manifest frontmatter, falling back to the
repository directory name. Override it with --name or via ` + CmdStyle.Render("skillpack.toml") + `.

Examples:
  skillpack build
  skillpack build ./my-skill
  skillpack build ./my-skill --output ./dist/my-skill.skill
  skillpack build --name renamed-skill`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output path for the archive (default: <root>/<name>.skill)")
	buildCmd.Flags().StringVarP(&buildName, "name", "n", "", "override the skill name")
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	fmt.Println(sectionTitleStyle.Render("Build Skill Archive"))

	opts := skill.BuildOptions{
		OutputPath: buildOutput,
		Name:       buildName,
	}
	if cfg != nil {
		opts.OutputDir = cfg.OutputDir
	}

	logging.Debug("building archive", "root", root, "output", buildOutput, "name", buildName)

	result, err := skill.BuildArchive(root, opts)
	if err != nil {
		if errors.Is(err, skill.ErrManifestMissing) {
			renderIssue(issue.ManifestNotFoundId)
			return &ExitError{Code: 1, Err: err}
		}
		return fmt.Errorf("failed to build archive: %w", err)
	}

	if result.ManifestParseErr != nil {
		renderIssue(issue.ManifestParseErrorId)
	}
	for _, warning := range result.Warnings {
		fmt.Printf("%s %s\n", warningIcon, warning)
	}

	fmt.Printf("%s Name: %s\n", infoIcon, CmdStyle.Render(result.Name))
	fmt.Println()

	for _, entry := range result.Entries {
		fmt.Printf("%s %s\n", successIcon, entry)
	}

	fmt.Println()
	fmt.Printf("%s Archive built successfully\n", successIcon)
	fmt.Printf("%s Output: %s\n", infoIcon, pathStyle.Render(result.ArchivePath))
	fmt.Printf("%s Size: %s (%d entries)\n", infoIcon, formatFileSize(result.Size), len(result.Entries))

	return nil
}

// formatFileSize formats a file size in bytes to a human-readable string
func formatFileSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GB))
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(MB))
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
