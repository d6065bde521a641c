// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"skillpack-cli/internal/issue"
	"skillpack-cli/pkg/skill"

	"github.com/spf13/cobra"
)

// validateCmd validates a skill repository without packaging it
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a skill repository",
	Long: `Validate the structure and contents of a skill repository.

Checks performed:
  - SKILL.md exists at the repository root and parses
  - Frontmatter has a description
  - Skill name follows naming conventions
  - references/ and assets/, when present, are directories

Examples:
  skillpack validate
  skillpack validate ./my-skill`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	// Convert to absolute path for display
	absPath, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	fmt.Println(sectionTitleStyle.Render("Skill Validation"))
	fmt.Printf("%s Path: %s\n", infoIcon, pathStyle.Render(absPath))

	result, err := skill.Validate(root)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if result.Name != "" {
		fmt.Printf("%s Name: %s\n", infoIcon, CmdStyle.Render(result.Name))
	}

	fmt.Println()

	if result.Valid {
		fmt.Printf("%s Skill repository is valid\n", successIcon)

		// Show what was checked
		fmt.Println()
		fmt.Printf("%s Structure check passed\n", successIcon)
		fmt.Printf("%s Naming convention check passed\n", successIcon)
		fmt.Printf("%s Manifest parses successfully\n", successIcon)

		return nil
	}

	// Display issues
	fmt.Printf("%s Validation failed with %d issue(s)\n", errorIcon, len(result.Issues))
	fmt.Println()

	for i, iss := range result.Issues {
		issueNum := fmt.Sprintf("%d.", i+1)
		issueType := issueTypeStyle.Render(fmt.Sprintf("[%s]", iss.Type))

		if iss.Path != "" {
			fmt.Printf("%s %s %s %s\n", issueStyle.Render(issueNum), issueType, pathStyle.Render(iss.Path), iss.Message)
		} else {
			fmt.Printf("%s %s %s\n", issueStyle.Render(issueNum), issueType, iss.Message)
		}
	}

	renderIssue(issue.SkillInvalidId)

	return &ExitError{Code: 1, Err: fmt.Errorf("skill repository is invalid")}
}
