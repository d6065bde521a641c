// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"skillpack-cli/internal/issue"
	"skillpack-cli/pkg/skill"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	// infoRender renders the manifest body as styled markdown
	infoRender bool

	// infoCmd shows the parsed manifest of a skill repository
	infoCmd = &cobra.Command{
		Use:   "info [path]",
		Short: "Show the parsed manifest of a skill repository",
		Long: `Show the parsed SKILL.md manifest of a skill repository: the skill
name, description, version, and optionally the rendered markdown body.

Examples:
  skillpack info
  skillpack info ./my-skill
  skillpack info ./my-skill --render`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInfo,
	}
)

func init() {
	infoCmd.Flags().BoolVar(&infoRender, "render", false, "render the manifest body as styled markdown")
}

func runInfo(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	s, err := skill.Load(root)
	if err != nil {
		if errors.Is(err, skill.ErrManifestMissing) {
			renderIssue(issue.ManifestNotFoundId)
			return &ExitError{Code: 1, Err: err}
		}
		return err
	}

	fmt.Println(sectionTitleStyle.Render("Skill Info"))
	fmt.Printf("%s: %s\n", CmdStyle.Render("Name"), s.Name)
	fmt.Printf("%s: %s\n", CmdStyle.Render("Description"), s.Manifest.Description)
	if s.Manifest.Version != "" {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Version"), s.Manifest.Version)
	}
	fmt.Printf("%s: %s\n", CmdStyle.Render("Manifest"), pathStyle.Render(s.ManifestPath))

	if !infoRender || s.Manifest.Body == "" {
		return nil
	}

	fmt.Println()
	rendered, err := glamour.Render(s.Manifest.Body, "dark")
	if err != nil {
		// Fall back to the raw body if rendering fails
		fmt.Println(s.Manifest.Body)
		return nil
	}
	fmt.Print(rendered)

	return nil
}
