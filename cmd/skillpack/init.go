// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"skillpack-cli/pkg/skill"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd scaffolds a new skill repository
	initCmd = &cobra.Command{
		Use:   "init [name]",
		Short: "Create a new skill repository",
		Long: `Create a new skill repository with a starter SKILL.md manifest
and empty references/ and assets/ directories.

With a name argument, a new directory of that name is created. Without one,
the current directory is initialized and the skill is named after it.

Examples:
  skillpack init my-skill
  skillpack init django-best-practices
  skillpack init`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing SKILL.md")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	var name string

	if len(args) > 0 {
		name = args[0]
		dir = name
	} else {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		name = filepath.Base(abs)
	}

	if err := skill.ValidateName(name); err != nil {
		return err
	}

	manifestPath := filepath.Join(dir, skill.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil && !initForce {
		return fmt.Errorf("'%s' already exists. Use --force to overwrite", manifestPath)
	}

	for _, sub := range []string{skill.ReferencesDir, skill.AssetsDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", sub, err)
		}
	}

	if err := os.WriteFile(manifestPath, []byte(generateManifest(name)), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	absPath, _ := filepath.Abs(dir)
	fmt.Printf("%s Created skill repository at %s\n", successIcon, pathStyle.Render(absPath))
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit SKILL.md to describe your skill")
	fmt.Println("  2. Add markdown reference documents under references/")
	fmt.Println("  3. Run '" + CmdStyle.Render("skillpack build "+dir) + "' to package it")

	return nil
}

// generateManifest returns a starter SKILL.md for a new repository.
func generateManifest(name string) string {
	return fmt.Sprintf(`---
name: %s
description: Describe what this skill helps with
---

# %s

Explain when and how this skill should be used.

## Guidelines

Add the instructions that make up this skill here. Longer supporting
documents belong in references/ as separate markdown files.
`, name, name)
}
