// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for skillpack.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"skillpack-cli/internal/config"
	"skillpack-cli/internal/issue"
	"skillpack-cli/internal/logging"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded application configuration, populated by initRootConfig
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "skillpack",
		Short: "Package skill repositories into distributable archives",
		Long: TitleStyle.Render("skillpack") + SubtitleStyle.Render(" - Package skill repositories into distributable archives") + `

skillpack validates and packages skill repositories - directories with a
SKILL.md manifest plus optional references/ and assets/ - into .skill
archives whose internal paths are namespaced under the skill name.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a skill repository with: skillpack init my-skill
  2. Edit SKILL.md and add reference documents under references/
  3. Package it with: skillpack build

` + SubtitleStyle.Render("Examples:") + `
  skillpack build                  Package the current directory
  skillpack build ./my-skill       Package a specific repository
  skillpack validate ./my-skill    Check a repository without packaging
  skillpack info ./my-skill        Show the parsed manifest
  skillpack config show            Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/skillpack/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	var err error
	cfg, err = config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	logging.Setup(verbose, nil)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue renders a catalog issue to stderr using the configured color
// scheme, falling back to the raw markdown if rendering fails.
func renderIssue(id issue.Id) {
	style := "dark"
	if cfg != nil && cfg.UI.ColorScheme != config.ColorSchemeAuto {
		style = string(cfg.UI.ColorScheme)
	}

	i := issue.Get(id)
	rendered, err := i.Render(style)
	if err != nil {
		rendered = string(i.MarkdownMsg())
	}
	fmt.Fprint(os.Stderr, rendered)
}
