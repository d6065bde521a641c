// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"skillpack-cli/internal/config"
	"skillpack-cli/internal/issue"

	"github.com/spf13/cobra"
)

// configCmd is the `skillpack config` command tree
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage skillpack configuration",
	Long: `Manage skillpack configuration.

Configuration is stored in:
  - Linux: ~/.config/skillpack/config.cue
  - macOS: ~/Library/Application Support/skillpack/config.cue
  - Windows: %APPDATA%\skillpack\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(loaded))
			return nil
		},
	})
}

func showConfig() error {
	loaded, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	cfgPath, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(cfgPath) {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	if loaded.OutputDir != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("output_dir"), valueStyle.Render(loaded.OutputDir))
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("output_dir"), SubtitleStyle.Render("(repository root)"))
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(string(loaded.UI.ColorScheme)))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}

func initConfig() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Printf("%s Created default configuration at %s\n", successIcon, pathStyle.Render(cfgPath))
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s\n", cfgPath)

	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
