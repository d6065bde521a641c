// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputDir is returned when an output dir value is whitespace-only.
	ErrInvalidOutputDir = errors.New("invalid output directory")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects "auto", "dark", or "light"
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output by default
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		// OutputDir is the default directory archives are written to.
		// Empty means "the skill repository root".
		OutputDir string `json:"output_dir" mapstructure:"output_dir"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be one of: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the ColorScheme is one of the recognized values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	}
	return false
}

// Validate checks all config fields and returns the first problem found.
func (c *Config) Validate() error {
	if !c.UI.ColorScheme.IsValid() {
		return &InvalidColorSchemeError{Value: c.UI.ColorScheme}
	}
	if c.OutputDir != "" && strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: value must not be whitespace-only", ErrInvalidOutputDir)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
