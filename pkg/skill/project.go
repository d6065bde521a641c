// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ProjectFileName is the optional per-repository build options file.
const ProjectFileName = "skillpack.toml"

// ProjectOptions holds per-repository build options read from skillpack.toml.
// All fields are optional; the zero value means "use defaults".
type ProjectOptions struct {
	// Name overrides the skill name from the manifest.
	Name string `toml:"name"`
	// OutputDir is where the archive is written, relative to the repository
	// root unless absolute.
	OutputDir string `toml:"output_dir"`
}

// LoadProjectOptions reads skillpack.toml from the repository root.
// A missing file yields zero options, not an error.
func LoadProjectOptions(root string) (*ProjectOptions, error) {
	path := filepath.Join(root, ProjectFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ProjectOptions{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ProjectFileName, err)
	}

	var opts ProjectOptions
	if err := toml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	if opts.Name != "" {
		if err := ValidateName(opts.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", ProjectFileName, err)
		}
	}

	return &opts, nil
}
