// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest holds the parsed contents of a SKILL.md file: the YAML frontmatter
// fields plus the markdown body that follows it.
type Manifest struct {
	// Name is the skill name used as the archive namespace prefix.
	Name string `yaml:"name"`
	// Description is a short human-readable summary of the skill.
	Description string `yaml:"description"`
	// Version is an optional version string.
	Version string `yaml:"version,omitempty"`

	// Body is the markdown content after the frontmatter block.
	Body string `yaml:"-"`
}

// ParseManifest parses SKILL.md content. The file must start with a YAML
// frontmatter block delimited by "---" lines, followed by a markdown body.
func ParseManifest(data []byte) (*Manifest, error) {
	parts := bytes.SplitN(data, []byte("---"), 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("no YAML frontmatter found or format is incorrect")
	}

	var m Manifest
	if err := yaml.Unmarshal(parts[1], &m); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	m.Body = strings.TrimSpace(string(parts[2]))
	return &m, nil
}

// ParseManifestFile reads and parses the SKILL.md at the given path.
func ParseManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}
