// SPDX-License-Identifier: MPL-2.0

// Package skill provides functionality for working with skill repositories.
//
// A skill repository is a directory containing a SKILL.md manifest plus
// optional references/ and assets/ directories. Repositories are packaged
// into distributable ".skill" archives (standard zip, Deflate) whose internal
// entries are namespaced under the skill name:
//
//	<name>/SKILL.md
//	<name>/references/<file>   (only .md files, non-recursive)
//	<name>/assets/<file>       (any regular file, non-recursive)
//
// Skill naming follows these rules:
//   - Must start with a lowercase letter
//   - Contains only lowercase letters and digits
//   - Segments may be separated by single hyphens (e.g., "django-best-practices")
//
// The manifest is a markdown file with YAML frontmatter carrying the skill
// name, description, and optional version.
package skill
