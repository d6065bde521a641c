// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestNotFoundId Id = iota + 1
	ManifestParseErrorId
	SkillInvalidId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No SKILL.md found!

Every skill repository needs a SKILL.md manifest at its root; packaging
stops before any archive is written when it is missing.

## Things you can try:
- Scaffold a new skill repository in place:
~~~
$ skillpack init my-skill
~~~

- Or check that you are running from the repository root:
~~~
$ cd /path/to/your/skill
$ skillpack build
~~~

## Minimal SKILL.md structure:
~~~markdown
---
name: my-skill
description: What this skill helps with
---

Instructions for using this skill go here.
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse SKILL.md!

The manifest must start with a YAML frontmatter block delimited by "---"
lines, followed by a markdown body.

## Common issues:
- Missing opening or closing "---" delimiter
- Invalid YAML in the frontmatter (bad indentation, unquoted colons)
- Missing required fields (name, description)

## Example of a valid manifest:
~~~markdown
---
name: django-best-practices
description: Conventions and snippets for Django projects
version: "1.0"
---

Use this skill when reviewing Django code.
~~~`,
	}

	skillInvalidIssue = &Issue{
		id: SkillInvalidId,
		mdMsg: `
# Skill repository is invalid!

The repository failed one or more validation checks.

## Things you can try:
- See every problem at once:
~~~
$ skillpack validate
~~~

- Check the skill name: it must start with a lowercase letter and contain
  only lowercase alphanumerics with hyphen-separated segments
  (e.g., ` + "`django-best-practices`" + `)
- Make sure references/ and assets/ are directories, not files`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the skillpack configuration file.

## Configuration file locations:
- Linux: ~/.config/skillpack/config.cue
- macOS: ~/Library/Application Support/skillpack/config.cue
- Windows: %APPDATA%\skillpack\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ skillpack config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
output_dir: "dist"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():   manifestNotFoundIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		skillInvalidIssue.Id():       skillInvalidIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
