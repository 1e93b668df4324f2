package convert

import (
	"strings"
)

// Default registry descriptions.
const (
	defaultPersonaDescription  = "Agent Persona"
	defaultWorkflowDescription = "Workflow Capability"
)

// RegistryEntry is one row of the persona or workflow table in SKILL.md.
// Path is empty for personas.
type RegistryEntry struct {
	Name        string
	Description string
	Path        string
}

// renderInstructions builds the SKILL.md body of a merged plugin skill.
func renderInstructions(description string, personas, workflows []RegistryEntry, personaContent string) string {
	var b strings.Builder

	b.WriteString(description)
	b.WriteString("\n\n## Persona Registry\n")
	b.WriteString("| Persona | Description |\n")
	b.WriteString("| :--- | :--- |\n")
	for _, p := range personas {
		b.WriteString("| **" + escapeCell(p.Name) + "** | " + escapeCell(p.Description) + " |\n")
	}

	b.WriteString("\n## Workflows Registry\n")
	b.WriteString("| Workflow | Description | Path |\n")
	b.WriteString("| :--- | :--- | :--- |\n")
	for _, w := range workflows {
		b.WriteString("| **" + escapeCell(w.Name) + "** | " + escapeCell(w.Description) + " | " + escapeCell(w.Path) + " |\n")
	}

	b.WriteString("\n> *Note: All workflows are available in the `references/` directory.*\n")
	b.WriteString("\n---\n")
	b.WriteString(personaContent)

	return b.String()
}

// personaSection renders one persona block appended after the registries.
func personaSection(name, content string) string {
	return "\n# Persona: " + name + "\n" + content + "\n---\n"
}

// escapeCell makes s safe inside a markdown table cell: pipes are escaped
// and line breaks collapse to single spaces.
func escapeCell(s string) string {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
