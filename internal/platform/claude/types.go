package claude

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ToolList is a list of tool names.
// It unmarshals from a YAML list or from a single string delimited by commas
// or whitespace. Delimiters inside parentheses are kept, so permission
// patterns such as "Bash(git status:*)" survive as one entry.
type ToolList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *ToolList) UnmarshalYAML(value *yaml.Node) error {
	var multi []string
	if err := value.Decode(&multi); err == nil {
		*t = nil
		for _, tool := range multi {
			if tool = strings.TrimSpace(tool); tool != "" {
				*t = append(*t, tool)
			}
		}
		return nil
	}

	var single string
	if err := value.Decode(&single); err == nil {
		*t = ParseToolList(single)
		return nil
	}

	return errors.Newf("tools must be a string or list of strings, got %s", value.Tag)
}

// ParseToolList splits a delimited tool string.
func ParseToolList(s string) ToolList {
	var (
		tools ToolList
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if tool := strings.TrimSpace(cur.String()); tool != "" {
			tools = append(tools, tool)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && (r == ',' || r == ' ' || r == '\t' || r == '\n'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return tools
}

// String returns the space-delimited string representation.
func (t ToolList) String() string {
	return strings.Join(t, " ")
}

// Manifest is the plugin.json of a Claude plugin.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`

	// Path is the manifest file the values were read from.
	Path string `json:"-"`
}

// Agent represents a Claude agent definition.
// Agents are markdown files whose frontmatter names the agent and whose body
// is the system prompt.
type Agent struct {
	// Name is the agent's identifier, from frontmatter or the file name.
	Name string `yaml:"name"`

	// Description explains the agent's purpose.
	Description string `yaml:"description,omitempty"`

	// Tools lists the tools the agent may use.
	Tools ToolList `yaml:"tools,omitempty"`

	// Model is the model the agent prefers, if any.
	Model string `yaml:"model,omitempty"`

	// Prompt is the markdown body after the frontmatter.
	Prompt string `yaml:"-"`

	// Path is the absolute path of the source file.
	Path string `yaml:"-"`
}

// Workflow represents a Claude skill definition converted into a workflow
// reference of a Gemini skill.
type Workflow struct {
	// Name is the workflow identifier before normalization.
	Name string `yaml:"name"`

	// Description explains what the workflow does.
	Description string `yaml:"description,omitempty"`

	// AllowedTools lists tool permissions declared by the skill.
	AllowedTools ToolList `yaml:"allowed-tools,omitempty"`

	// Body is the markdown body, kept verbatim.
	Body string `yaml:"-"`

	// Path is the absolute path of the source file.
	Path string `yaml:"-"`

	// Nested reports whether the workflow lives in its own directory with
	// side files.
	Nested bool `yaml:"-"`

	// Assets are the absolute paths of the side files of a nested workflow.
	Assets []string `yaml:"-"`
}
