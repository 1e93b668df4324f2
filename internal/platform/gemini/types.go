package gemini

import (
	"slices"
	"strings"
)

// ToolList is the allowed-tools list of a Gemini skill.
type ToolList []string

// Add appends tools that are not already present, keeping first-seen order.
func (t *ToolList) Add(tools ...string) {
	for _, tool := range tools {
		tool = strings.TrimSpace(tool)
		if tool == "" || slices.Contains(*t, tool) {
			continue
		}
		*t = append(*t, tool)
	}
}

// String returns the space-delimited string representation.
func (t ToolList) String() string {
	return strings.Join(t, " ")
}

// Skill is a Gemini skill aggregate built in memory and flushed once by a
// Writer. The Scripts, References and Assets maps are keyed by
// slash-separated paths relative to the directory of the same name; a later
// entry for the same key replaces an earlier one.
type Skill struct {
	// Name is the skill directory name and the frontmatter name (required).
	Name string `yaml:"name"`

	// Description explains what the skill does (required).
	Description string `yaml:"description"`

	// AllowedTools lists the tools the skill may use.
	AllowedTools ToolList `yaml:"-"`

	// Instructions is the SKILL.md body (required).
	Instructions string `yaml:"-"`

	Scripts    map[string]string `yaml:"-"`
	References map[string]string `yaml:"-"`
	Assets     map[string]string `yaml:"-"`

	// AssetCopies are files copied verbatim into assets/.
	AssetCopies []AssetCopy `yaml:"-"`
}

// AssetCopy copies Source byte for byte to Dest, a slash-separated path
// relative to the skill's assets directory.
type AssetCopy struct {
	Source string
	Dest   string
}

// NewSkill returns a Skill with initialized maps.
func NewSkill(name, description string) *Skill {
	return &Skill{
		Name:        name,
		Description: description,
		Scripts:     map[string]string{},
		References:  map[string]string{},
		Assets:      map[string]string{},
	}
}

// AddScript stores content under scripts/<key>.
func (s *Skill) AddScript(key, content string) {
	if s.Scripts == nil {
		s.Scripts = map[string]string{}
	}
	s.Scripts[key] = content
}

// AddReference stores content under references/<key>.
func (s *Skill) AddReference(key, content string) {
	if s.References == nil {
		s.References = map[string]string{}
	}
	s.References[key] = content
}

// AddAsset stores content under assets/<key>.
func (s *Skill) AddAsset(key, content string) {
	if s.Assets == nil {
		s.Assets = map[string]string{}
	}
	s.Assets[key] = content
}
