package analyzer

import (
	"path/filepath"
)

// Analysis is the result of assigning input files to agents and skills.
type Analysis struct {
	// Agents are paths of agent markdown files.
	Agents []string `json:"agents"`

	// Skills are the skill files found.
	Skills []SkillEntry `json:"skills"`
}

// SkillEntry describes one skill file.
type SkillEntry struct {
	// Nested is true for a skill in its own subdirectory with side files.
	Nested bool `json:"nested"`

	// Path is the path of the skill markdown file.
	Path string `json:"path"`

	// Assets are the side files of a nested skill. The converter recomputes
	// them from disk; this list is informational.
	Assets []string `json:"assets,omitempty"`
}

// Normalize makes every path absolute against root, cleans it and drops
// duplicate agent and skill paths, keeping the first occurrence. Empty paths
// are removed.
func (a *Analysis) Normalize(root string) {
	if a == nil {
		return
	}

	seen := map[string]bool{}
	agents := make([]string, 0, len(a.Agents))
	for _, p := range a.Agents {
		if p == "" {
			continue
		}
		p = absolute(root, p)
		if seen[p] {
			continue
		}
		seen[p] = true
		agents = append(agents, p)
	}
	a.Agents = agents

	seen = map[string]bool{}
	skills := make([]SkillEntry, 0, len(a.Skills))
	for _, s := range a.Skills {
		if s.Path == "" {
			continue
		}
		s.Path = absolute(root, s.Path)
		if seen[s.Path] {
			continue
		}
		seen[s.Path] = true
		for i, asset := range s.Assets {
			s.Assets[i] = absolute(root, asset)
		}
		skills = append(skills, s)
	}
	a.Skills = skills
}

func absolute(root, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
