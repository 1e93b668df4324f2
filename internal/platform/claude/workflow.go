package claude

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/claude2gemini/pkg/frontmatter"
)

// LoadWorkflow reads and parses the skill file at path.
// Returns ErrWorkflowNotFound if the file doesn't exist.
func LoadWorkflow(path string) (*Workflow, error) {
	data, err := readSource(path, ErrWorkflowNotFound)
	if err != nil {
		return nil, err
	}
	return ParseWorkflow(data, path), nil
}

// ParseWorkflow parses skill markdown into a Workflow. The name comes from
// frontmatter or the file name; a skill named SKILL takes the name of its
// directory instead. The body is kept verbatim.
func ParseWorkflow(data []byte, path string) *Workflow {
	doc := frontmatter.Parse(data)

	wf := &Workflow{}
	if err := doc.Decode(wf); err != nil {
		wf = &Workflow{
			Name:        doc.String("name"),
			Description: doc.String("description"),
		}
	}

	wf.Name = strings.TrimSpace(wf.Name)
	wf.Description = strings.TrimSpace(wf.Description)
	if wf.Name == "" {
		wf.Name = baseName(path)
	}
	if strings.EqualFold(wf.Name, "SKILL") {
		wf.Name = filepath.Base(filepath.Dir(path))
	}
	wf.Body = doc.Body
	wf.Path = path
	return wf
}

// IsSkillFile reports whether path names a SKILL.md file.
func IsSkillFile(path string) bool {
	return strings.EqualFold(filepath.Base(path), "SKILL.md")
}

// IsNotFound reports whether err came from a missing source document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAgentNotFound) || errors.Is(err, ErrWorkflowNotFound)
}
