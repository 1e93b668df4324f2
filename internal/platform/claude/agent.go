package claude

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
	"github.com/thoreinstein/claude2gemini/pkg/frontmatter"
)

// Sentinel errors for source documents.
var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// LoadAgent reads and parses the agent file at path.
// Returns ErrAgentNotFound if the file doesn't exist.
func LoadAgent(path string) (*Agent, error) {
	data, err := readSource(path, ErrAgentNotFound)
	if err != nil {
		return nil, err
	}
	agent, err := ParseAgent(data, path)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing agent %q", path)
	}
	return agent, nil
}

// ParseAgent parses agent markdown. Frontmatter that is absent or malformed
// leaves every metadata field empty and the whole text as the prompt.
// The name falls back to the file name without extension.
func ParseAgent(data []byte, path string) (*Agent, error) {
	doc := frontmatter.Parse(data)

	agent := &Agent{}
	if err := doc.Decode(agent); err != nil {
		// Metadata parsed as YAML but does not fit the agent shape
		// (e.g. tools is a mapping). Keep the string fields.
		agent = &Agent{
			Name:        doc.String("name"),
			Description: doc.String("description"),
			Model:       doc.String("model"),
		}
	}

	agent.Name = strings.TrimSpace(agent.Name)
	agent.Description = strings.TrimSpace(agent.Description)
	if agent.Name == "" {
		agent.Name = baseName(path)
	}
	agent.Prompt = doc.Body
	agent.Path = path
	return agent, nil
}

// readSource reads a source markdown file, mapping a missing file to
// notFound.
func readSource(path string, notFound error) ([]byte, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(notFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
