package convert

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/thoreinstein/claude2gemini/internal/ai"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/platform/claude"
	"github.com/thoreinstein/claude2gemini/internal/platform/gemini"
)

// agentPattern matches agent candidates below the input directory.
const agentPattern = "**/*.md"

// excludedDirs are subtrees never searched for agents.
var excludedDirs = []string{"node_modules", "assets", "references"}

// excludedNames are file names (without extension) that are never agents.
var excludedNames = []string{"readme", "skill"}

// ConvertAgents converts every agent file under the input into its own
// skill. A failure skips that agent only.
func (c *Converter) ConvertAgents(ctx context.Context, report *Report) error {
	c.Logger.Info("Scanning for agents", "path", c.Input)

	files, err := DiscoverAgents(c.Input)
	if err != nil {
		return err
	}
	c.Logger.Info("Found potential agents", "count", len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Logger.Info("Processing agent", "file", filepath.Base(file))

		if err := c.convertAgent(ctx, file, report); err != nil {
			c.Logger.Error("failed to convert agent", "file", filepath.Base(file), "error", err)
			report.fail(KindAgent, file, err)
		}
	}
	return nil
}

func (c *Converter) convertAgent(ctx context.Context, file string, report *Report) error {
	agent, err := claude.LoadAgent(file)
	if err != nil {
		return err
	}

	name := NormalizeName(agent.Name)
	description := agent.Description
	if description == "" {
		description = "Converted agent " + name
	}

	skill := gemini.NewSkill(name, description)
	skill.AllowedTools.Add(agent.Tools...)

	refined := c.refine(ctx, ai.AgentSkillInstruction(name), agent.Prompt)
	skill.Instructions = refined.Content
	collectExtracted(refined.ExtractedFiles, skill)

	if err := c.write(skill, report, 1, 0); err != nil {
		return errors.Wrapf(err, "writing skill %s", name)
	}
	return nil
}

// DiscoverAgents returns the agent files for agents mode in lexical order.
// A file input is its own agent unless it is named readme or skill. For a
// directory, every *.md file below it is a candidate except those under
// node_modules, assets or references and those named readme or skill.
func DiscoverAgents(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", input)
	}
	if !info.IsDir() {
		if excludedAgentPath(filepath.Base(input)) {
			return nil, nil
		}
		return []string{input}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(input), agentPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "searching %s for agents", input)
	}
	slices.Sort(matches)

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if excludedAgentPath(m) {
			continue
		}
		files = append(files, filepath.Join(input, filepath.FromSlash(m)))
	}
	return files, nil
}

// excludedAgentPath reports whether the slash-separated relative path rel
// should not be treated as an agent.
func excludedAgentPath(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, dir := range parts[:len(parts)-1] {
		if slices.Contains(excludedDirs, dir) {
			return true
		}
	}
	base := path.Base(rel)
	stem := strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
	return slices.Contains(excludedNames, stem)
}
