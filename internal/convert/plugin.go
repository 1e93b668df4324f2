package convert

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/thoreinstein/claude2gemini/internal/ai"
	"github.com/thoreinstein/claude2gemini/internal/analyzer"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/paths"
	"github.com/thoreinstein/claude2gemini/internal/platform/claude"
	"github.com/thoreinstein/claude2gemini/internal/platform/gemini"
	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
)

// ConvertPlugin merges the input plugin into a single skill and writes it.
// A failed tree analysis is fatal.
func (c *Converter) ConvertPlugin(ctx context.Context, report *Report) error {
	c.Logger.Info("Analyzing plugin structure", "path", c.Input)

	tree, err := analyzer.GenerateTree(c.Input)
	if err != nil {
		return errors.Wrap(err, "scanning input")
	}

	analysis, err := c.Analyzer.AnalyzeTree(ctx, tree, c.Input)
	if err != nil {
		return errors.Wrap(err, "analyzing plugin structure")
	}
	if analysis == nil {
		analysis = &analyzer.Analysis{}
	}
	analysis.Normalize(c.Input)
	c.Logger.Info("Identified plugin contents", "agents", len(analysis.Agents), "workflows", len(analysis.Skills))

	manifest, err := claude.LoadManifest(c.Input)
	if err != nil {
		c.Logger.Warn("ignoring unreadable plugin manifest", "error", err)
		manifest = nil
	}

	skill, agents, workflows := c.MergePlugin(ctx, analysis, manifest, report)

	c.Logger.Info("Writing skill", "name", skill.Name, "output", c.Output)
	if err := c.write(skill, report, agents, workflows); err != nil {
		return errors.Wrapf(err, "writing skill %s", skill.Name)
	}
	return nil
}

// MergePlugin builds the merged skill from an analysis. Agents become
// persona sections, skills become workflow references. Entities that cannot
// be read are recorded in report and skipped. It returns the skill and the
// number of agents and workflows merged.
func (c *Converter) MergePlugin(ctx context.Context, analysis *analyzer.Analysis, manifest *claude.Manifest, report *Report) (*gemini.Skill, int, int) {
	rawName := filepath.Base(c.Input)
	description := ""
	if manifest != nil {
		if manifest.Name != "" {
			rawName = manifest.Name
		}
		description = manifest.Description
	}
	name := NormalizeName(rawName)
	if description == "" {
		description = "Converted capability bundle for " + name
	}

	skill := gemini.NewSkill(name, description)

	var (
		personas       []RegistryEntry
		workflows      []RegistryEntry
		personaContent strings.Builder
	)

	for _, path := range analysis.Agents {
		c.Logger.Info("Processing agent", "file", filepath.Base(path))

		agent, err := claude.LoadAgent(path)
		if err != nil {
			c.Logger.Error("failed to merge agent", "file", filepath.Base(path), "error", err)
			report.fail(KindAgent, path, err)
			continue
		}

		refined := c.refine(ctx, ai.PersonaInstruction(agent.Name), agent.Prompt)
		content := stripPersonaHeading(strings.TrimSpace(refined.Content), agent.Name)

		desc := agent.Description
		if desc == "" {
			desc = defaultPersonaDescription
		}
		personas = append(personas, RegistryEntry{Name: agent.Name, Description: desc})
		personaContent.WriteString(personaSection(agent.Name, content))

		collectExtracted(refined.ExtractedFiles, skill)
		skill.AllowedTools.Add(agent.Tools...)
	}

	for _, entry := range analysis.Skills {
		c.Logger.Info("Processing workflow", "file", filepath.Base(entry.Path))

		wf, err := claude.LoadWorkflow(entry.Path)
		if err != nil {
			c.Logger.Error("failed to process workflow", "file", filepath.Base(entry.Path), "error", err)
			report.fail(KindWorkflow, entry.Path, err)
			continue
		}
		wfName := NormalizeName(wf.Name)

		if entry.Nested {
			copies, err := nestedAssets(wf.Path, wfName)
			if err != nil {
				c.Logger.Error("failed to process workflow", "file", filepath.Base(entry.Path), "error", err)
				report.fail(KindWorkflow, entry.Path, err)
				continue
			}
			c.Logger.Debug("found workflow assets", "workflow", wfName, "count", len(copies))
			skill.AssetCopies = append(skill.AssetCopies, copies...)
		}

		skill.AddReference(paths.WorkflowReference(wfName), wf.Body)

		desc := wf.Description
		if desc == "" {
			desc = defaultWorkflowDescription
		}
		workflows = append(workflows, RegistryEntry{
			Name:        wfName,
			Description: desc,
			Path:        paths.WorkflowOutputPath(c.Output, name, wfName),
		})
	}

	skill.Instructions = renderInstructions(description, personas, workflows, personaContent.String())
	return skill, len(personas), len(workflows)
}

// nestedAssets lists every file next to a nested workflow, excluding the
// workflow file itself and hidden entries, as copies into assets/<name>/.
func nestedAssets(workflowPath, name string) ([]gemini.AssetCopy, error) {
	self, err := filepath.Abs(workflowPath)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", workflowPath)
	}
	dir := filepath.Dir(self)

	files, err := fileutil.ListFiles(dir, fileutil.ListOptions{SkipHidden: true})
	if err != nil {
		return nil, err
	}

	var copies []gemini.AssetCopy
	for _, f := range files {
		if f == self {
			continue
		}
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", f)
		}
		copies = append(copies, gemini.AssetCopy{
			Source: f,
			Dest:   name + "/" + filepath.ToSlash(rel),
		})
	}
	return copies, nil
}

// stripPersonaHeading drops a leading markdown heading line that only
// titles the persona: the agent name, "Persona", "Persona: <name>" or
// "<name> Agent". Separators in the name match any of '-', '_' or space.
func stripPersonaHeading(content, name string) string {
	first, rest, _ := strings.Cut(content, "\n")
	if !personaHeading(name).MatchString(strings.TrimSpace(first)) {
		return content
	}
	return strings.TrimSpace(rest)
}

func personaHeading(name string) *regexp.Regexp {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	title := `persona`
	if len(parts) > 0 {
		n := strings.Join(parts, `[-_\s]+`)
		title = `(?:persona\s*[:-]?\s*)?` + n + `(?:\s+(?:agent|persona))?|persona`
	}
	return regexp.MustCompile(`(?i)^#+\s*(?:` + title + `)[\s:.-]*$`)
}
