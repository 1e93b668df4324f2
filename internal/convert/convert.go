package convert

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/claude2gemini/internal/ai"
	"github.com/thoreinstein/claude2gemini/internal/analyzer"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/links"
	"github.com/thoreinstein/claude2gemini/internal/logging"
	"github.com/thoreinstein/claude2gemini/internal/platform/gemini"
)

// Mode selects how the input is converted.
type Mode string

const (
	// ModePlugin merges the whole input into one skill.
	ModePlugin Mode = "plugin"

	// ModeAgents converts each agent file into its own skill.
	ModeAgents Mode = "agents"
)

// Options configures a Converter.
type Options struct {
	Input  string
	Output string
	Force  bool
	Mode   Mode
}

// Converter runs a conversion.
type Converter struct {
	Input  string
	Output string
	Force  bool
	Mode   Mode

	// Analyzer classifies the plugin tree. New sets it to the AI service.
	Analyzer analyzer.TreeAnalyzer
	AI       ai.Service

	Writer *gemini.Writer
	Links  *links.Reconciler
	Logger *slog.Logger
}

// New creates a Converter. Input and Output are made absolute so registry
// paths in SKILL.md do not depend on the working directory.
func New(opts Options, svc ai.Service, logger *slog.Logger) (*Converter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Input == "" {
		return nil, errors.ErrMissingInput
	}

	input, err := filepath.Abs(opts.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving input %s", opts.Input)
	}
	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving output %s", opts.Output)
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModePlugin
	}

	return &Converter{
		Input:    input,
		Output:   output,
		Force:    opts.Force,
		Mode:     mode,
		Analyzer: svc,
		AI:       svc,
		Writer:   gemini.NewWriter(output, opts.Force, logger),
		Links:    links.NewReconciler(logger),
		Logger:   logger,
	}, nil
}

// Convert runs the conversion selected by Mode. A single markdown file as
// input is always converted in agents mode.
//
// The returned error is fatal to the run. Skipped entities are recorded in
// the Report and available through Report.Err.
func (c *Converter) Convert(ctx context.Context) (*Report, error) {
	kind, err := analyzer.DetermineType(c.Input)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(c.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", c.Input)
	}

	// Agents mode searches the whole tree, so a directory without top-level
	// markers is still acceptable there.
	if kind == analyzer.TypeUnknown && (!info.IsDir() || c.Mode != ModeAgents) {
		return nil, errors.Wrapf(errors.ErrUnknownInput, "%s is not a Claude plugin, skill or agent", c.Input)
	}

	mode := c.Mode
	if !info.IsDir() && mode != ModeAgents {
		c.Logger.Debug("single file input, converting as agent", "path", c.Input)
		mode = ModeAgents
	}

	c.Logger.Debug("detected input", "type", kind, "mode", mode)

	report := newReport(c.Input, c.Output, mode)
	switch mode {
	case ModeAgents:
		err = c.ConvertAgents(ctx, report)
	default:
		err = c.ConvertPlugin(ctx, report)
	}
	if err != nil {
		return report, err
	}

	if n := len(report.Failures); n > 0 {
		c.Logger.Warn("conversion finished with skipped items", "count", n)
	} else {
		c.Logger.Log(ctx, logging.LevelSuccess, "Conversion complete!", "skills", len(report.Skills))
	}
	return report, nil
}

// refine asks the AI service to rewrite body. Any failure degrades to the
// original body with no extracted files.
func (c *Converter) refine(ctx context.Context, instruction, body string) *ai.RefineResult {
	res, err := c.AI.Refine(ctx, instruction, body)
	if err != nil {
		if errors.Is(err, ai.ErrNoCredentials) {
			c.Logger.Warn("AI refinement skipped (no API key)")
		} else {
			c.Logger.Warn("AI refinement failed, keeping original content", "error", err)
		}
		return ai.Passthrough(body)
	}
	if res == nil {
		return ai.Passthrough(body)
	}
	return res
}

// collectExtracted merges extracted files into s by type.
func collectExtracted(files []ai.ExtractedFile, s *gemini.Skill) {
	for _, f := range files {
		if f.Type == ai.FileReference {
			s.AddReference(f.Name, f.Content)
			continue
		}
		s.AddAsset(f.Name, f.Content)
	}
}

// write flushes s and repairs its links. A skipped write leaves the existing
// directory alone.
func (c *Converter) write(s *gemini.Skill, report *Report, agents, workflows int) error {
	res, err := c.Writer.Write(s)
	if err != nil {
		return err
	}

	report.Skills = append(report.Skills, SkillReport{
		Name:      s.Name,
		Dir:       res.Dir,
		Skipped:   res.Skipped,
		Agents:    agents,
		Workflows: workflows,
		Files:     res.Files,
		Rejected:  res.Rejected,
	})
	if res.Skipped {
		return nil
	}

	c.Logger.Debug("fixing internal links", "dir", res.Dir)
	linkResult, err := c.Links.Reconcile(res.Dir)
	if err != nil {
		return errors.Wrap(err, "fixing internal links")
	}
	report.Links.Add(linkResult)
	return nil
}
