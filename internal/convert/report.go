package convert

import (
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/links"
	"github.com/thoreinstein/claude2gemini/internal/paths"
	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
)

// Failure kinds recorded in a Report.
const (
	KindAgent    = "agent"
	KindWorkflow = "workflow"
	KindSkill    = "skill"
)

// Report summarizes a conversion run.
type Report struct {
	Input    string        `toml:"input"`
	Output   string        `toml:"output"`
	Mode     Mode          `toml:"mode"`
	Skills   []SkillReport `toml:"skills"`
	Failures []Failure     `toml:"failures"`
	Links    links.Result  `toml:"links"`

	errs *multierror.Error
}

// SkillReport is the outcome for one written skill.
type SkillReport struct {
	Name      string   `toml:"name"`
	Dir       string   `toml:"dir"`
	Skipped   bool     `toml:"skipped"`
	Agents    int      `toml:"agents"`
	Workflows int      `toml:"workflows"`
	Files     []string `toml:"files"`
	Rejected  []string `toml:"rejected,omitempty"`
}

// Failure is an entity that was skipped.
type Failure struct {
	Kind  string `toml:"kind"`
	Path  string `toml:"path"`
	Error string `toml:"error"`
}

func newReport(input, output string, mode Mode) *Report {
	return &Report{
		Input:    input,
		Output:   output,
		Mode:     mode,
		Skills:   []SkillReport{},
		Failures: []Failure{},
	}
}

// fail records a skipped entity.
func (r *Report) fail(kind, path string, err error) {
	if r == nil {
		return
	}
	r.Failures = append(r.Failures, Failure{Kind: kind, Path: path, Error: err.Error()})
	r.errs = multierror.Append(r.errs, errors.Wrapf(err, "%s %s", kind, path))
}

// Err returns the combined per-entity failures, or nil if there were none.
func (r *Report) Err() error {
	if r == nil {
		return nil
	}
	return r.errs.ErrorOrNil()
}

// WriteTOML writes the report to path, creating parent directories.
func (r *Report) WriteTOML(path string) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := fileutil.AtomicWriteTOML(path, r); err != nil {
		return errors.Wrapf(err, "writing report %s", path)
	}
	return nil
}

