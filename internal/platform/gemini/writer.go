package gemini

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/paths"
	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
	"github.com/thoreinstein/claude2gemini/pkg/frontmatter"
)

// SkillFileName is the name of the skill definition file.
const SkillFileName = paths.SkillFile

// ErrInvalidSkill is matched by errors returned for skills that fail Validate.
var ErrInvalidSkill = errors.New("invalid skill")

// WriteResult describes what Write did.
type WriteResult struct {
	// Dir is the skill directory.
	Dir string

	// Skipped is true when Dir already existed and Force was not set.
	Skipped bool

	// Files are the written files, relative to Dir, slash-separated.
	Files []string

	// Rejected are map keys that did not name a path inside their directory.
	Rejected []string
}

// Writer flushes Skill aggregates to disk under OutputDir.
type Writer struct {
	// OutputDir is the directory each skill directory is created in.
	OutputDir string

	// Force replaces an existing skill directory.
	Force bool

	Logger *slog.Logger
}

// NewWriter creates a Writer.
func NewWriter(outputDir string, force bool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{OutputDir: outputDir, Force: force, Logger: logger}
}

// Write materializes s as <OutputDir>/<name>/.
//
// An existing directory is left untouched unless Force is set, in which case
// it is removed first so the result contains only the new output. The
// subdirectories assets/, references/, references/workflows/ and scripts/
// are always created.
func (w *Writer) Write(s *Skill) (*WriteResult, error) {
	if errs := Validate(s); errs != nil {
		merr := &multierror.Error{Errors: errs}
		return nil, errors.Mark(errors.Wrap(merr, "validating skill"), ErrInvalidSkill)
	}

	dir := paths.SkillOutputDir(w.OutputDir, s.Name)
	result := &WriteResult{Dir: dir}

	if _, err := os.Stat(dir); err == nil {
		if !w.Force {
			w.Logger.Warn("Directory exists. Use --force to overwrite.", "path", dir)
			result.Skipped = true
			return result, nil
		}
		w.Logger.Debug("removing existing skill directory", "path", dir)
		if err := os.RemoveAll(dir); err != nil {
			return nil, errors.Wrapf(err, "removing %s", dir)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dir)
	}

	for _, sub := range []string{
		paths.AssetsDir,
		paths.ReferencesDir,
		filepath.Join(paths.ReferencesDir, paths.WorkflowsDir),
		paths.ScriptsDir,
	} {
		if err := paths.EnsureDir(filepath.Join(dir, sub), 0); err != nil {
			return nil, errors.Wrapf(err, "creating %s", sub)
		}
	}

	content, err := formatSkillFile(s)
	if err != nil {
		return nil, errors.Wrap(err, "formatting skill file")
	}
	if err := fileutil.AtomicWriteFile(filepath.Join(dir, SkillFileName), content, 0o644); err != nil {
		return nil, errors.Wrap(err, "writing skill file")
	}
	result.Files = append(result.Files, SkillFileName)

	groups := []struct {
		dir   string
		files map[string]string
		perm  os.FileMode
	}{
		{paths.ScriptsDir, s.Scripts, 0o755},
		{paths.ReferencesDir, s.References, 0o644},
		{paths.AssetsDir, s.Assets, 0o644},
	}
	for _, g := range groups {
		for _, key := range sortedKeys(g.files) {
			rel, ok := localPath(key)
			if !ok {
				w.Logger.Warn("skipping file outside skill directory", "dir", g.dir, "file", key)
				result.Rejected = append(result.Rejected, g.dir+"/"+key)
				continue
			}
			target := filepath.Join(dir, g.dir, rel)
			if err := paths.EnsureDir(filepath.Dir(target), 0); err != nil {
				return nil, errors.Wrapf(err, "creating directory for %s", key)
			}
			if err := fileutil.AtomicWriteFile(target, []byte(g.files[key]), g.perm); err != nil {
				return nil, errors.Wrapf(err, "writing %s/%s", g.dir, key)
			}
			result.Files = append(result.Files, g.dir+"/"+filepath.ToSlash(rel))
		}
	}

	for _, c := range s.AssetCopies {
		rel, ok := localPath(c.Dest)
		if !ok {
			w.Logger.Warn("skipping asset outside skill directory", "file", c.Dest)
			result.Rejected = append(result.Rejected, paths.AssetsDir+"/"+c.Dest)
			continue
		}
		if err := fileutil.CopyFile(c.Source, filepath.Join(dir, paths.AssetsDir, rel)); err != nil {
			return nil, errors.Wrapf(err, "copying asset %s", c.Source)
		}
		result.Files = append(result.Files, paths.AssetsDir+"/"+filepath.ToSlash(rel))
	}

	return result, nil
}

// formatSkillFile renders SKILL.md: a YAML header with name, description and
// allowed-tools followed by the instructions.
func formatSkillFile(s *Skill) ([]byte, error) {
	meta := struct {
		Name         string `yaml:"name"`
		Description  string `yaml:"description"`
		AllowedTools string `yaml:"allowed-tools,omitempty"`
	}{
		Name:         s.Name,
		Description:  s.Description,
		AllowedTools: s.AllowedTools.String(),
	}

	return frontmatter.Format(meta, s.Instructions)
}

// localPath converts a slash-separated key into a local relative path.
func localPath(key string) (string, bool) {
	if key == "" || strings.ContainsRune(key, '\\') {
		return "", false
	}
	rel := filepath.FromSlash(key)
	if !filepath.IsLocal(rel) {
		return "", false
	}
	return rel, true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
