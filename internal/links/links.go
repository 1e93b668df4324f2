package links

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
)

// RemovedSuffix is appended to the label of a link with no repair candidate.
const RemovedSuffix = " (link removed)"

var (
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)
	titlePattern  = regexp.MustCompile(`^(\S+)(\s+(?:"[^"]*"|'[^']*'))$`)
)

// Result summarizes a Reconcile run.
type Result struct {
	FilesScanned int `toml:"files_scanned"`
	FilesChanged int `toml:"files_changed"`
	Fixed        int `toml:"fixed"`
	Removed      int `toml:"removed"`
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.FilesScanned += other.FilesScanned
	r.FilesChanged += other.FilesChanged
	r.Fixed += other.Fixed
	r.Removed += other.Removed
}

// Reconciler rewrites broken relative links in markdown files.
type Reconciler struct {
	Logger *slog.Logger
}

// NewReconciler creates a Reconciler. A nil logger uses slog.Default.
func NewReconciler(logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{Logger: logger}
}

// Reconcile repairs the links of every *.md file under root. Only files with
// changes are rewritten.
func (r *Reconciler) Reconcile(root string) (Result, error) {
	var result Result

	files, err := fileutil.ListFiles(root, fileutil.ListOptions{})
	if err != nil {
		return result, err
	}

	for _, file := range files {
		if !strings.EqualFold(filepath.Ext(file), ".md") {
			continue
		}
		result.FilesScanned++

		fixed, removed, err := r.reconcileFile(file, files)
		if err != nil {
			return result, err
		}
		if fixed+removed > 0 {
			result.FilesChanged++
			result.Fixed += fixed
			result.Removed += removed
		}
	}

	return result, nil
}

func (r *Reconciler) reconcileFile(file string, candidates []string) (fixed, removed int, err error) {
	info, err := os.Stat(file)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "reading %s", file)
	}
	data, err := fileutil.ReadFileWithLimit(file)
	if err != nil {
		return 0, 0, err
	}

	dir := filepath.Dir(file)
	content := linkPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		sub := linkPattern.FindStringSubmatch(match)
		label, target := sub[1], strings.TrimSpace(sub[2])

		var title string
		if m := titlePattern.FindStringSubmatch(target); m != nil {
			target, title = m[1], m[2]
		}

		if skipTarget(target) {
			return match
		}

		pathPart, suffix := splitTarget(target)
		if pathPart == "" {
			return match
		}

		resolved := filepath.FromSlash(pathPart)
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		if _, err := os.Stat(resolved); err == nil {
			return match
		}

		r.Logger.Warn("broken link", "file", filepath.Base(file), "target", target)

		if found := findByBase(candidates, filepath.Base(resolved)); found != "" {
			if rel, err := filepath.Rel(dir, found); err == nil {
				rel = filepath.ToSlash(rel)
				r.Logger.Debug("fixed link", "file", filepath.Base(file), "target", rel)
				fixed++
				return "[" + label + "](" + rel + suffix + title + ")"
			}
		}

		r.Logger.Warn("removed link", "file", filepath.Base(file), "target", filepath.Base(resolved))
		removed++
		return label + RemovedSuffix
	})

	if fixed+removed == 0 {
		return 0, 0, nil
	}
	if err := fileutil.AtomicWriteFile(file, []byte(content), info.Mode().Perm()); err != nil {
		return 0, 0, errors.Wrapf(err, "writing %s", file)
	}
	return fixed, removed, nil
}

// skipTarget reports whether target is external or an in-page anchor.
func skipTarget(target string) bool {
	lower := strings.ToLower(target)
	switch {
	case strings.HasPrefix(lower, "#"),
		strings.HasPrefix(lower, "mailto:"),
		strings.HasPrefix(lower, "http:"),
		strings.HasPrefix(lower, "https:"):
		return true
	}
	return schemePattern.MatchString(target)
}

// splitTarget separates the path of target from a trailing ?query or
// #fragment.
func splitTarget(target string) (path, suffix string) {
	if idx := strings.IndexAny(target, "?#"); idx >= 0 {
		return target[:idx], target[idx:]
	}
	return target, ""
}

func findByBase(files []string, base string) string {
	for _, f := range files {
		if filepath.Base(f) == base {
			return f
		}
	}
	return ""
}
