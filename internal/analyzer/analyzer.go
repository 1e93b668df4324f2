package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/paths"
	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
)

// InputType classifies a conversion input.
type InputType string

const (
	// TypePlugin is a plugin directory with a manifest, agents/ or skills/.
	TypePlugin InputType = "plugin"

	// TypeAgent is a single agent file or a directory of loose agent files.
	TypeAgent InputType = "agent"

	// TypeSkill is a skill directory or a markdown file that mentions SKILL.md.
	TypeSkill InputType = "skill"

	// TypeUnknown is anything else.
	TypeUnknown InputType = "unknown"
)

// TreeAnalyzer assigns the files of a rendered tree to agents and skills.
type TreeAnalyzer interface {
	AnalyzeTree(ctx context.Context, tree, root string) (*Analysis, error)
}

// DetermineType classifies root. The checks run in order and the first
// match wins:
//
//  1. a markdown file is a skill when its content mentions SKILL.md, otherwise an agent
//  2. any other file is unknown
//  3. a directory with plugin.json, .claude-plugin/plugin.json, agents/ or skills/ is a plugin
//  4. a directory with SKILL.md is a skill
//  5. a directory with at least one top-level .md file holds agents
//
// Only a missing or unreadable root is an error.
func DetermineType(root string) (InputType, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return TypeUnknown, errors.Wrapf(errors.ErrNotFound, "input %s", root)
		}
		return TypeUnknown, errors.Wrapf(err, "inspecting %s", root)
	}

	if !info.IsDir() {
		if !isMarkdown(root) {
			return TypeUnknown, nil
		}
		data, err := fileutil.ReadFileWithLimit(root)
		if err != nil {
			return TypeUnknown, errors.Wrapf(err, "reading %s", root)
		}
		if strings.Contains(string(data), paths.SkillFile) {
			return TypeSkill, nil
		}
		return TypeAgent, nil
	}

	candidates := append(paths.ManifestPaths(root),
		filepath.Join(root, paths.AgentsDir),
		filepath.Join(root, paths.SkillsDir),
	)
	for _, p := range candidates {
		if exists(p) {
			return TypePlugin, nil
		}
	}

	if exists(filepath.Join(root, paths.SkillFile)) {
		return TypeSkill, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return TypeUnknown, errors.Wrapf(err, "reading %s", root)
	}
	for _, entry := range entries {
		if !entry.IsDir() && isMarkdown(entry.Name()) {
			return TypeAgent, nil
		}
	}

	return TypeUnknown, nil
}

func isMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
