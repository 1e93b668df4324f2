package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used for the configuration directory and file names.
const AppName = "claude2gemini"

// Source layout names found in a Claude plugin or skill directory.
const (
	// SkillFile marks a directory as a skill.
	SkillFile = "SKILL.md"

	// ManifestFile is the plugin manifest file name.
	ManifestFile = "plugin.json"

	// ManifestDir is the directory that may hold the plugin manifest.
	ManifestDir = ".claude-plugin"

	// AgentsDir holds agent markdown files in a plugin.
	AgentsDir = "agents"

	// SkillsDir holds skill directories in a plugin.
	SkillsDir = "skills"
)

// Target layout names inside a generated Gemini skill directory.
const (
	AssetsDir     = "assets"
	ReferencesDir = "references"
	WorkflowsDir  = "workflows"
	ScriptsDir    = "scripts"
)

// DefaultOutputDir is the output directory used when none is configured.
const DefaultOutputDir = "../.gemini/skills"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory searched for the user config file.
// Returns: <ConfigHome>/claude2gemini/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ManifestPaths returns the candidate plugin manifest locations under root,
// in lookup order.
func ManifestPaths(root string) []string {
	return []string{
		filepath.Join(root, ManifestFile),
		filepath.Join(root, ManifestDir, ManifestFile),
	}
}

// SkillOutputDir returns the directory a skill named name is written to.
func SkillOutputDir(outputDir, name string) string {
	return filepath.Join(outputDir, name)
}

// WorkflowReference returns the slash-separated key of a workflow body
// inside a skill's references map.
func WorkflowReference(name string) string {
	return WorkflowsDir + "/" + name + ".md"
}

// WorkflowOutputPath returns the absolute location a workflow body is
// written to inside the skill directory.
func WorkflowOutputPath(outputDir, skillName, workflowName string) string {
	return filepath.Join(SkillOutputDir(outputDir, skillName), ReferencesDir, WorkflowsDir, workflowName+".md")
}
