// Package paths provides path resolution for the claude2gemini CLI.
//
// It covers two concerns: locating the user configuration directory via
// github.com/adrg/xdg, and the fixed file and directory names of the
// Claude input layout and the Gemini output layout.
//
// # Configuration Directory
//
//	paths.AppConfigDir() // ~/.config/claude2gemini on Linux
//
// # Input Layout
//
//	<plugin>/
//	├── plugin.json or .claude-plugin/plugin.json
//	├── agents/*.md
//	└── skills/<name>/SKILL.md
//
// # Output Layout
//
//	<output>/<skill>/
//	├── SKILL.md
//	├── assets/
//	├── references/
//	│   └── workflows/<workflow>.md
//	└── scripts/
package paths
