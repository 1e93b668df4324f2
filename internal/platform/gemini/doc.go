// Package gemini models the Gemini skill produced by the converter and
// writes it to disk.
//
// A [Skill] is assembled in memory and flushed once by a [Writer]:
//
//	<output>/<name>/
//	├── SKILL.md              frontmatter (name, description, allowed-tools) + instructions
//	├── assets/               Skill.Assets and Skill.AssetCopies
//	├── references/           Skill.References
//	│   └── workflows/
//	└── scripts/              Skill.Scripts
//
// Existing skill directories are only replaced when the Writer's Force flag
// is set.
package gemini
