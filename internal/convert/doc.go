// Package convert turns a Claude plugin or a set of Claude agents into
// Gemini skills.
//
// In plugin mode the whole input becomes one skill: the directory tree is
// classified by the AI service, every agent is refined into a persona
// section of SKILL.md, and every Claude skill becomes a workflow reference
// under references/workflows/. In agents mode each agent markdown file
// becomes a skill of its own.
//
// Per-entity problems (a missing agent file, a failed refinement, a skill
// that cannot be written) never stop a run. They are logged and recorded in
// the Report returned by Convert.
package convert
