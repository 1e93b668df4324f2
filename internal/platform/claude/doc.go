// Package claude models the Claude configuration documents read by the
// converter: the plugin manifest, agents and skills (called workflows once
// they are folded into a Gemini skill).
//
// Agents and skills are markdown files with optional YAML frontmatter:
//
//	---
//	name: reviewer
//	description: Code review specialist
//	tools: Read, Grep, Glob
//	---
//
//	You are a code review expert...
//
// [LoadAgent] and [LoadWorkflow] never fail on malformed frontmatter; the
// whole file then becomes the body and the name falls back to the file name.
// [LoadManifest] reads plugin.json or .claude-plugin/plugin.json.
package claude
