package ai

import (
	"fmt"
	"strings"
)

const analyzeInstructions = `You are an expert file system analyzer.
Your task is to analyze a file tree and categorize files into 'agents' and 'skills' based on specific rules.
Ignore 'commands' folders.

RULES:
1. Agents: Files in 'agents/' folders or with 'agent' in name.
2. Skills: Folders named 'skills'.
   - Non-nested: Direct 'skill.md'.
   - Nested: Subdirectory with 'skill.md' + assets.

OUTPUT JSON FORMAT:
{
  "agents": ["absolute/path/to/agent.md"],
  "skills": [
    { "type": "skill", "nested": false, "path": "path/to/skill.md" },
    { "type": "skill", "nested": true, "path": "path/to/skill.md", "assets": ["path/to/asset"] }
  ]
}

IMPORTANT: The file tree provided is relative. You must prepend the ROOT PATH %q to all output paths to make them absolute.`

const refineFormat = `OUTPUT FORMAT (JSON):
{
  "content": "The refined markdown content...",
  "extractedFiles": [
    {
      "name": "filename.ext",
      "type": "asset" | "reference",
      "content": "file content..."
    }
  ]
}

EXTRACTION RULES:
1. If you find any code block longer than 5 lines, extract it.
2. If you find a data template (JSON/YAML), extract it.
3. Replace the extracted code in "content" with a markdown link to "references/filename.ext" or "assets/filename.ext".
4. "type": use "asset" for templates/data, "reference" for code examples.
5. "name": choose a descriptive filename.`

// AnalyzePrompt builds the tree classification prompt.
func AnalyzePrompt(tree, root string) string {
	var b strings.Builder
	fmt.Fprintf(&b, analyzeInstructions, root)
	b.WriteString("\n\nROOT PATH: ")
	b.WriteString(root)
	b.WriteString("\n\nFILE TREE:\n")
	b.WriteString(tree)
	return b.String()
}

// RefinePrompt builds the rewrite-and-extract prompt for body.
func RefinePrompt(instruction, body string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(instruction))
	b.WriteString("\n\nContext:\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(refineFormat)
	return b.String()
}

// PersonaInstruction is the refine instruction for an agent merged into a
// plugin skill as a persona section.
func PersonaInstruction(name string) string {
	return "Convert this Claude Agent to a Gemini Persona section. Name: " + name + `

IMPORTANT: Output ONLY the body content. Do NOT include a top-level header with the agent name. Start directly with the context or role description.`
}

// AgentSkillInstruction is the refine instruction for an agent converted into
// its own skill.
func AgentSkillInstruction(name string) string {
	return "Convert this Claude Agent to a Gemini Skill Instructions. Name: " + name + `

IMPORTANT: Output the full system instructions for this agent.
Do not wrap in "Personas" sections, just give the direct instructions.
Extract any code blocks into separate files if they are reusable templates or scripts.`
}
