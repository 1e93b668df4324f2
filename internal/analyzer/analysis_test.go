package analyzer

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestAnalysis_Normalize(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "plugins", "demo")
	abs := func(rel string) string { return filepath.Join(root, filepath.FromSlash(rel)) }

	a := &Analysis{
		Agents: []string{
			"agents/a.md",
			abs("agents/a.md"),
			"",
			abs("agents/./b.md"),
		},
		Skills: []SkillEntry{
			{Path: "skills/lint.md"},
			{Path: abs("skills/pdf/SKILL.md"), Nested: true, Assets: []string{"skills/pdf/form.txt"}},
			{Path: "skills/lint.md", Nested: true},
			{Path: ""},
		},
	}
	a.Normalize(root)

	wantAgents := []string{abs("agents/a.md"), abs("agents/b.md")}
	if !reflect.DeepEqual(a.Agents, wantAgents) {
		t.Errorf("Agents = %v, want %v", a.Agents, wantAgents)
	}

	wantSkills := []SkillEntry{
		{Path: abs("skills/lint.md")},
		{Path: abs("skills/pdf/SKILL.md"), Nested: true, Assets: []string{abs("skills/pdf/form.txt")}},
	}
	if !reflect.DeepEqual(a.Skills, wantSkills) {
		t.Errorf("Skills = %+v, want %+v", a.Skills, wantSkills)
	}
}

func TestAnalysis_NormalizeNil(t *testing.T) {
	var a *Analysis
	a.Normalize("/root")
}
