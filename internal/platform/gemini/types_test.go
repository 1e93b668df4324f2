package gemini

import (
	"reflect"
	"testing"
)

func TestToolList_Add(t *testing.T) {
	var tl ToolList
	tl.Add("Read", "Grep")
	tl.Add("Read", " ", "Bash(git status:*)")

	want := ToolList{"Read", "Grep", "Bash(git status:*)"}
	if !reflect.DeepEqual(tl, want) {
		t.Errorf("ToolList = %v, want %v", tl, want)
	}
	if got := tl.String(); got != "Read Grep Bash(git status:*)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSkill_AddFiles(t *testing.T) {
	s := &Skill{Name: "demo"}
	s.AddReference("api.md", "v1")
	s.AddReference("api.md", "v2")
	s.AddAsset("template.json", "{}")
	s.AddScript("run.sh", "echo hi")

	if s.References["api.md"] != "v2" {
		t.Errorf("References[api.md] = %q, last write should win", s.References["api.md"])
	}
	if len(s.Assets) != 1 || len(s.Scripts) != 1 {
		t.Errorf("Assets = %v, Scripts = %v", s.Assets, s.Scripts)
	}
}
