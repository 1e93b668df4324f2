package claude

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestToolList_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ToolList
	}{
		{
			name:  "list",
			input: "tools:\n  - Read\n  - Grep\n",
			want:  ToolList{"Read", "Grep"},
		},
		{
			name:  "comma separated",
			input: "tools: Read, Grep, Glob\n",
			want:  ToolList{"Read", "Grep", "Glob"},
		},
		{
			name:  "space separated",
			input: "tools: Read Write\n",
			want:  ToolList{"Read", "Write"},
		},
		{
			name:  "permission pattern with spaces",
			input: "tools: Bash(git status:*), Read\n",
			want:  ToolList{"Bash(git status:*)", "Read"},
		},
		{
			name:  "empty string",
			input: "tools: \"\"\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Tools ToolList `yaml:"tools"`
			}
			if err := yaml.Unmarshal([]byte(tt.input), &out); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !reflect.DeepEqual(out.Tools, tt.want) {
				t.Errorf("Tools = %#v, want %#v", out.Tools, tt.want)
			}
		})
	}
}

func TestToolList_UnmarshalYAML_InvalidType(t *testing.T) {
	var out struct {
		Tools ToolList `yaml:"tools"`
	}
	err := yaml.Unmarshal([]byte("tools:\n  read: true\n"), &out)
	if err == nil {
		t.Error("Unmarshal() expected error for mapping value")
	}
}

func TestToolList_String(t *testing.T) {
	tl := ToolList{"Read", "Bash(git add:*)"}
	if got := tl.String(); got != "Read Bash(git add:*)" {
		t.Errorf("String() = %q", got)
	}
}
