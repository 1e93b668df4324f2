package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/claude2gemini/internal/errors"
)

// writeTestTree creates files (slash-separated relative paths) under root.
// A path ending in "/" creates an empty directory.
func writeTestTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDetermineType_Directory(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  InputType
	}{
		{
			name:  "plugin.json",
			files: map[string]string{"plugin.json": "{}"},
			want:  TypePlugin,
		},
		{
			name:  ".claude-plugin manifest",
			files: map[string]string{".claude-plugin/plugin.json": "{}"},
			want:  TypePlugin,
		},
		{
			name:  "agents dir",
			files: map[string]string{"agents/": ""},
			want:  TypePlugin,
		},
		{
			name:  "skills dir",
			files: map[string]string{"skills/": ""},
			want:  TypePlugin,
		},
		{
			name:  "agents dir wins over loose markdown",
			files: map[string]string{"agents/": "", "notes.md": "x"},
			want:  TypePlugin,
		},
		{
			name:  "plugin wins over SKILL.md",
			files: map[string]string{"skills/": "", "SKILL.md": "x"},
			want:  TypePlugin,
		},
		{
			name:  "skill directory",
			files: map[string]string{"SKILL.md": "x", "helper.md": "y"},
			want:  TypeSkill,
		},
		{
			name:  "loose agents",
			files: map[string]string{"a.md": "x", "b.md": "y"},
			want:  TypeAgent,
		},
		{
			name:  "markdown only in subdirectory",
			files: map[string]string{"docs/a.md": "x"},
			want:  TypeUnknown,
		},
		{
			name:  "empty",
			files: map[string]string{},
			want:  TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTestTree(t, root, tt.files)

			for range 2 {
				got, err := DetermineType(root)
				if err != nil {
					t.Fatalf("DetermineType() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("DetermineType() = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestDetermineType_File(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     InputType
	}{
		{"agent markdown", "reviewer.md", "---\nname: reviewer\n---\nReview.", TypeAgent},
		{"markdown mentioning SKILL.md", "guide.md", "See SKILL.md for details.", TypeSkill},
		{"upper case extension", "AGENT.MD", "Agent.", TypeAgent},
		{"json file", "plugin.json", "{}", TypeUnknown},
		{"text file", "notes.txt", "hello", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := DetermineType(path)
			if err != nil {
				t.Fatalf("DetermineType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetermineType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineType_Missing(t *testing.T) {
	got, err := DetermineType(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("DetermineType() expected error for missing root")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("DetermineType() error = %v, want ErrNotFound", err)
	}
	if got != TypeUnknown {
		t.Errorf("DetermineType() = %q, want unknown", got)
	}
}
