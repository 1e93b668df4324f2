package fileutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(f), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"b/doc.md",
		"a.txt",
		"c/target.md",
		".hidden/secret.md",
		"c/.env",
	)

	tests := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{
			name: "all files",
			opts: ListOptions{},
			want: []string{".hidden/secret.md", "a.txt", "b/doc.md", "c/.env", "c/target.md"},
		},
		{
			name: "skip hidden",
			opts: ListOptions{SkipHidden: true},
			want: []string{"a.txt", "b/doc.md", "c/target.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListFiles(root, tt.opts)
			if err != nil {
				t.Fatalf("ListFiles() error = %v", err)
			}
			rel := make([]string, 0, len(got))
			for _, p := range got {
				if !filepath.IsAbs(p) {
					t.Errorf("path %q is not absolute", p)
				}
				r, err := filepath.Rel(root, p)
				if err != nil {
					t.Fatal(err)
				}
				rel = append(rel, filepath.ToSlash(r))
			}
			if !reflect.DeepEqual(rel, tt.want) {
				t.Errorf("ListFiles() = %v, want %v", rel, tt.want)
			}
		})
	}
}

func TestListFiles_MissingRoot(t *testing.T) {
	if _, err := ListFiles(filepath.Join(t.TempDir(), "missing"), ListOptions{}); err == nil {
		t.Error("ListFiles() expected error for missing root")
	}
}
