package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestResolveHome(t *testing.T) {
	home, err := ResolveHome()
	if err != nil {
		t.Skipf("home directory unavailable: %v", err)
	}
	if home == "" {
		t.Error("ResolveHome() returned empty string without error")
	}
	if !filepath.IsAbs(home) {
		t.Errorf("ResolveHome() = %q, want absolute path", home)
	}
}

func TestConfigHome(t *testing.T) {
	if got := ConfigHome(); got != xdg.ConfigHome {
		t.Errorf("ConfigHome() = %q, want %q", got, xdg.ConfigHome)
	}
}

func TestAppConfigDir(t *testing.T) {
	want := filepath.Join(xdg.ConfigHome, "claude2gemini")
	if got := AppConfigDir(); got != want {
		t.Errorf("AppConfigDir() = %q, want %q", got, want)
	}
}

func TestManifestPaths(t *testing.T) {
	root := filepath.Join("plugins", "demo")
	got := ManifestPaths(root)
	want := []string{
		filepath.Join(root, "plugin.json"),
		filepath.Join(root, ".claude-plugin", "plugin.json"),
	}
	if len(got) != len(want) {
		t.Fatalf("ManifestPaths() returned %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ManifestPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWorkflowPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "skill output dir",
			got:      SkillOutputDir("/out", "demo"),
			expected: filepath.Join("/out", "demo"),
		},
		{
			name:     "workflow reference key",
			got:      WorkflowReference("deploy"),
			expected: "workflows/deploy.md",
		},
		{
			name:     "workflow output path",
			got:      WorkflowOutputPath("/out", "demo", "deploy"),
			expected: filepath.Join("/out", "demo", "references", "workflows", "deploy.md"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name     string
		perm     os.FileMode
		wantPerm os.FileMode
	}{
		{"default perm", 0, DefaultDirPerm},
		{"explicit perm", 0o700, 0o700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "a", "b")
			if err := EnsureDir(dir, tt.perm); err != nil {
				t.Fatalf("EnsureDir() error = %v", err)
			}
			info, err := os.Stat(dir)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if !info.IsDir() {
				t.Fatal("expected a directory")
			}
			// umask may clear bits but never adds them
			if info.Mode().Perm()&^tt.wantPerm != 0 {
				t.Errorf("perm = %o, want subset of %o", info.Mode().Perm(), tt.wantPerm)
			}

			// Idempotent
			if err := EnsureDir(dir, tt.perm); err != nil {
				t.Errorf("second EnsureDir() error = %v", err)
			}
		})
	}
}
