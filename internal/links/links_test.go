package links

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claude2gemini/internal/logging"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

func TestReconcile_FixesBrokenLink(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b/doc.md":    "See [t](target.md).",
		"c/target.md": "# Target",
	})

	res, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, "See [t](../c/target.md).", readFile(t, root, "b/doc.md"))
	assert.Equal(t, Result{FilesScanned: 2, FilesChanged: 1, Fixed: 1}, res)
}

func TestReconcile_IgnoresBrokenDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b/doc.md":    "See [x](../missing/target.md).",
		"c/target.md": "# Target",
	})

	res, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, "See [x](../c/target.md).", readFile(t, root, "b/doc.md"))
	assert.Equal(t, 1, res.Fixed)
}

func TestReconcile_LinkTitles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		fixed   int
	}{
		{
			name:    "valid link with title",
			content: `[x](other.md "Other doc")`,
			want:    `[x](other.md "Other doc")`,
		},
		{
			name:    "valid link with single quoted title",
			content: `[x](other.md 'Other doc')`,
			want:    `[x](other.md 'Other doc')`,
		},
		{
			name:    "repaired link keeps title",
			content: `[x](gone/target.md "Target")`,
			want:    `[x](sub/target.md "Target")`,
			fixed:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, map[string]string{
				"doc.md":        tt.content,
				"other.md":      "other",
				"sub/target.md": "target",
			})

			res, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
			require.NoError(t, err)

			assert.Equal(t, tt.want, readFile(t, root, "doc.md"))
			assert.Equal(t, tt.fixed, res.Fixed)
			assert.Equal(t, 0, res.Removed)
		})
	}
}

func TestReconcile_RemovesUnresolvableLink(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"doc.md": "Read [x](missing.md) now.",
	})

	res, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, "Read x (link removed) now.", readFile(t, root, "doc.md"))
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, 0, res.Fixed)
}

func TestReconcile_LeavesValidAndExternalLinks(t *testing.T) {
	root := t.TempDir()
	content := "[ok](other.md) [web](https://example.com/x.md) [plain](http://example.com) " +
		"[mail](mailto:a@b.c) [anchor](#top) [ftp](ftp://host/file.md) [abs](" +
		filepath.ToSlash(filepath.Join(root, "other.md")) + ")"
	writeFiles(t, root, map[string]string{
		"doc.md":   content,
		"other.md": "other",
	})

	before, err := os.Stat(filepath.Join(root, "doc.md"))
	require.NoError(t, err)

	res, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, content, readFile(t, root, "doc.md"))
	assert.Equal(t, 0, res.FilesChanged)

	after, err := os.Stat(filepath.Join(root, "doc.md"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestReconcile_PreservesFragment(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"SKILL.md":                       "Run [flow](workflows/deploy.md#steps).",
		"references/workflows/deploy.md": "# Deploy",
	})

	_, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, "Run [flow](references/workflows/deploy.md#steps).", readFile(t, root, "SKILL.md"))
}

func TestReconcile_FirstCandidateInListingOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"doc.md":           "[n](notes.txt)",
		"assets/notes.txt": "a",
		"zeta/notes.txt":   "z",
	})

	_, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, "[n](assets/notes.txt)", readFile(t, root, "doc.md"))
}

func TestReconcile_MultipleLinksInOneFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a/doc.md":   "[one](x.md) and [two](gone.md) and [one again](x.md)",
		"b/x.md":     "x",
		"README.txt": "not markdown [z](nothing.md)",
	})

	res, err := NewReconciler(logging.ForTest(t)).Reconcile(root)
	require.NoError(t, err)

	assert.Equal(t, "[one](../b/x.md) and two (link removed) and [one again](../b/x.md)", readFile(t, root, "a/doc.md"))
	assert.Equal(t, "not markdown [z](nothing.md)", readFile(t, root, "README.txt"))
	assert.Equal(t, Result{FilesScanned: 2, FilesChanged: 1, Fixed: 2, Removed: 1}, res)
}

func TestReconcile_MissingRoot(t *testing.T) {
	_, err := NewReconciler(logging.ForTest(t)).Reconcile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSplitTarget(t *testing.T) {
	tests := []struct {
		in, path, suffix string
	}{
		{"a.md", "a.md", ""},
		{"a.md#x", "a.md", "#x"},
		{"a.md?raw=1#x", "a.md", "?raw=1#x"},
		{"#x", "", "#x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, s := splitTarget(tt.in)
			assert.Equal(t, tt.path, p)
			assert.Equal(t, tt.suffix, s)
		})
	}
}
