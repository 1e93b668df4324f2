package analyzer

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/claude2gemini/internal/errors"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	space      = "    "
)

// GenerateTree renders the directory tree under root with box-drawing
// connectors, one entry per line. Entries are sorted by name and hidden
// entries (leading dot) are skipped. The root itself is not printed.
func GenerateTree(root string) (string, error) {
	var sb strings.Builder
	if err := writeTree(&sb, root, ""); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeTree(sb *strings.Builder, dir, indent string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "reading %s", dir)
	}

	entries = slices.DeleteFunc(entries, func(e os.DirEntry) bool {
		return strings.HasPrefix(e.Name(), ".")
	})

	for i, entry := range entries {
		last := i == len(entries)-1

		marker, childIndent := branch, indent+pipe
		if last {
			marker, childIndent = lastBranch, indent+space
		}
		sb.WriteString(indent + marker + entry.Name() + "\n")

		if entry.IsDir() {
			if err := writeTree(sb, filepath.Join(dir, entry.Name()), childIndent); err != nil {
				return err
			}
		}
	}
	return nil
}
