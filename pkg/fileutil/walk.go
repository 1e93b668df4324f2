package fileutil

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/claude2gemini/internal/errors"
)

// ListOptions controls ListFiles.
type ListOptions struct {
	// SkipHidden skips files and directories whose name starts with a dot.
	SkipHidden bool
}

// ListFiles returns the absolute paths of all regular files under root,
// recursively, in lexical walk order. The order is stable for a given tree.
func ListFiles(root string, opts ListOptions) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", root)
	}

	var files []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if opts.SkipHidden && path != abs && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing files under %s", root)
	}
	return files, nil
}
