package claude

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/claude2gemini/internal/paths"
	"github.com/thoreinstein/claude2gemini/pkg/fileutil"
)

// LoadManifest reads the plugin manifest from root, trying plugin.json and
// then .claude-plugin/plugin.json. It returns nil without error when neither
// exists.
func LoadManifest(root string) (*Manifest, error) {
	for _, path := range paths.ManifestPaths(root) {
		data, err := fileutil.ReadFileWithLimit(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, "reading %s", path)
		}

		var m Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		m.Name = strings.TrimSpace(m.Name)
		m.Description = strings.TrimSpace(m.Description)
		m.Path = path
		return &m, nil
	}
	return nil, nil
}
