package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// DiskDir holds on-disk specs that override the embedded ones.
const DiskDir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a spec file, preferring prefabs/<name> on disk over the
// embedded copy so edits can be picked up without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
