package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPack is the level pack bundled with the game.
const DefaultPack = "levels.json"

// DiskDir holds on-disk packs that override the embedded ones.
const DiskDir = "levels"

//go:embed *.json
var LevelsFS embed.FS

// Plan is one level as rows of symbols.
type Plan []string

// Pack is an ordered list of levels played one after another.
type Pack []Plan

// Load reads a level pack by name. A file of the same name under levels/ on
// disk takes precedence over the embedded copy.
func Load(name string) (Pack, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(DiskPath(clean))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	pack, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", clean, err)
	}
	return pack, nil
}

// Parse decodes a JSON array of plans.
func Parse(data []byte) (Pack, error) {
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("unmarshal pack: %w", err)
	}
	if len(pack) == 0 {
		return nil, fmt.Errorf("pack has no levels")
	}
	for i, plan := range pack {
		if len(plan) == 0 {
			return nil, fmt.Errorf("level %d has no rows", i)
		}
	}
	return pack, nil
}

// DiskPath is where an on-disk override of the named pack lives.
func DiskPath(name string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(cleanLevelPath(name)))
}

func cleanLevelPath(path string) string {
	if path == "" {
		return DefaultPack
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
