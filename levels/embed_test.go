package levels

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultPack(t *testing.T) {
	pack, err := Load(DefaultPack)
	if err != nil {
		t.Fatalf("load default pack: %v", err)
	}
	if len(pack) < 2 {
		t.Fatalf("expected several levels, got %d", len(pack))
	}
	for i, plan := range pack {
		players := 0
		for _, row := range plan {
			for _, r := range row {
				if r == '@' {
					players++
				}
			}
		}
		if players != 1 {
			t.Fatalf("level %d: expected exactly one player, got %d", i, players)
		}
	}
}

func TestLoadMissingPack(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatalf("expected error for missing pack")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		levels  int
		wantErr bool
	}{
		{"two_levels", `[["x@x"],["o","x"]]`, 2, false},
		{"empty_pack", `[]`, 0, true},
		{"empty_level", `[["x"],[]]`, 0, true},
		{"not_json", `levels`, 0, true},
		{"wrong_shape", `{"a":1}`, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pack, err := Parse([]byte(c.data))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got pack %v", pack)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pack) != c.levels {
				t.Fatalf("expected %d levels, got %d", c.levels, len(pack))
			}
		})
	}
}

func TestCleanLevelPath(t *testing.T) {
	cases := map[string]string{
		"":                   DefaultPack,
		"levels.json":        "levels.json",
		"levels/levels.json": "levels.json",
		"hard":               "hard.json",
	}
	for in, want := range cases {
		if got := cleanLevelPath(in); got != want {
			t.Fatalf("cleanLevelPath(%q) = %q, want %q", in, got, want)
		}
	}
	if got := DiskPath("hard"); got != filepath.Join("levels", "hard.json") {
		t.Fatalf("unexpected disk path %q", got)
	}
}
