package obj

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/lavarun/common"
)

func TestObstacleFromSymbol(t *testing.T) {
	cases := []struct {
		sym  rune
		want Obstacle
	}{
		{'x', ObstacleWall},
		{'!', ObstacleLava},
		{' ', ObstacleNone},
		{'@', ObstacleNone},
		{'X', ObstacleNone},
	}
	for _, c := range cases {
		t.Run(string(c.sym), func(t *testing.T) {
			if got := ObstacleFromSymbol(c.sym); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestActorFromSymbol(t *testing.T) {
	p := NewParser(StandardDictionary(nil))
	if p.ActorFromSymbol('@') == nil {
		t.Fatalf("expected player constructor for '@'")
	}
	if p.ActorFromSymbol('x') != nil {
		t.Fatalf("walls have no actor constructor")
	}
	if NewParser(nil).ActorFromSymbol('@') != nil {
		t.Fatalf("parser without dictionary should return nil")
	}
}

func TestParseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	lvl := NewParser(StandardDictionary(rng)).Parse([]string{"x.x", "@.o", "x.x"})

	if lvl.Width != 3 || lvl.Height != 3 {
		t.Fatalf("expected 3x3, got %dx%d", lvl.Width, lvl.Height)
	}
	for _, corner := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		if got := lvl.Grid[corner[1]][corner[0]]; got != ObstacleWall {
			t.Fatalf("corner %v: expected wall, got %s", corner, got)
		}
	}
	if got := lvl.Grid[1][1]; got != ObstacleNone {
		t.Fatalf("center should be open, got %s", got)
	}

	if len(lvl.Actors) != 2 {
		t.Fatalf("expected player and coin, got %v", lvl.Actors)
	}
	player, coin := lvl.Actors[0], lvl.Actors[1]
	if player.Kind() != KindPlayer || lvl.Player != player {
		t.Fatalf("expected cached player first, got %v", player)
	}
	if player.Pos != common.Vec(0, 0.5) {
		t.Fatalf("expected player near (0,1), got %v", player.Pos)
	}
	if coin.Kind() != KindCoin {
		t.Fatalf("expected coin second, got %v", coin)
	}
	if coin.Pos != common.Vec(2, 1).Plus(common.Vec(0.2, 0.1)) {
		t.Fatalf("expected coin near (2,1), got %v", coin.Pos)
	}
}

func TestCreateActorsSkipsUnmappedAndNil(t *testing.T) {
	dict := Dictionary{
		'@': NewPlayer,
		'?': func(common.Vector) *Actor { return nil },
	}
	actors := NewParser(dict).CreateActors([]string{"x?@", "! z"})
	if len(actors) != 1 || actors[0].Kind() != KindPlayer {
		t.Fatalf("expected only the player, got %v", actors)
	}
	if actors[0].Pos != common.Vec(2, -0.5) {
		t.Fatalf("unexpected player position %v", actors[0].Pos)
	}
}

func TestCreateActorsCountsRunes(t *testing.T) {
	actors := NewParser(StandardDictionary(nil)).CreateActors([]string{"ÿ@"})
	if len(actors) != 1 || actors[0].Pos.X != 1 {
		t.Fatalf("expected player at column 1, got %v", actors)
	}
}

func TestCreateGridRagged(t *testing.T) {
	grid := NewParser(nil).CreateGrid([]string{"x", "", "x!x"})
	if len(grid) != 3 || len(grid[0]) != 1 || len(grid[1]) != 0 || len(grid[2]) != 3 {
		t.Fatalf("unexpected grid shape %v", grid)
	}
	if grid[2][1] != ObstacleLava {
		t.Fatalf("expected lava at (1,2), got %s", grid[2][1])
	}
}

func TestParseEmptyPlan(t *testing.T) {
	lvl := NewParser(StandardDictionary(nil)).Parse(nil)
	if lvl.Width != 0 || lvl.Height != 0 || len(lvl.Actors) != 0 || lvl.Player != nil {
		t.Fatalf("expected empty level, got %+v", lvl)
	}
}

func TestStandardDictionaryKinds(t *testing.T) {
	dict := StandardDictionary(nil)
	want := map[rune]Kind{
		'@': KindPlayer,
		'o': KindCoin,
		'=': KindHorizontalFireball,
		'|': KindVerticalFireball,
		'v': KindFireRain,
	}
	if len(dict) != len(want) {
		t.Fatalf("expected %d symbols, got %d", len(want), len(dict))
	}
	for sym, kind := range want {
		if got := dict[sym](common.Vec(0, 0)).Kind(); got != kind {
			t.Fatalf("symbol %q: expected %s, got %s", sym, kind, got)
		}
	}
}

func TestDictionaryFromKinds(t *testing.T) {
	dict, err := DictionaryFromKinds(map[rune]Kind{'P': KindPlayer, '$': KindCoin, 'r': KindFireRain}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lvl := NewParser(dict).Parse([]string{"P$r"})
	if len(lvl.Actors) != 3 || lvl.Player == nil {
		t.Fatalf("expected three actors with a player, got %v", lvl.Actors)
	}

	for _, k := range []Kind{KindActor, KindFireball} {
		t.Run(k.String(), func(t *testing.T) {
			if _, err := DictionaryFromKinds(map[rune]Kind{'a': k}, nil); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
