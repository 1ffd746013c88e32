package obj

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/lavarun/common"
)

func gridFromPlan(plan ...string) [][]Obstacle {
	return NewParser(nil).CreateGrid(plan)
}

func TestNewLevelDimensions(t *testing.T) {
	cases := []struct {
		name          string
		plan          []string
		width, height int
	}{
		{"empty", nil, 0, 0},
		{"square", []string{"xxx", "x x", "xxx"}, 3, 3},
		{"ragged", []string{"x", "xxxxx", "xx"}, 5, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := NewLevel(gridFromPlan(c.plan...), nil)
			if lvl.Width != c.width || lvl.Height != c.height {
				t.Fatalf("expected %dx%d, got %dx%d", c.width, c.height, lvl.Width, lvl.Height)
			}
			if lvl.Status != StatusPlaying || lvl.FinishDelay != DefaultFinishDelay {
				t.Fatalf("unexpected initial state status=%s delay=%v", lvl.Status, lvl.FinishDelay)
			}
		})
	}
}

func TestNewLevelCachesFirstPlayer(t *testing.T) {
	first := NewPlayer(common.Vec(1, 1))
	second := NewPlayer(common.Vec(2, 1))
	coin := NewCoin(common.Vec(0, 0), nil)
	lvl := NewLevel(nil, []*Actor{coin, first, nil, second})

	if lvl.Player != first {
		t.Fatalf("expected first player to be cached, got %v", lvl.Player)
	}
	if len(lvl.Actors) != 3 {
		t.Fatalf("expected nil actor to be dropped, got %d actors", len(lvl.Actors))
	}

	lvl.RemoveActor(first)
	if lvl.Player != first {
		t.Fatalf("cached player should not be refreshed after removal")
	}
}

func TestIsFinished(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		delay  float64
		want   bool
	}{
		{"playing", StatusPlaying, -1, false},
		{"won_waiting", StatusWon, 0.5, false},
		{"won_zero_delay", StatusWon, 0, false},
		{"won_done", StatusWon, -0.01, true},
		{"lost_done", StatusLost, -1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := NewLevel(nil, nil)
			lvl.Status = c.status
			lvl.FinishDelay = c.delay
			if got := lvl.IsFinished(); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestFindActorAt(t *testing.T) {
	a := mustActor(t, 0, 0)
	b := mustActor(t, 0.5, 0)
	c := mustActor(t, 5, 5)
	lvl := NewLevel(nil, []*Actor{a, b, c})

	probe := mustActor(t, 0.75, 0)
	got, err := lvl.FindActorAt(probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != a {
		t.Fatalf("expected first overlapping actor in list order, got %v", got)
	}

	got, err = lvl.FindActorAt(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != b {
		t.Fatalf("probe must not match itself, expected %v got %v", b, got)
	}

	got, err = lvl.FindActorAt(mustActor(t, 10, 10))
	if err != nil || got != nil {
		t.Fatalf("expected no actor, got %v err=%v", got, err)
	}

	if _, err := lvl.FindActorAt(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestObstacleAt(t *testing.T) {
	lvl := NewLevel(gridFromPlan(
		"    ",
		" x  ",
		"  ! ",
		"    ",
	), nil)
	unit := common.Vec(1, 1)

	cases := []struct {
		name string
		dest common.Vector
		size common.Vector
		want Obstacle
	}{
		{"left_of_grid", common.Vec(-1, 0), unit, ObstacleWall},
		{"partly_left_of_grid", common.Vec(-0.1, 1), unit, ObstacleWall},
		{"above_grid", common.Vec(0, -0.5), unit, ObstacleWall},
		{"right_of_grid", common.Vec(3.5, 0), unit, ObstacleWall},
		{"below_grid", common.Vec(0, float64(lvl.Height)+1), unit, ObstacleLava},
		{"far_below_grid", common.Vec(0, 1e19), unit, ObstacleLava},
		{"very_far_below_grid", common.Vec(0, 1e300), unit, ObstacleLava},
		{"far_right_of_grid", common.Vec(1e19, 0), unit, ObstacleWall},
		{"far_above_grid", common.Vec(0, -1e19), unit, ObstacleWall},
		{"side_beats_below", common.Vec(-1, float64(lvl.Height)+1), unit, ObstacleWall},
		{"inside_wall_cell", common.Vec(1, 1), unit, ObstacleWall},
		{"overlapping_wall_cell", common.Vec(0.5, 0.5), unit, ObstacleWall},
		{"inside_lava_cell", common.Vec(2.2, 2.2), common.Vec(0.5, 0.5), ObstacleLava},
		{"open_region", common.Vec(2, 0), common.Vec(2, 1), ObstacleNone},
		{"open_touching_wall_edge", common.Vec(0, 0), unit, ObstacleNone},
		{"flush_with_bottom", common.Vec(0, 3), unit, ObstacleNone},
		{"row_major_first_hit", common.Vec(1, 1), common.Vec(2, 2), ObstacleWall},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := lvl.ObstacleAt(c.dest, c.size)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestObstacleAtRaggedRows(t *testing.T) {
	lvl := NewLevel(gridFromPlan("xxxx", "x", "xxxx"), nil)
	got, err := lvl.ObstacleAt(common.Vec(2, 1), common.Vec(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != ObstacleNone {
		t.Fatalf("cells past a short row should be open, got %s", got)
	}
}

func TestObstacleAtInvalidArgument(t *testing.T) {
	lvl := NewLevel(gridFromPlan("   "), nil)
	if _, err := lvl.ObstacleAt(common.Vec(math.NaN(), 0), common.Vec(1, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := lvl.ObstacleAt(common.Vec(0, 0), common.Vec(1, math.Inf(1))); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRemoveActorByID(t *testing.T) {
	a := mustActor(t, 1, 1)
	b := mustActor(t, 1, 1)
	lvl := NewLevel(nil, []*Actor{a, b})

	lvl.RemoveActor(b)
	if len(lvl.Actors) != 1 || lvl.Actors[0] != a {
		t.Fatalf("expected only the equal-valued twin to remain, got %v", lvl.Actors)
	}

	lvl.RemoveActor(mustActor(t, 1, 1))
	if len(lvl.Actors) != 1 {
		t.Fatalf("removing a foreign actor should be a no-op, got %v", lvl.Actors)
	}

	lvl.RemoveActor(nil)
	if len(lvl.Actors) != 1 {
		t.Fatalf("removing nil should be a no-op")
	}
}

func TestNoActorsOfKind(t *testing.T) {
	coin := NewCoin(common.Vec(0, 0), nil)
	lvl := NewLevel(nil, []*Actor{NewPlayer(common.Vec(0, 0)), coin})
	if lvl.NoActorsOfKind(KindCoin) {
		t.Fatalf("expected a coin")
	}
	if !lvl.NoActorsOfKind(KindFireRain) {
		t.Fatalf("expected no fire rain")
	}
	lvl.RemoveActor(coin)
	if !lvl.NoActorsOfKind(KindCoin) || lvl.Coins() != 0 {
		t.Fatalf("expected coins to be gone")
	}
}

func TestPlayerTouchedWin(t *testing.T) {
	lvl := NewParser(StandardDictionary(nil)).Parse([]string{"@ o"})
	var coin *Actor
	for _, a := range lvl.Actors {
		if a.Kind() == KindCoin {
			coin = a
		}
	}
	if coin == nil {
		t.Fatalf("expected a coin in the level")
	}

	lvl.PlayerTouched(TouchCoin, coin)
	if lvl.Status != StatusWon {
		t.Fatalf("expected won, got %s", lvl.Status)
	}
	if !lvl.NoActorsOfKind(KindCoin) {
		t.Fatalf("expected coin to be collected")
	}

	lvl.PlayerTouched(TouchCoin, coin)
	if lvl.Status != StatusWon {
		t.Fatalf("repeated touch changed status to %s", lvl.Status)
	}
}

func TestPlayerTouchedPartialCoins(t *testing.T) {
	lvl := NewParser(StandardDictionary(nil)).Parse([]string{"@oo"})
	coin := lvl.Actors[1]
	lvl.PlayerTouched(TouchCoin, coin)
	if lvl.Status != StatusPlaying {
		t.Fatalf("expected playing with one coin left, got %s", lvl.Status)
	}
	if lvl.Coins() != 1 {
		t.Fatalf("expected 1 coin left, got %d", lvl.Coins())
	}
}

func TestPlayerTouchedCoinTypeMustMatchActor(t *testing.T) {
	lvl := NewParser(StandardDictionary(nil)).Parse([]string{"@o="})
	fireball := lvl.Actors[2]
	lvl.PlayerTouched(TouchCoin, fireball)
	if lvl.Status != StatusPlaying || len(lvl.Actors) != 3 {
		t.Fatalf("coin touch with a non-coin actor should do nothing")
	}
}

func TestPlayerTouchedLose(t *testing.T) {
	cases := []struct {
		name   string
		prior  Status
		touch  Touch
		actor  *Actor
		expect Status
	}{
		{"lava_while_playing", StatusPlaying, TouchLava, nil, StatusLost},
		{"lava_after_won", StatusWon, TouchLava, nil, StatusLost},
		{"lava_after_lost", StatusLost, TouchLava, nil, StatusLost},
		{"fireball_while_playing", StatusPlaying, TouchFireball, NewHorizontalFireball(common.Vec(0, 0)), StatusLost},
		{"wall_is_harmless", StatusPlaying, TouchWall, nil, StatusPlaying},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := NewLevel(nil, nil)
			lvl.Status = c.prior
			lvl.PlayerTouched(c.touch, c.actor)
			if lvl.Status != c.expect {
				t.Fatalf("expected %s, got %s", c.expect, lvl.Status)
			}
		})
	}
}
