package obj

import (
	"fmt"
	"math"

	"github.com/milk9111/lavarun/common"
)

// Obstacle is the static content of a grid cell.
type Obstacle uint8

const (
	ObstacleNone Obstacle = iota
	ObstacleWall
	ObstacleLava
)

func (o Obstacle) String() string {
	switch o {
	case ObstacleWall:
		return "wall"
	case ObstacleLava:
		return "lava"
	default:
		return "none"
	}
}

// Touch returns the touch type reported when the player runs into o.
func (o Obstacle) Touch() Touch {
	switch o {
	case ObstacleWall:
		return TouchWall
	case ObstacleLava:
		return TouchLava
	default:
		return ""
	}
}

// Status is the resolution state of a level.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// DefaultFinishDelay is how long a resolved level keeps running before it
// counts as finished.
const DefaultFinishDelay = 1.0

// Level holds the static obstacle grid and the live actors of one stage.
type Level struct {
	// Grid is indexed [y][x]. Rows may be ragged; missing cells are open.
	Grid   [][]Obstacle
	Actors []*Actor

	Width  int
	Height int

	Status      Status
	FinishDelay float64

	// Player is the first player actor found at construction. It is not
	// refreshed if the actor list changes later.
	Player *Actor
}

// NewLevel builds a level from a grid and its initial actors. Nil actors
// are dropped.
func NewLevel(grid [][]Obstacle, actors []*Actor) *Level {
	lvl := &Level{
		Grid:        grid,
		Height:      len(grid),
		FinishDelay: DefaultFinishDelay,
	}
	for _, row := range grid {
		if len(row) > lvl.Width {
			lvl.Width = len(row)
		}
	}

	lvl.Actors = make([]*Actor, 0, len(actors))
	for _, a := range actors {
		if a == nil {
			continue
		}
		lvl.Actors = append(lvl.Actors, a)
		if lvl.Player == nil && a.kind == KindPlayer {
			lvl.Player = a
		}
	}
	return lvl
}

// IsFinished reports whether the level is resolved and its finish delay has
// run out.
func (l *Level) IsFinished() bool {
	return l.Status != StatusPlaying && l.FinishDelay < 0
}

// FindActorAt returns the first actor, in list order, overlapping probe.
func (l *Level) FindActorAt(probe *Actor) (*Actor, error) {
	if probe == nil {
		return nil, fmt.Errorf("obj: find actor: nil probe: %w", ErrInvalidArgument)
	}
	for _, a := range l.Actors {
		hit, err := a.Intersects(probe)
		if err != nil {
			return nil, err
		}
		if hit {
			return a, nil
		}
	}
	return nil, nil
}

// ObstacleAt returns the obstacle a box of size at dest would touch. Leaving
// the grid sideways or through the top counts as a wall, leaving it through
// the bottom counts as lava.
func (l *Level) ObstacleAt(dest, size common.Vector) (Obstacle, error) {
	if !dest.Finite() || !size.Finite() {
		return ObstacleNone, fmt.Errorf("obj: obstacle at dest=%v size=%v: %w", dest, size, ErrInvalidArgument)
	}

	// Bounds are checked in float64; far-away boxes would overflow int.
	fLeft := math.Floor(dest.X)
	fRight := math.Ceil(dest.X + size.X)
	fTop := math.Floor(dest.Y)
	fBottom := math.Ceil(dest.Y + size.Y)

	if fTop < 0 || fLeft < 0 || fRight > float64(l.Width) {
		return ObstacleWall, nil
	}
	if fBottom > float64(l.Height) {
		return ObstacleLava, nil
	}

	left, right := int(fLeft), int(fRight)
	top, bottom := int(fTop), int(fBottom)
	for y := top; y < bottom; y++ {
		row := l.Grid[y]
		for x := left; x < right && x < len(row); x++ {
			if row[x] != ObstacleNone {
				return row[x], nil
			}
		}
	}
	return ObstacleNone, nil
}

// RemoveActor removes the live actor with a's ID. It is a no-op when a is
// not part of the level.
func (l *Level) RemoveActor(a *Actor) {
	if a == nil || a.id == 0 {
		return
	}
	for i, other := range l.Actors {
		if other.id == a.id {
			l.Actors = append(l.Actors[:i], l.Actors[i+1:]...)
			return
		}
	}
}

// NoActorsOfKind reports whether no live actor has kind k.
func (l *Level) NoActorsOfKind(k Kind) bool {
	for _, a := range l.Actors {
		if a.kind == k {
			return false
		}
	}
	return true
}

// PlayerTouched applies the win/lose rule for the player touching t. a is
// the touched actor, if any.
func (l *Level) PlayerTouched(t Touch, a *Actor) {
	switch t {
	case TouchLava, TouchFireball:
		l.Status = StatusLost
	case TouchCoin:
		if a == nil || a.kind != KindCoin {
			return
		}
		l.RemoveActor(a)
		if l.Status != StatusLost && l.NoActorsOfKind(KindCoin) {
			l.Status = StatusWon
		}
	}
}

// Coins counts the coins still in play.
func (l *Level) Coins() int {
	n := 0
	for _, a := range l.Actors {
		if a.kind == KindCoin {
			n++
		}
	}
	return n
}
