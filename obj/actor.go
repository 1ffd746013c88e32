package obj

import (
	"fmt"
	"sync/atomic"

	"github.com/milk9111/lavarun/common"
)

// ActorID identifies an actor for its whole lifetime. IDs are never reused.
type ActorID uint64

var lastActorID atomic.Uint64

// DefaultActorSize is the footprint of a base actor built without a size.
var DefaultActorSize = common.Vec(1, 1)

// Actor is an axis-aligned rectangle moving through a level. Pos is the
// top-left corner in tile units and Size its width and height.
type Actor struct {
	Pos   common.Vector
	Size  common.Vector
	Speed common.Vector

	id   ActorID
	kind Kind

	// spawn is the construction position; fire-rain falls back to it.
	spawn common.Vector
	// anchor and phase drive the coin bob.
	anchor common.Vector
	phase  float64
}

// NewActor builds a base actor with no behaviour of its own.
func NewActor(pos, size, speed common.Vector) (*Actor, error) {
	if !pos.Finite() || !size.Finite() || !speed.Finite() {
		return nil, fmt.Errorf("obj: new actor pos=%v size=%v speed=%v: %w", pos, size, speed, ErrTypeMismatch)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("obj: new actor size=%v: %w", size, ErrInvalidArgument)
	}
	return newActor(KindActor, pos, size, speed), nil
}

func newActor(kind Kind, pos, size, speed common.Vector) *Actor {
	return &Actor{
		Pos:   pos,
		Size:  size,
		Speed: speed,
		id:    ActorID(lastActorID.Add(1)),
		kind:  kind,
		spawn: pos,
	}
}

func (a *Actor) Kind() Kind { return a.kind }

func (a *Actor) ID() ActorID { return a.id }

func (a *Actor) Left() float64   { return a.Pos.X }
func (a *Actor) Right() float64  { return a.Pos.X + a.Size.X }
func (a *Actor) Top() float64    { return a.Pos.Y }
func (a *Actor) Bottom() float64 { return a.Pos.Y + a.Size.Y }

// Intersects reports whether a and other overlap. Edges that only touch do
// not overlap, and an actor never intersects itself.
func (a *Actor) Intersects(other *Actor) (bool, error) {
	if a == nil || other == nil {
		return false, fmt.Errorf("obj: intersects: nil actor: %w", ErrInvalidArgument)
	}
	if a == other {
		return false, nil
	}
	return !(a.Right() <= other.Left() ||
		a.Left() >= other.Right() ||
		a.Bottom() <= other.Top() ||
		a.Top() >= other.Bottom()), nil
}

// Act advances the actor by dt seconds inside lvl.
func (a *Actor) Act(dt float64, lvl *Level) error {
	if a == nil {
		return fmt.Errorf("obj: act: nil actor: %w", ErrInvalidArgument)
	}
	switch a.kind {
	case KindFireball, KindHorizontalFireball, KindVerticalFireball, KindFireRain:
		return a.actProjectile(dt, lvl)
	case KindCoin:
		a.actCoin(dt)
		return nil
	case KindPlayer, KindActor:
		return nil
	default:
		return fmt.Errorf("obj: act: unknown kind %v: %w", a.kind, ErrInvalidArgument)
	}
}

func (a *Actor) String() string {
	return fmt.Sprintf("%s#%d@(%.2f,%.2f)", a.kind, a.id, a.Pos.X, a.Pos.Y)
}
