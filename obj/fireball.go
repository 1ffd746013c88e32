package obj

import (
	"fmt"

	"github.com/milk9111/lavarun/common"
)

var (
	fireballSize            = common.Vec(1, 1)
	horizontalFireballSpeed = common.Vec(2, 0)
	verticalFireballSpeed   = common.Vec(0, 2)
	fireRainSpeed           = common.Vec(0, 3)
)

// NewFireball creates a projectile that bounces off obstacles.
func NewFireball(pos, speed common.Vector) *Actor {
	return newActor(KindFireball, pos, fireballSize, speed)
}

func NewHorizontalFireball(pos common.Vector) *Actor {
	return newActor(KindHorizontalFireball, pos, fireballSize, horizontalFireballSpeed)
}

func NewVerticalFireball(pos common.Vector) *Actor {
	return newActor(KindVerticalFireball, pos, fireballSize, verticalFireballSpeed)
}

// NewFireRain creates a falling projectile that returns to pos whenever it
// hits something.
func NewFireRain(pos common.Vector) *Actor {
	return newActor(KindFireRain, pos, fireballSize, fireRainSpeed)
}

// NextPosition is where the actor would be after dt at its current speed.
func (a *Actor) NextPosition(dt float64) common.Vector {
	return a.Pos.Plus(a.Speed.Times(dt))
}

func (a *Actor) actProjectile(dt float64, lvl *Level) error {
	if lvl == nil {
		return fmt.Errorf("obj: act %s: nil level: %w", a.kind, ErrInvalidArgument)
	}
	next := a.NextPosition(dt)
	obstacle, err := lvl.ObstacleAt(next, a.Size)
	if err != nil {
		return fmt.Errorf("obj: act %s: %w", a.kind, err)
	}
	if obstacle == ObstacleNone {
		a.Pos = next
		return nil
	}
	a.handleObstacle()
	return nil
}

func (a *Actor) handleObstacle() {
	switch a.kind {
	case KindFireRain:
		a.Pos = a.spawn
	default:
		a.Speed = a.Speed.Times(-1)
	}
}
