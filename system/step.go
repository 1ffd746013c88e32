package system

import (
	"fmt"
	"math"

	"github.com/milk9111/lavarun/common"
	"github.com/milk9111/lavarun/obj"
)

// Input is the player's requested direction for a tick.
type Input struct {
	Left, Right, Up, Down bool
}

func (in Input) direction() common.Vector {
	var d common.Vector
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d
}

// Config holds the driver's timing and movement tuning.
type Config struct {
	// MaxStep bounds a single simulation sub-step in seconds.
	MaxStep float64
	// FinishDelay is copied into every level when it starts.
	FinishDelay float64
	// PlayerSpeed is in tiles per second.
	PlayerSpeed float64
	// MaxFrame caps the time a single World.Update may simulate, so a
	// stalled or suspended driver does not replay the whole gap.
	MaxFrame float64
}

func DefaultConfig() Config {
	return Config{
		MaxStep:     0.05,
		FinishDelay: obj.DefaultFinishDelay,
		PlayerSpeed: 7,
		MaxFrame:    0.1,
	}
}

const (
	minStep = 1e-9
	// maxSubSteps bounds the work a single Step call may do.
	maxSubSteps = 1 << 20
)

// Step advances lvl by dt seconds in sub-steps no longer than cfg.MaxStep.
// Each sub-step moves every actor in list order, then resolves what the
// player touches, then counts down the finish delay of a resolved level.
func Step(lvl *obj.Level, dt float64, in Input, cfg Config, events *EventQueue) error {
	if lvl == nil {
		return fmt.Errorf("system: step: nil level: %w", obj.ErrInvalidArgument)
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("system: step: dt=%v: %w", dt, obj.ErrInvalidArgument)
	}
	maxStep := cfg.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultConfig().MaxStep
	}
	if dt/maxStep > maxSubSteps {
		return fmt.Errorf("system: step: dt=%v needs more than %d sub-steps: %w", dt, maxSubSteps, obj.ErrInvalidArgument)
	}
	for dt > minStep {
		step := math.Min(dt, maxStep)
		if err := tick(lvl, step, in, cfg, events); err != nil {
			return err
		}
		dt -= step
	}
	return nil
}

func tick(lvl *obj.Level, step float64, in Input, cfg Config, events *EventQueue) error {
	before := lvl.Status

	// Coins collected mid-tick leave the live list; iterate a snapshot.
	actors := append([]*obj.Actor(nil), lvl.Actors...)
	for _, a := range actors {
		if a == lvl.Player {
			if err := movePlayer(lvl, a, step, in, cfg, events); err != nil {
				return err
			}
			continue
		}
		if err := a.Act(step, lvl); err != nil {
			return fmt.Errorf("system: %s: %w", a, err)
		}
	}

	if before == obj.StatusPlaying {
		switch lvl.Status {
		case obj.StatusWon:
			events.Push(Event{Type: EventLevelWon})
		case obj.StatusLost:
			events.Push(Event{Type: EventLevelLost})
		}
	}

	if lvl.Status != obj.StatusPlaying {
		lvl.FinishDelay -= step
	}
	return nil
}

// movePlayer walks the player one axis at a time. A blocked move reports
// the obstacle instead of moving. Touches only count while the level is
// still being played.
func movePlayer(lvl *obj.Level, p *obj.Actor, step float64, in Input, cfg Config, events *EventQueue) error {
	if lvl.Status == obj.StatusLost {
		return nil
	}

	dir := in.direction()
	for _, motion := range []common.Vector{
		common.Vec(dir.X*cfg.PlayerSpeed*step, 0),
		common.Vec(0, dir.Y*cfg.PlayerSpeed*step),
	} {
		if motion == (common.Vector{}) {
			continue
		}
		next := p.Pos.Plus(motion)
		obstacle, err := lvl.ObstacleAt(next, p.Size)
		if err != nil {
			return fmt.Errorf("system: move player: %w", err)
		}
		if obstacle == obj.ObstacleNone {
			p.Pos = next
			continue
		}
		if lvl.Status == obj.StatusPlaying {
			lvl.PlayerTouched(obstacle.Touch(), nil)
		}
	}

	if lvl.Status != obj.StatusPlaying {
		return nil
	}
	other, err := lvl.FindActorAt(p)
	if err != nil {
		return fmt.Errorf("system: move player: %w", err)
	}
	if other == nil {
		return nil
	}
	coins := lvl.Coins()
	lvl.PlayerTouched(other.Kind().Touch(), other)
	if lvl.Coins() < coins {
		events.Push(Event{Type: EventCoinCollected, Data: other})
	}
	return nil
}
