package system

import (
	"fmt"
	"log"
	"math"

	"github.com/milk9111/lavarun/levels"
	"github.com/milk9111/lavarun/obj"
)

// World plays the levels of a pack in order. A lost level is replayed, a
// won level advances to the next, and winning the last level completes the
// world.
type World struct {
	pack   levels.Pack
	parser *obj.Parser
	cfg    Config

	index    int
	level    *obj.Level
	complete bool
	events   EventQueue
}

// NewWorld creates a world and starts the level at index start.
func NewWorld(pack levels.Pack, parser *obj.Parser, cfg Config, start int) (*World, error) {
	if len(pack) == 0 {
		return nil, fmt.Errorf("system: new world: empty pack: %w", obj.ErrInvalidArgument)
	}
	if parser == nil {
		return nil, fmt.Errorf("system: new world: nil parser: %w", obj.ErrInvalidArgument)
	}
	w := &World{pack: pack, parser: parser, cfg: cfg}
	if err := w.Start(start); err != nil {
		return nil, err
	}
	return w, nil
}

// Start (re)builds the level at index from its plan.
func (w *World) Start(index int) error {
	if w == nil {
		return fmt.Errorf("system: start level %d: nil world: %w", index, obj.ErrInvalidArgument)
	}
	if index < 0 || index >= len(w.pack) {
		return fmt.Errorf("system: start level %d of %d: %w", index, len(w.pack), obj.ErrInvalidArgument)
	}
	lvl := w.parser.Parse(w.pack[index])
	lvl.FinishDelay = w.cfg.FinishDelay
	if lvl.Player == nil {
		log.Printf("level %d has no player", index)
	}
	w.index = index
	w.level = lvl
	w.complete = false
	w.events.Push(Event{Type: EventLevelStarted, Data: index})
	return nil
}

// Restart replays the current level from its plan.
func (w *World) Restart() error {
	return w.Start(w.index)
}

// Update advances the current level and moves on once it is finished.
func (w *World) Update(dt float64, in Input) error {
	if w == nil || w.level == nil || w.complete {
		return nil
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("system: update level %d: dt=%v: %w", w.index, dt, obj.ErrInvalidArgument)
	}
	if w.cfg.MaxFrame > 0 && dt > w.cfg.MaxFrame {
		dt = w.cfg.MaxFrame
	}
	if err := Step(w.level, dt, in, w.cfg, &w.events); err != nil {
		return err
	}
	if !w.level.IsFinished() {
		return nil
	}

	switch w.level.Status {
	case obj.StatusLost:
		log.Printf("level %d lost, restarting", w.index)
		return w.Start(w.index)
	case obj.StatusWon:
		if w.index+1 < len(w.pack) {
			log.Printf("level %d won", w.index)
			return w.Start(w.index + 1)
		}
		log.Printf("level %d won, all %d levels complete", w.index, len(w.pack))
		w.complete = true
		w.events.Push(Event{Type: EventGameComplete})
	}
	return nil
}

// Reload swaps in a new pack and restarts the current index, clamped to
// the new pack's length.
func (w *World) Reload(pack levels.Pack) error {
	if len(pack) == 0 {
		return fmt.Errorf("system: reload: empty pack: %w", obj.ErrInvalidArgument)
	}
	w.pack = pack
	index := w.index
	if index >= len(pack) {
		index = len(pack) - 1
	}
	return w.Start(index)
}

// SetParser replaces the parser used for levels started from now on.
func (w *World) SetParser(p *obj.Parser) {
	if p != nil {
		w.parser = p
	}
}

// SetConfig replaces the tuning used for levels started from now on and
// for the remaining ticks of the current one.
func (w *World) SetConfig(cfg Config) {
	w.cfg = cfg
}

func (w *World) Level() *obj.Level { return w.level }

func (w *World) Index() int { return w.index }

func (w *World) Levels() int { return len(w.pack) }

func (w *World) Complete() bool { return w.complete }

func (w *World) Events() *EventQueue { return &w.events }
