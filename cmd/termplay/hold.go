package main

import (
	"time"

	"github.com/milk9111/lavarun/system"
)

// Terminals report key presses and auto-repeats but never releases, so a
// press keeps its direction held for holdWindow.
const holdWindow = 200 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
)

func (d direction) opposite() direction {
	switch d {
	case dirLeft:
		return dirRight
	case dirRight:
		return dirLeft
	case dirUp:
		return dirDown
	default:
		return dirUp
	}
}

type heldKeys struct {
	until [4]time.Time
}

// press holds d and releases the opposite direction.
func (h *heldKeys) press(d direction, now time.Time) {
	h.until[d] = now.Add(holdWindow)
	h.until[d.opposite()] = time.Time{}
}

func (h *heldKeys) release() {
	h.until = [4]time.Time{}
}

func (h *heldKeys) input(now time.Time) system.Input {
	return system.Input{
		Left:  now.Before(h.until[dirLeft]),
		Right: now.Before(h.until[dirRight]),
		Up:    now.Before(h.until[dirUp]),
		Down:  now.Before(h.until[dirDown]),
	}
}
