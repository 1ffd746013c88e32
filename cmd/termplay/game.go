package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/lavarun/common"
	"github.com/milk9111/lavarun/prefabs"
	"github.com/milk9111/lavarun/system"
)

const tickInterval = 50 * time.Millisecond

type termGame struct {
	screen  tcell.Screen
	world   *system.World
	camera  *common.Camera
	watcher *prefabs.Watcher
	sound   *sound
	held    heldKeys

	pack   string
	seed   uint64
	status string
}

func (g *termGame) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	var changes <-chan prefabs.Change
	var watchErrs <-chan error
	if g.watcher != nil {
		changes = g.watcher.Events
		watchErrs = g.watcher.Errors
	}

	g.handleWorldEvents()
	g.draw()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev, time.Now()) {
				return
			}

		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if _, err := g.world.ApplyChange(change, g.pack, g.seed); err != nil {
				log.Printf("reload: %v", err)
			}

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			log.Printf("watch: %v", err)

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if !g.world.Complete() {
				if err := g.world.Update(dt, g.held.input(now)); err != nil {
					log.Printf("update level %d: %v", g.world.Index(), err)
					return
				}
			}
			g.handleWorldEvents()
			g.draw()
		}
	}
}

// handleInput returns false when the player asked to quit.
func (g *termGame) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.held.press(dirLeft, now)
		case tcell.KeyRight:
			g.held.press(dirRight, now)
		case tcell.KeyUp:
			g.held.press(dirUp, now)
		case tcell.KeyDown:
			g.held.press(dirDown, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a', 'h':
				g.held.press(dirLeft, now)
			case 'd', 'l':
				g.held.press(dirRight, now)
			case 'w', 'k':
				g.held.press(dirUp, now)
			case 's', 'j':
				g.held.press(dirDown, now)
			case ' ':
				g.held.release()
			case 'r':
				g.held.release()
				if err := g.world.Restart(); err != nil {
					log.Printf("restart: %v", err)
				}
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.draw()
	}
	return true
}

func (g *termGame) handleWorldEvents() {
	for _, e := range g.world.Events().Drain() {
		g.sound.play(e.Type)
		switch e.Type {
		case system.EventLevelStarted:
			idx, _ := e.Data.(int)
			log.Printf("level %d of %d started", idx+1, g.world.Levels())
			g.status = fmt.Sprintf("Level %d", idx+1)
		case system.EventLevelWon:
			g.status = "Level complete!"
		case system.EventLevelLost:
			g.status = "Burned! Try again"
		case system.EventGameComplete:
			g.status = "You won the prize! (q to quit)"
		}
	}
}

func (g *termGame) draw() {
	lvl := g.world.Level()
	w, h := g.screen.Size()
	if lvl == nil || w <= 0 || h <= 1 {
		return
	}

	// last row is the status line
	g.camera.SetScreenSize(w, h-1)
	g.camera.SetWorldBounds(lvl.Width, lvl.Height)
	if lvl.Player != nil {
		p := lvl.Player
		g.camera.SnapTo(p.Pos.X+p.Size.X/2, p.Pos.Y+p.Size.Y/2)
	} else {
		g.camera.SnapTo(float64(lvl.Width)/2, float64(lvl.Height)/2)
	}
	vx, vy := g.camera.ViewTopLeft()
	left, top := int(math.Floor(vx)), int(math.Floor(vy))

	g.screen.Clear()
	for y, row := range renderFrame(lvl, left, top, w, h-1) {
		for x, c := range row {
			g.screen.SetContent(x, y, c.r, nil, c.style)
		}
	}

	line := fmt.Sprintf(" %s | level %d/%d | coins left %d | arrows/wasd/hjkl move, space stop, r restart, q quit",
		g.status, g.world.Index()+1, g.world.Levels(), lvl.Coins())
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		g.screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		g.screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
	g.screen.Show()
}

func (g *termGame) cleanup() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close watcher: %v", err)
		}
	}
	g.sound.close()
	g.screen.Fini()
}
